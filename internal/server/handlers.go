package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cleared-dev/bursar/internal/accounts"
	"github.com/cleared-dev/bursar/internal/ledger"
	"github.com/cleared-dev/bursar/internal/model"
)

// parseDate parses an optional YYYY-MM-DD query parameter.
func parseDate(r *http.Request, name string) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(ledger.DateFormat, v)
	if err != nil {
		return nil, badRequestf("invalid %s %q: want YYYY-MM-DD", name, v)
	}
	return &t, nil
}

func parseRange(r *http.Request) (start, end *time.Time, err error) {
	if start, err = parseDate(r, "start"); err != nil {
		return nil, nil, err
	}
	if end, err = parseDate(r, "end"); err != nil {
		return nil, nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, badRequestf("end %s is before start %s", end.Format(ledger.DateFormat), start.Format(ledger.DateFormat))
	}
	return start, end, nil
}

func parseKind(r *http.Request) (model.Kind, error) {
	kind, err := model.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		return "", badRequestf("%v", err)
	}
	return kind, nil
}

type ledgerResponse struct {
	Period string             `json:"period"`
	Lines  []model.LedgerLine `json:"lines"`
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q := ledger.Query{Account: r.URL.Query().Get("account"), Start: start, End: end}
	lines, err := s.reporter.BuildLedger(r.Context(), q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if lines == nil {
		lines = []model.LedgerLine{}
	}
	writeJSON(w, http.StatusOK, ledgerResponse{Period: ledger.Period(start, end), Lines: lines})
}

type trialBalanceResponse struct {
	Period string                  `json:"period"`
	Rows   []model.TrialBalanceRow `json:"rows"`
	Totals ledger.TrialTotals      `json:"totals"`
}

func (s *Server) handleTrialBalance(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rows, err := s.reporter.TrialBalance(r.Context(), start, end)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if rows == nil {
		rows = []model.TrialBalanceRow{}
	}
	writeJSON(w, http.StatusOK, trialBalanceResponse{
		Period: ledger.Period(start, end),
		Rows:   rows,
		Totals: ledger.Totals(rows),
	})
}

func (s *Server) handleIncomeStatement(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	stmt, err := s.reporter.IncomeStatement(r.Context(), start, end)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stmt)
}

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	chart, err := accounts.Load(r.Context(), s.store)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	all := chart.All()
	if all == nil {
		all = []model.Account{}
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	entries, err := s.entries.List(r.Context(), kind)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	e, err := s.entries.Get(r.Context(), kind, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var e model.Entry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		s.writeError(w, r, badRequestf("invalid entry body: %v", err))
		return
	}
	e.Kind = kind
	created, err := s.entries.Create(r.Context(), e)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var p model.Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, r, badRequestf("invalid patch body: %v", err))
		return
	}
	updated, err := s.entries.Update(r.Context(), kind, chi.URLParam(r, "id"), p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.entries.Delete(r.Context(), kind, chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
