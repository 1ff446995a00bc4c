package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/bursar/internal/model"
)

// Header is the CSV header for entry import/export files.
const Header = "date,account,description,debit,credit,amount,reference,payment_method,notes"

const (
	numFields  = 9
	dateFormat = "2006-01-02"
	colDate    = 0
	colAcct    = 1
	colDesc    = 2
	colDebit   = 3
	colCredit  = 4
	colAmount  = 5
	colRef     = 6
	colMethod  = 7
	colNotes   = 8
)

// ReadEntries reads entries of the given kind from a CSV reader.
func ReadEntries(r io.Reader, kind model.Kind) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading entries CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	var entries []model.Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec, kind)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// checkHeader rejects a first row that is not Header, so a headerless file
// fails instead of losing its first entry.
func checkHeader(rec []string) error {
	want := strings.Split(Header, ",")
	for i, name := range want {
		if !strings.EqualFold(strings.TrimSpace(rec[i]), name) {
			return fmt.Errorf("row 1: expected header %q, got %q", Header, strings.Join(rec, ","))
		}
	}
	return nil
}

// WriteEntries writes entries to a CSV writer (including header).
func WriteEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row. Zero amounts are left blank.
func MarshalEntry(e model.Entry) []string {
	row := make([]string, numFields)
	row[colDate] = e.Date.Format(dateFormat)
	row[colAcct] = e.Account
	row[colDesc] = e.Description

	if !e.Debit.IsZero() {
		row[colDebit] = e.Debit.StringFixed(2)
	}
	if !e.Credit.IsZero() {
		row[colCredit] = e.Credit.StringFixed(2)
	}
	if !e.Amount.IsZero() {
		row[colAmount] = e.Amount.StringFixed(2)
	}

	row[colRef] = e.Reference
	row[colMethod] = e.PaymentMethod
	row[colNotes] = e.Notes
	return row
}

// UnmarshalEntry converts a CSV row to an Entry of the given kind.
func UnmarshalEntry(record []string, kind model.Kind) (model.Entry, error) {
	if len(record) != numFields {
		return model.Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	debit, err := parseAmount("debit", record[colDebit])
	if err != nil {
		return model.Entry{}, err
	}
	credit, err := parseAmount("credit", record[colCredit])
	if err != nil {
		return model.Entry{}, err
	}
	amount, err := parseAmount("amount", record[colAmount])
	if err != nil {
		return model.Entry{}, err
	}

	return model.Entry{
		Kind:          kind,
		Date:          date,
		Account:       record[colAcct],
		Description:   record[colDesc],
		Debit:         debit,
		Credit:        credit,
		Amount:        amount,
		Reference:     record[colRef],
		PaymentMethod: record[colMethod],
		Notes:         record[colNotes],
	}, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return d, nil
}
