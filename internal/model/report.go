package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is one entry normalized into general-ledger shape.
// Lines are built per query and never mutated afterwards.
type LedgerLine struct {
	Date        time.Time       `json:"date"`
	Account     string          `json:"account"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Source      Kind            `json:"sourceType"`
	EntryID     string          `json:"entryId,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceRow is the aggregated activity of one account.
type TrialBalanceRow struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Type   AccountType     `json:"type"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// IncomeStatement summarizes income against expenses for a period.
type IncomeStatement struct {
	Income    decimal.Decimal `json:"income"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetIncome decimal.Decimal `json:"netIncome"`
	Period    string          `json:"period"`
}
