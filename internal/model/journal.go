package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind tags which of the five entry streams an entry belongs to.
type Kind string

const (
	KindDebtor   Kind = "Debtor"
	KindCreditor Kind = "Creditor"
	KindJournal  Kind = "Journal"
	KindIncome   Kind = "Income"
	KindExpense  Kind = "Expense"
)

// Kinds lists every entry kind in ledger visitation order.
// Entries sharing a date are ordered by this sequence first.
var Kinds = []Kind{KindDebtor, KindCreditor, KindJournal, KindIncome, KindExpense}

// ParseKind accepts a kind name or its collection name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, string(k)) || strings.EqualFold(s, k.Collection()) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown entry kind %q", s)
}

// Collection returns the store collection name for the kind.
func (k Kind) Collection() string {
	switch k {
	case KindDebtor:
		return "debtorEntries"
	case KindCreditor:
		return "creditorEntries"
	case KindJournal:
		return "generalJournal"
	case KindIncome:
		return "incomeEntries"
	case KindExpense:
		return "expenseEntries"
	}
	return ""
}

// TwoSided reports whether entries of this kind carry debit and credit amounts.
func (k Kind) TwoSided() bool {
	return k == KindDebtor || k == KindCreditor || k == KindJournal
}

// Entry is one posted record from any of the five streams.
//
// Two-sided kinds (Debtor, Creditor, Journal) use Debit, Credit and
// Reference. One-sided kinds (Income, Expense) use Amount and
// PaymentMethod.
type Entry struct {
	ID            string          `json:"id,omitempty"`
	Kind          Kind            `json:"kind"`
	Date          time.Time       `json:"date"`
	Account       string          `json:"account,omitempty"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debitAmount"`
	Credit        decimal.Decimal `json:"creditAmount"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// Patch holds optional field changes to an Entry. Nil fields are left alone.
type Patch struct {
	Date          *time.Time       `json:"date,omitempty"`
	Account       *string          `json:"account,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Debit         *decimal.Decimal `json:"debitAmount,omitempty"`
	Credit        *decimal.Decimal `json:"creditAmount,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Reference     *string          `json:"reference,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// Apply returns a copy of e with the patch fields set.
func (p Patch) Apply(e Entry) Entry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Account != nil {
		e.Account = *p.Account
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Debit != nil {
		e.Debit = *p.Debit
	}
	if p.Credit != nil {
		e.Credit = *p.Credit
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Reference != nil {
		e.Reference = *p.Reference
	}
	if p.PaymentMethod != nil {
		e.PaymentMethod = *p.PaymentMethod
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	return e
}
