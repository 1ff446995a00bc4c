package journal

import (
	"fmt"
	"strings"

	"github.com/cleared-dev/bursar/internal/model"
)

// Code identifies which entry invariant was violated.
type Code string

const (
	CodeBothAmountsSet Code = "BothAmountsSet"
	CodeNoAmountSet    Code = "NoAmountSet"
	CodeInvalidAmount  Code = "InvalidAmount"
	CodeNegativeAmount Code = "NegativeAmount"
	CodeMissingDate    Code = "MissingDate"
	CodeUnknownKind    Code = "UnknownKind"
	CodeUnknownAccount Code = "UnknownAccount"
	CodeForeignAmount  Code = "ForeignAmount"
)

// ValidationError describes a single invariant violation.
// Two ValidationErrors match under errors.Is when their codes are equal.
type ValidationError struct {
	Code    Code
	Kind    model.Kind
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s [%s]: %s", e.Code, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s [%s] %s: %s", e.Code, e.Kind, e.Field, e.Message)
}

// Is matches on Code only.
func (e ValidationError) Is(target error) bool {
	t, ok := target.(ValidationError)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrBothAmountsSet = ValidationError{Code: CodeBothAmountsSet}
	ErrNoAmountSet    = ValidationError{Code: CodeNoAmountSet}
	ErrInvalidAmount  = ValidationError{Code: CodeInvalidAmount}
	ErrNegativeAmount = ValidationError{Code: CodeNegativeAmount}
	ErrMissingDate    = ValidationError{Code: CodeMissingDate}
	ErrUnknownKind    = ValidationError{Code: CodeUnknownKind}
	ErrUnknownAccount = ValidationError{Code: CodeUnknownAccount}
	ErrForeignAmount  = ValidationError{Code: CodeForeignAmount}
)

// AccountChecker tests whether an account code exists in the chart of accounts.
type AccountChecker interface {
	Exists(code string) bool
}

// Validate checks e against the invariants of its kind.
func Validate(e model.Entry) error {
	switch e.Kind {
	case model.KindDebtor, model.KindCreditor, model.KindJournal:
		return ValidateTwoSided(e)
	case model.KindIncome, model.KindExpense:
		return ValidateOneSided(e)
	default:
		return ValidationError{Code: CodeUnknownKind, Kind: e.Kind, Field: "kind", Message: fmt.Sprintf("unknown entry kind %q", e.Kind)}
	}
}

// ValidateTwoSided requires exactly one of debit and credit to be positive,
// the other to be zero, and amount to be unset.
func ValidateTwoSided(e model.Entry) error {
	hasDebit := e.Debit.IsPositive()
	hasCredit := e.Credit.IsPositive()

	switch {
	case hasDebit && hasCredit:
		return ValidationError{Code: CodeBothAmountsSet, Kind: e.Kind, Message: "entry must have exactly one of debit or credit, got both"}
	case !hasDebit && !hasCredit:
		return ValidationError{Code: CodeNoAmountSet, Kind: e.Kind, Message: "entry must have exactly one of debit or credit, got neither"}
	}
	if e.Debit.IsNegative() {
		return ValidationError{Code: CodeNegativeAmount, Kind: e.Kind, Field: "debitAmount", Message: fmt.Sprintf("debit %s is negative", e.Debit)}
	}
	if e.Credit.IsNegative() {
		return ValidationError{Code: CodeNegativeAmount, Kind: e.Kind, Field: "creditAmount", Message: fmt.Sprintf("credit %s is negative", e.Credit)}
	}
	if !e.Amount.IsZero() {
		return foreignAmount(e, "amount", e.Amount)
	}
	return validateDate(e)
}

// ValidateOneSided requires a positive amount, a non-blank account, and no
// debit or credit.
func ValidateOneSided(e model.Entry) error {
	if !e.Amount.IsPositive() {
		return ValidationError{Code: CodeInvalidAmount, Kind: e.Kind, Field: "amount", Message: fmt.Sprintf("amount %s must be greater than zero", e.Amount)}
	}
	if strings.TrimSpace(e.Account) == "" {
		return ValidationError{Code: CodeInvalidAmount, Kind: e.Kind, Field: "account", Message: "account is required"}
	}
	if !e.Debit.IsZero() {
		return foreignAmount(e, "debitAmount", e.Debit)
	}
	if !e.Credit.IsZero() {
		return foreignAmount(e, "creditAmount", e.Credit)
	}
	return validateDate(e)
}

// foreignAmount reports an amount field that belongs to the other variant
// and would be dropped from the ledger.
func foreignAmount(e model.Entry, field string, v fmt.Stringer) error {
	return ValidationError{Code: CodeForeignAmount, Kind: e.Kind, Field: field, Message: fmt.Sprintf("%s entries do not use %s, got %s", e.Kind, field, v)}
}

func validateDate(e model.Entry) error {
	if e.Date.IsZero() {
		return ValidationError{Code: CodeMissingDate, Kind: e.Kind, Field: "date", Message: "date is required"}
	}
	return nil
}

// checkAccount rejects entries naming an account absent from the chart.
// Blank accounts on two-sided entries are allowed.
func checkAccount(e model.Entry, accounts AccountChecker) error {
	if accounts == nil || e.Account == "" {
		return nil
	}
	if !accounts.Exists(e.Account) {
		return ValidationError{Code: CodeUnknownAccount, Kind: e.Kind, Field: "account", Message: fmt.Sprintf("unknown account %s", e.Account)}
	}
	return nil
}
