package accounts

import "github.com/cleared-dev/bursar/internal/model"

// DefaultChart returns the default chart of accounts for a kind of school.
func DefaultChart(schoolType string) []model.Account {
	switch schoolType {
	case "day":
		return dayChart()
	default:
		return boardingChart()
	}
}

func dayChart() []model.Account {
	return []model.Account{
		{Code: "1010", Name: "Cash on Hand", Type: model.AccountTypeAsset},
		{Code: "1020", Name: "School Bank Account", Type: model.AccountTypeAsset},
		{Code: "1100", Name: "Fees Receivable", Type: model.AccountTypeAsset},
		{Code: "2010", Name: "Accounts Payable", Type: model.AccountTypeLiability},
		{Code: "2100", Name: "Fees Received in Advance", Type: model.AccountTypeLiability},
		{Code: "3010", Name: "Accumulated Fund", Type: model.AccountTypeEquity},
		{Code: "4010", Name: "Tuition Fees", Type: model.AccountTypeRevenue},
		{Code: "4020", Name: "Transport Fees", Type: model.AccountTypeRevenue},
		{Code: "4040", Name: "Grants and Donations", Type: model.AccountTypeRevenue},
		{Code: "5010", Name: "Salaries and Wages", Type: model.AccountTypeExpense},
		{Code: "5020", Name: "Teaching Materials", Type: model.AccountTypeExpense},
		{Code: "5030", Name: "Utilities", Type: model.AccountTypeExpense},
		{Code: "5040", Name: "Repairs and Maintenance", Type: model.AccountTypeExpense},
	}
}

func boardingChart() []model.Account {
	chart := dayChart()
	return append(chart,
		model.Account{Code: "4030", Name: "Boarding Fees", Type: model.AccountTypeRevenue},
		model.Account{Code: "5050", Name: "Meals and Catering", Type: model.AccountTypeExpense},
	)
}
