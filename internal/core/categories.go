package core

// Built-in category choices offered by quick-create. CategoryOther is
// the escape hatch: selecting it requires a custom label, which goes
// through NormalizeCategory before submission.

var IncomeCategories = []string{
	"salary",
	"freelance",
	"scholarship",
	"investment",
	"dividend",
	"refund",
	"gift",
	CategoryOther,
}

var ExpenseCategories = []string{
	"rent",
	"utilities",
	"health insurance",
	"groceries",
	"transport",
	"dining out",
	"shopping",
	"entertainment",
	"phone bills",
	"education",
	"travel",
	"gym",
	"medical",
	CategoryOther,
}

// CategoriesFor returns the built-in choices for a transaction type.
func CategoriesFor(t TxType) []string {
	if t == Income {
		return IncomeCategories
	}
	return ExpenseCategories
}
