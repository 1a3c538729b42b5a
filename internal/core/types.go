package core

// OperationType classifies a money movement on an account.
type OperationType string

// CategoryType fixes which operation type a category may be attached to.
type CategoryType string

const (
	Income  OperationType = "INCOME"
	Expense OperationType = "EXPENSE"

	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

func (t OperationType) Valid() bool {
	return t == Income || t == Expense
}

func (t CategoryType) Valid() bool {
	return t == CategoryIncome || t == CategoryExpense
}

// compatible maps each category type to the single operation type it accepts.
var compatible = map[CategoryType]OperationType{
	CategoryIncome:  Income,
	CategoryExpense: Expense,
}

// Compatible reports whether an operation of type ot may be attached to a
// category of type ct.
func Compatible(ct CategoryType, ot OperationType) bool {
	return compatible[ct] == ot
}
