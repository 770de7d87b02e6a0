package core

// Suggested category labels for the entry forms. Categories are free
// strings everywhere else; these lists only seed dropdowns.
var (
	TransactionCategories = []string{
		"Food", "Transport", "Entertainment", "Groceries", "Bills",
		"Education", "Shopping", "Health", "Income", "Other",
	}

	BillCategories = []string{
		"Rent", "Utilities", "Insurance", "Subscriptions", "Loans",
		"Credit Cards", "Phone", "Internet", "Groceries", "Other",
	}

	SharedExpenseCategories = []string{
		"Rent", "Utilities", "Groceries", "Dining", "Travel",
		"Entertainment", "Shopping", "Bills", "Other",
	}
)
