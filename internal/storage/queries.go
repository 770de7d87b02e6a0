package storage

import "context"

const createTransaction = `
INSERT INTO transactions (id, user_id, description, amount_cents, category, kind, tx_date)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, user_id, description, amount_cents, category, kind, tx_date, created_at
`

type CreateTransactionParams struct {
	ID          string
	UserID      string
	Description string
	AmountCents int64
	Category    string
	Kind        string
	TxDate      string
}

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error) {
	row := q.db.QueryRowContext(ctx, createTransaction,
		arg.ID, arg.UserID, arg.Description, arg.AmountCents, arg.Category, arg.Kind, arg.TxDate)
	var t Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.AmountCents, &t.Category, &t.Kind, &t.TxDate, &t.CreatedAt)
	return t, err
}

const getTransaction = `
SELECT id, user_id, description, amount_cents, category, kind, tx_date, created_at
FROM transactions
WHERE id = ? AND user_id = ?
`

type GetTransactionParams struct {
	ID     string
	UserID string
}

func (q *Queries) GetTransaction(ctx context.Context, arg GetTransactionParams) (Transaction, error) {
	row := q.db.QueryRowContext(ctx, getTransaction, arg.ID, arg.UserID)
	var t Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.AmountCents, &t.Category, &t.Kind, &t.TxDate, &t.CreatedAt)
	return t, err
}

const listTransactionsByUser = `
SELECT id, user_id, description, amount_cents, category, kind, tx_date, created_at
FROM transactions
WHERE user_id = ?
ORDER BY tx_date DESC, created_at DESC
`

func (q *Queries) ListTransactionsByUser(ctx context.Context, userID string) ([]Transaction, error) {
	rows, err := q.db.QueryContext(ctx, listTransactionsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.AmountCents, &t.Category, &t.Kind, &t.TxDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const listTransactionsSince = `
SELECT id, user_id, description, amount_cents, category, kind, tx_date, created_at
FROM transactions
WHERE user_id = ? AND tx_date >= ?
ORDER BY tx_date ASC, created_at ASC
`

type ListTransactionsSinceParams struct {
	UserID string
	TxDate string
}

func (q *Queries) ListTransactionsSince(ctx context.Context, arg ListTransactionsSinceParams) ([]Transaction, error) {
	rows, err := q.db.QueryContext(ctx, listTransactionsSince, arg.UserID, arg.TxDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.AmountCents, &t.Category, &t.Kind, &t.TxDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const searchTransactions = `
SELECT id, user_id, description, amount_cents, category, kind, tx_date, created_at
FROM transactions
WHERE user_id = ? AND (description LIKE ? OR category LIKE ?)
ORDER BY tx_date DESC, created_at DESC
`

type SearchTransactionsParams struct {
	UserID  string
	Pattern string
}

func (q *Queries) SearchTransactions(ctx context.Context, arg SearchTransactionsParams) ([]Transaction, error) {
	rows, err := q.db.QueryContext(ctx, searchTransactions, arg.UserID, arg.Pattern, arg.Pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.AmountCents, &t.Category, &t.Kind, &t.TxDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const deleteTransaction = `
DELETE FROM transactions WHERE id = ? AND user_id = ?
`

type DeleteTransactionParams struct {
	ID     string
	UserID string
}

func (q *Queries) DeleteTransaction(ctx context.Context, arg DeleteTransactionParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteTransaction, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const createIncomeSource = `
INSERT INTO income_sources (id, user_id, source, amount_cents, frequency, received_date)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, user_id, source, amount_cents, frequency, received_date, created_at
`

type CreateIncomeSourceParams struct {
	ID           string
	UserID       string
	Source       string
	AmountCents  int64
	Frequency    string
	ReceivedDate string
}

func (q *Queries) CreateIncomeSource(ctx context.Context, arg CreateIncomeSourceParams) (IncomeSource, error) {
	row := q.db.QueryRowContext(ctx, createIncomeSource,
		arg.ID, arg.UserID, arg.Source, arg.AmountCents, arg.Frequency, arg.ReceivedDate)
	var s IncomeSource
	err := row.Scan(&s.ID, &s.UserID, &s.Source, &s.AmountCents, &s.Frequency, &s.ReceivedDate, &s.CreatedAt)
	return s, err
}

const listIncomeSourcesByUser = `
SELECT id, user_id, source, amount_cents, frequency, received_date, created_at
FROM income_sources
WHERE user_id = ?
ORDER BY created_at ASC
`

func (q *Queries) ListIncomeSourcesByUser(ctx context.Context, userID string) ([]IncomeSource, error) {
	rows, err := q.db.QueryContext(ctx, listIncomeSourcesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []IncomeSource
	for rows.Next() {
		var s IncomeSource
		if err := rows.Scan(&s.ID, &s.UserID, &s.Source, &s.AmountCents, &s.Frequency, &s.ReceivedDate, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const deleteIncomeSource = `
DELETE FROM income_sources WHERE id = ? AND user_id = ?
`

type DeleteIncomeSourceParams struct {
	ID     string
	UserID string
}

func (q *Queries) DeleteIncomeSource(ctx context.Context, arg DeleteIncomeSourceParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteIncomeSource, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const createBudgetCategory = `
INSERT INTO budget_categories (id, user_id, name, budget_cents, color)
VALUES (?, ?, ?, ?, ?)
RETURNING id, user_id, name, budget_cents, spent_cents, color, created_at
`

type CreateBudgetCategoryParams struct {
	ID          string
	UserID      string
	Name        string
	BudgetCents int64
	Color       string
}

func (q *Queries) CreateBudgetCategory(ctx context.Context, arg CreateBudgetCategoryParams) (BudgetCategory, error) {
	row := q.db.QueryRowContext(ctx, createBudgetCategory,
		arg.ID, arg.UserID, arg.Name, arg.BudgetCents, arg.Color)
	var c BudgetCategory
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.BudgetCents, &c.SpentCents, &c.Color, &c.CreatedAt)
	return c, err
}

const listBudgetCategoriesByUser = `
SELECT id, user_id, name, budget_cents, spent_cents, color, created_at
FROM budget_categories
WHERE user_id = ?
ORDER BY name ASC
`

func (q *Queries) ListBudgetCategoriesByUser(ctx context.Context, userID string) ([]BudgetCategory, error) {
	rows, err := q.db.QueryContext(ctx, listBudgetCategoriesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BudgetCategory
	for rows.Next() {
		var c BudgetCategory
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.BudgetCents, &c.SpentCents, &c.Color, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const updateBudgetSpent = `
UPDATE budget_categories SET spent_cents = ? WHERE id = ? AND user_id = ?
`

type UpdateBudgetSpentParams struct {
	SpentCents int64
	ID         string
	UserID     string
}

func (q *Queries) UpdateBudgetSpent(ctx context.Context, arg UpdateBudgetSpentParams) error {
	_, err := q.db.ExecContext(ctx, updateBudgetSpent, arg.SpentCents, arg.ID, arg.UserID)
	return err
}

const deleteBudgetCategory = `
DELETE FROM budget_categories WHERE id = ? AND user_id = ?
`

type DeleteBudgetCategoryParams struct {
	ID     string
	UserID string
}

func (q *Queries) DeleteBudgetCategory(ctx context.Context, arg DeleteBudgetCategoryParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteBudgetCategory, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const createGoal = `
INSERT INTO goals (id, user_id, name, current_cents, target_cents, target_date)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, user_id, name, current_cents, target_cents, target_date, created_at
`

type CreateGoalParams struct {
	ID           string
	UserID       string
	Name         string
	CurrentCents int64
	TargetCents  int64
	TargetDate   string
}

func (q *Queries) CreateGoal(ctx context.Context, arg CreateGoalParams) (Goal, error) {
	row := q.db.QueryRowContext(ctx, createGoal,
		arg.ID, arg.UserID, arg.Name, arg.CurrentCents, arg.TargetCents, arg.TargetDate)
	var g Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.CurrentCents, &g.TargetCents, &g.TargetDate, &g.CreatedAt)
	return g, err
}

const getGoal = `
SELECT id, user_id, name, current_cents, target_cents, target_date, created_at
FROM goals
WHERE id = ? AND user_id = ?
`

type GetGoalParams struct {
	ID     string
	UserID string
}

func (q *Queries) GetGoal(ctx context.Context, arg GetGoalParams) (Goal, error) {
	row := q.db.QueryRowContext(ctx, getGoal, arg.ID, arg.UserID)
	var g Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.CurrentCents, &g.TargetCents, &g.TargetDate, &g.CreatedAt)
	return g, err
}

const listGoalsByUser = `
SELECT id, user_id, name, current_cents, target_cents, target_date, created_at
FROM goals
WHERE user_id = ?
ORDER BY target_date ASC
`

func (q *Queries) ListGoalsByUser(ctx context.Context, userID string) ([]Goal, error) {
	rows, err := q.db.QueryContext(ctx, listGoalsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.CurrentCents, &g.TargetCents, &g.TargetDate, &g.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

const updateGoalAmount = `
UPDATE goals SET current_cents = ? WHERE id = ? AND user_id = ?
`

type UpdateGoalAmountParams struct {
	CurrentCents int64
	ID           string
	UserID       string
}

func (q *Queries) UpdateGoalAmount(ctx context.Context, arg UpdateGoalAmountParams) error {
	_, err := q.db.ExecContext(ctx, updateGoalAmount, arg.CurrentCents, arg.ID, arg.UserID)
	return err
}

const deleteGoal = `
DELETE FROM goals WHERE id = ? AND user_id = ?
`

type DeleteGoalParams struct {
	ID     string
	UserID string
}

func (q *Queries) DeleteGoal(ctx context.Context, arg DeleteGoalParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteGoal, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const createBillReminder = `
INSERT INTO bill_reminders (id, user_id, title, description, amount_cents, category, due_date, frequency, reminder_days, auto_pay)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, user_id, title, description, amount_cents, category, due_date, next_due_date, frequency, reminder_days, is_paid, auto_pay, created_at
`

type CreateBillReminderParams struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	AmountCents  int64
	Category     string
	DueDate      string
	Frequency    string
	ReminderDays int64
	AutoPay      bool
}

func (q *Queries) CreateBillReminder(ctx context.Context, arg CreateBillReminderParams) (BillReminder, error) {
	row := q.db.QueryRowContext(ctx, createBillReminder,
		arg.ID, arg.UserID, arg.Title, arg.Description, arg.AmountCents, arg.Category,
		arg.DueDate, arg.Frequency, arg.ReminderDays, arg.AutoPay)
	var b BillReminder
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.AmountCents, &b.Category,
		&b.DueDate, &b.NextDueDate, &b.Frequency, &b.ReminderDays, &b.IsPaid, &b.AutoPay, &b.CreatedAt)
	return b, err
}

const getBillReminder = `
SELECT id, user_id, title, description, amount_cents, category, due_date, next_due_date, frequency, reminder_days, is_paid, auto_pay, created_at
FROM bill_reminders
WHERE id = ? AND user_id = ?
`

type GetBillReminderParams struct {
	ID     string
	UserID string
}

func (q *Queries) GetBillReminder(ctx context.Context, arg GetBillReminderParams) (BillReminder, error) {
	row := q.db.QueryRowContext(ctx, getBillReminder, arg.ID, arg.UserID)
	var b BillReminder
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.AmountCents, &b.Category,
		&b.DueDate, &b.NextDueDate, &b.Frequency, &b.ReminderDays, &b.IsPaid, &b.AutoPay, &b.CreatedAt)
	return b, err
}

const listBillRemindersByUser = `
SELECT id, user_id, title, description, amount_cents, category, due_date, next_due_date, frequency, reminder_days, is_paid, auto_pay, created_at
FROM bill_reminders
WHERE user_id = ?
ORDER BY due_date ASC
`

func (q *Queries) ListBillRemindersByUser(ctx context.Context, userID string) ([]BillReminder, error) {
	rows, err := q.db.QueryContext(ctx, listBillRemindersByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BillReminder
	for rows.Next() {
		var b BillReminder
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.AmountCents, &b.Category,
			&b.DueDate, &b.NextDueDate, &b.Frequency, &b.ReminderDays, &b.IsPaid, &b.AutoPay, &b.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const listPaidRecurringBills = `
SELECT id, user_id, title, description, amount_cents, category, due_date, next_due_date, frequency, reminder_days, is_paid, auto_pay, created_at
FROM bill_reminders
WHERE is_paid = 1 AND frequency != 'one-time'
`

// ListPaidRecurringBills spans all users: the rollover worker advances
// every paid recurring bill regardless of owner.
func (q *Queries) ListPaidRecurringBills(ctx context.Context) ([]BillReminder, error) {
	rows, err := q.db.QueryContext(ctx, listPaidRecurringBills)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BillReminder
	for rows.Next() {
		var b BillReminder
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.AmountCents, &b.Category,
			&b.DueDate, &b.NextDueDate, &b.Frequency, &b.ReminderDays, &b.IsPaid, &b.AutoPay, &b.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const markBillPaid = `
UPDATE bill_reminders SET is_paid = 1 WHERE id = ? AND user_id = ?
`

type MarkBillPaidParams struct {
	ID     string
	UserID string
}

func (q *Queries) MarkBillPaid(ctx context.Context, arg MarkBillPaidParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, markBillPaid, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const rollBillForward = `
UPDATE bill_reminders SET next_due_date = ?, is_paid = 0 WHERE id = ?
`

type RollBillForwardParams struct {
	NextDueDate string
	ID          string
}

func (q *Queries) RollBillForward(ctx context.Context, arg RollBillForwardParams) error {
	_, err := q.db.ExecContext(ctx, rollBillForward, arg.NextDueDate, arg.ID)
	return err
}

const deleteBillReminder = `
DELETE FROM bill_reminders WHERE id = ? AND user_id = ?
`

type DeleteBillReminderParams struct {
	ID     string
	UserID string
}

func (q *Queries) DeleteBillReminder(ctx context.Context, arg DeleteBillReminderParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteBillReminder, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const createSharedExpense = `
INSERT INTO shared_expenses (id, created_by, title, description, total_cents, category)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, created_by, title, description, total_cents, category, is_settled, created_at
`

type CreateSharedExpenseParams struct {
	ID          string
	CreatedBy   string
	Title       string
	Description string
	TotalCents  int64
	Category    string
}

func (q *Queries) CreateSharedExpense(ctx context.Context, arg CreateSharedExpenseParams) (SharedExpense, error) {
	row := q.db.QueryRowContext(ctx, createSharedExpense,
		arg.ID, arg.CreatedBy, arg.Title, arg.Description, arg.TotalCents, arg.Category)
	var e SharedExpense
	err := row.Scan(&e.ID, &e.CreatedBy, &e.Title, &e.Description, &e.TotalCents, &e.Category, &e.IsSettled, &e.CreatedAt)
	return e, err
}

const listSharedExpensesByCreator = `
SELECT id, created_by, title, description, total_cents, category, is_settled, created_at
FROM shared_expenses
WHERE created_by = ?
ORDER BY created_at DESC
`

func (q *Queries) ListSharedExpensesByCreator(ctx context.Context, createdBy string) ([]SharedExpense, error) {
	rows, err := q.db.QueryContext(ctx, listSharedExpensesByCreator, createdBy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SharedExpense
	for rows.Next() {
		var e SharedExpense
		if err := rows.Scan(&e.ID, &e.CreatedBy, &e.Title, &e.Description, &e.TotalCents, &e.Category, &e.IsSettled, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const getSharedExpense = `
SELECT id, created_by, title, description, total_cents, category, is_settled, created_at
FROM shared_expenses
WHERE id = ?
`

func (q *Queries) GetSharedExpense(ctx context.Context, id string) (SharedExpense, error) {
	row := q.db.QueryRowContext(ctx, getSharedExpense, id)
	var e SharedExpense
	err := row.Scan(&e.ID, &e.CreatedBy, &e.Title, &e.Description, &e.TotalCents, &e.Category, &e.IsSettled, &e.CreatedAt)
	return e, err
}

const settleSharedExpense = `
UPDATE shared_expenses SET is_settled = 1 WHERE id = ?
`

func (q *Queries) SettleSharedExpense(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, settleSharedExpense, id)
	return err
}

const createExpenseParticipant = `
INSERT INTO expense_participants (id, expense_id, email, amount_owed_cents)
VALUES (?, ?, ?, ?)
RETURNING id, expense_id, email, amount_owed_cents, amount_paid_cents, is_settled
`

type CreateExpenseParticipantParams struct {
	ID              string
	ExpenseID       string
	Email           string
	AmountOwedCents int64
}

func (q *Queries) CreateExpenseParticipant(ctx context.Context, arg CreateExpenseParticipantParams) (ExpenseParticipant, error) {
	row := q.db.QueryRowContext(ctx, createExpenseParticipant,
		arg.ID, arg.ExpenseID, arg.Email, arg.AmountOwedCents)
	var p ExpenseParticipant
	err := row.Scan(&p.ID, &p.ExpenseID, &p.Email, &p.AmountOwedCents, &p.AmountPaidCents, &p.IsSettled)
	return p, err
}

const listExpenseParticipants = `
SELECT id, expense_id, email, amount_owed_cents, amount_paid_cents, is_settled
FROM expense_participants
WHERE expense_id = ?
ORDER BY email ASC
`

func (q *Queries) ListExpenseParticipants(ctx context.Context, expenseID string) ([]ExpenseParticipant, error) {
	rows, err := q.db.QueryContext(ctx, listExpenseParticipants, expenseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ExpenseParticipant
	for rows.Next() {
		var p ExpenseParticipant
		if err := rows.Scan(&p.ID, &p.ExpenseID, &p.Email, &p.AmountOwedCents, &p.AmountPaidCents, &p.IsSettled); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const settleExpenseParticipant = `
UPDATE expense_participants
SET amount_paid_cents = amount_owed_cents, is_settled = 1
WHERE id = ? AND expense_id = ?
`

type SettleExpenseParticipantParams struct {
	ID        string
	ExpenseID string
}

func (q *Queries) SettleExpenseParticipant(ctx context.Context, arg SettleExpenseParticipantParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, settleExpenseParticipant, arg.ID, arg.ExpenseID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countUnsettledParticipants = `
SELECT COUNT(*) FROM expense_participants WHERE expense_id = ? AND is_settled = 0
`

func (q *Queries) CountUnsettledParticipants(ctx context.Context, expenseID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUnsettledParticipants, expenseID)
	var n int64
	err := row.Scan(&n)
	return n, err
}

const deleteSharedExpense = `
DELETE FROM shared_expenses WHERE id = ? AND created_by = ?
`

type DeleteSharedExpenseParams struct {
	ID        string
	CreatedBy string
}

func (q *Queries) DeleteSharedExpense(ctx context.Context, arg DeleteSharedExpenseParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteSharedExpense, arg.ID, arg.CreatedBy)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const getCurrencyPreference = `
SELECT user_id, code, symbol, updated_at FROM currency_preferences WHERE user_id = ?
`

func (q *Queries) GetCurrencyPreference(ctx context.Context, userID string) (CurrencyPreference, error) {
	row := q.db.QueryRowContext(ctx, getCurrencyPreference, userID)
	var p CurrencyPreference
	err := row.Scan(&p.UserID, &p.Code, &p.Symbol, &p.UpdatedAt)
	return p, err
}

const upsertCurrencyPreference = `
INSERT INTO currency_preferences (user_id, code, symbol, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (user_id) DO UPDATE SET code = excluded.code, symbol = excluded.symbol, updated_at = CURRENT_TIMESTAMP
`

type UpsertCurrencyPreferenceParams struct {
	UserID string
	Code   string
	Symbol string
}

func (q *Queries) UpsertCurrencyPreference(ctx context.Context, arg UpsertCurrencyPreferenceParams) error {
	_, err := q.db.ExecContext(ctx, upsertCurrencyPreference, arg.UserID, arg.Code, arg.Symbol)
	return err
}
