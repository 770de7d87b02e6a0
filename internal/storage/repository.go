package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finmate/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a row does not exist or belongs to a
// different user. Ownership misses are indistinguishable from absence.
var ErrNotFound = errors.New("not found")

const dateLayout = "2006-01-02"

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func formatDate(d core.Date) string {
	if d.IsEmpty() {
		return ""
	}
	return d.Format(dateLayout)
}

func parseDate(s string) core.Date {
	if s == "" {
		return core.Date{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return core.Date{}
	}
	return core.DateOf(t)
}

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	row, err := r.queries.CreateTransaction(ctx, CreateTransactionParams{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Description: tx.Description,
		AmountCents: tx.Amount.Cents,
		Category:    tx.Category,
		Kind:        string(tx.Kind),
		TxDate:      formatDate(tx.Date),
	})
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", row.ID,
		"user_id", row.UserID,
		"kind", row.Kind,
		"amount_cents", row.AmountCents,
		"category", row.Category)

	return toCoreTransaction(row), nil
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, userID, id string) (core.Transaction, error) {
	row, err := r.queries.GetTransaction(ctx, GetTransactionParams{ID: id, UserID: userID})
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return toCoreTransaction(row), nil
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return toCoreTransactions(rows), nil
}

func (r *SQLiteRepository) ListTransactionsSince(ctx context.Context, userID string, since core.Date) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactionsSince(ctx, ListTransactionsSinceParams{
		UserID: userID,
		TxDate: formatDate(since),
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions since %s: %w", formatDate(since), err)
	}
	return toCoreTransactions(rows), nil
}

func (r *SQLiteRepository) SearchTransactions(ctx context.Context, userID, query string) ([]core.Transaction, error) {
	rows, err := r.queries.SearchTransactions(ctx, SearchTransactionsParams{
		UserID:  userID,
		Pattern: "%" + query + "%",
	})
	if err != nil {
		return nil, fmt.Errorf("search transactions: %w", err)
	}
	return toCoreTransactions(rows), nil
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, userID, id string) error {
	n, err := r.queries.DeleteTransaction(ctx, DeleteTransactionParams{ID: id, UserID: userID})
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toCoreTransaction(row Transaction) core.Transaction {
	return core.Transaction{
		ID:          row.ID,
		UserID:      row.UserID,
		Description: row.Description,
		Amount:      core.Money{Cents: row.AmountCents},
		Category:    row.Category,
		Kind:        core.TransactionKind(row.Kind),
		Date:        parseDate(row.TxDate),
		CreatedAt:   row.CreatedAt,
	}
}

func toCoreTransactions(rows []Transaction) []core.Transaction {
	out := make([]core.Transaction, len(rows))
	for i, row := range rows {
		out[i] = toCoreTransaction(row)
	}
	return out
}

func (r *SQLiteRepository) CreateIncomeSource(ctx context.Context, src core.IncomeSource) (core.IncomeSource, error) {
	row, err := r.queries.CreateIncomeSource(ctx, CreateIncomeSourceParams{
		ID:           src.ID,
		UserID:       src.UserID,
		Source:       src.Source,
		AmountCents:  src.Amount.Cents,
		Frequency:    string(src.Frequency),
		ReceivedDate: formatDate(src.Date),
	})
	if err != nil {
		return core.IncomeSource{}, fmt.Errorf("create income source: %w", err)
	}

	slog.InfoContext(ctx, "Income source saved",
		"id", row.ID,
		"user_id", row.UserID,
		"frequency", row.Frequency,
		"amount_cents", row.AmountCents)

	return toCoreIncomeSource(row), nil
}

func (r *SQLiteRepository) ListIncomeSources(ctx context.Context, userID string) ([]core.IncomeSource, error) {
	rows, err := r.queries.ListIncomeSourcesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list income sources: %w", err)
	}
	out := make([]core.IncomeSource, len(rows))
	for i, row := range rows {
		out[i] = toCoreIncomeSource(row)
	}
	return out, nil
}

func (r *SQLiteRepository) DeleteIncomeSource(ctx context.Context, userID, id string) error {
	n, err := r.queries.DeleteIncomeSource(ctx, DeleteIncomeSourceParams{ID: id, UserID: userID})
	if err != nil {
		return fmt.Errorf("delete income source: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toCoreIncomeSource(row IncomeSource) core.IncomeSource {
	return core.IncomeSource{
		ID:        row.ID,
		UserID:    row.UserID,
		Source:    row.Source,
		Amount:    core.Money{Cents: row.AmountCents},
		Frequency: core.PayFrequency(row.Frequency),
		Date:      parseDate(row.ReceivedDate),
	}
}

func (r *SQLiteRepository) CreateBudgetCategory(ctx context.Context, cat core.BudgetCategory) (core.BudgetCategory, error) {
	row, err := r.queries.CreateBudgetCategory(ctx, CreateBudgetCategoryParams{
		ID:          cat.ID,
		UserID:      cat.UserID,
		Name:        cat.Name,
		BudgetCents: cat.Budget.Cents,
		Color:       cat.Color,
	})
	if err != nil {
		return core.BudgetCategory{}, fmt.Errorf("create budget category: %w", err)
	}

	slog.InfoContext(ctx, "Budget category saved",
		"id", row.ID,
		"user_id", row.UserID,
		"name", row.Name,
		"budget_cents", row.BudgetCents)

	return toCoreBudgetCategory(row), nil
}

func (r *SQLiteRepository) ListBudgetCategories(ctx context.Context, userID string) ([]core.BudgetCategory, error) {
	rows, err := r.queries.ListBudgetCategoriesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list budget categories: %w", err)
	}
	out := make([]core.BudgetCategory, len(rows))
	for i, row := range rows {
		out[i] = toCoreBudgetCategory(row)
	}
	return out, nil
}

// SaveBudgetSpent persists a recomputed spent figure. The stored value is
// a cache; reads always re-derive from transactions.
func (r *SQLiteRepository) SaveBudgetSpent(ctx context.Context, userID, id string, spent core.Money) error {
	err := r.queries.UpdateBudgetSpent(ctx, UpdateBudgetSpentParams{
		SpentCents: spent.Cents,
		ID:         id,
		UserID:     userID,
	})
	if err != nil {
		return fmt.Errorf("save budget spent: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteBudgetCategory(ctx context.Context, userID, id string) error {
	n, err := r.queries.DeleteBudgetCategory(ctx, DeleteBudgetCategoryParams{ID: id, UserID: userID})
	if err != nil {
		return fmt.Errorf("delete budget category: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toCoreBudgetCategory(row BudgetCategory) core.BudgetCategory {
	return core.BudgetCategory{
		ID:     row.ID,
		UserID: row.UserID,
		Name:   row.Name,
		Budget: core.Money{Cents: row.BudgetCents},
		Spent:  core.Money{Cents: row.SpentCents},
		Color:  row.Color,
	}
}

func (r *SQLiteRepository) CreateGoal(ctx context.Context, g core.Goal) (core.Goal, error) {
	row, err := r.queries.CreateGoal(ctx, CreateGoalParams{
		ID:           g.ID,
		UserID:       g.UserID,
		Name:         g.Name,
		CurrentCents: g.CurrentAmount.Cents,
		TargetCents:  g.TargetAmount.Cents,
		TargetDate:   formatDate(g.TargetDate),
	})
	if err != nil {
		return core.Goal{}, fmt.Errorf("create goal: %w", err)
	}

	slog.InfoContext(ctx, "Goal saved",
		"id", row.ID,
		"user_id", row.UserID,
		"name", row.Name,
		"target_cents", row.TargetCents)

	return toCoreGoal(row), nil
}

func (r *SQLiteRepository) GetGoal(ctx context.Context, userID, id string) (core.Goal, error) {
	row, err := r.queries.GetGoal(ctx, GetGoalParams{ID: id, UserID: userID})
	if errors.Is(err, sql.ErrNoRows) {
		return core.Goal{}, ErrNotFound
	}
	if err != nil {
		return core.Goal{}, fmt.Errorf("get goal: %w", err)
	}
	return toCoreGoal(row), nil
}

func (r *SQLiteRepository) ListGoals(ctx context.Context, userID string) ([]core.Goal, error) {
	rows, err := r.queries.ListGoalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	out := make([]core.Goal, len(rows))
	for i, row := range rows {
		out[i] = toCoreGoal(row)
	}
	return out, nil
}

func (r *SQLiteRepository) SaveGoalAmount(ctx context.Context, userID, id string, current core.Money) error {
	err := r.queries.UpdateGoalAmount(ctx, UpdateGoalAmountParams{
		CurrentCents: current.Cents,
		ID:           id,
		UserID:       userID,
	})
	if err != nil {
		return fmt.Errorf("save goal amount: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteGoal(ctx context.Context, userID, id string) error {
	n, err := r.queries.DeleteGoal(ctx, DeleteGoalParams{ID: id, UserID: userID})
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toCoreGoal(row Goal) core.Goal {
	return core.Goal{
		ID:            row.ID,
		UserID:        row.UserID,
		Name:          row.Name,
		CurrentAmount: core.Money{Cents: row.CurrentCents},
		TargetAmount:  core.Money{Cents: row.TargetCents},
		TargetDate:    parseDate(row.TargetDate),
	}
}

func (r *SQLiteRepository) CreateBillReminder(ctx context.Context, b core.BillReminder) (core.BillReminder, error) {
	row, err := r.queries.CreateBillReminder(ctx, CreateBillReminderParams{
		ID:           b.ID,
		UserID:       b.UserID,
		Title:        b.Title,
		Description:  b.Description,
		AmountCents:  b.Amount.Cents,
		Category:     b.Category,
		DueDate:      formatDate(b.DueDate),
		Frequency:    string(b.Frequency),
		ReminderDays: int64(b.ReminderDays),
		AutoPay:      b.AutoPay,
	})
	if err != nil {
		return core.BillReminder{}, fmt.Errorf("create bill reminder: %w", err)
	}

	slog.InfoContext(ctx, "Bill reminder saved",
		"id", row.ID,
		"user_id", row.UserID,
		"title", row.Title,
		"due_date", row.DueDate,
		"frequency", row.Frequency)

	return toCoreBillReminder(row), nil
}

func (r *SQLiteRepository) GetBillReminder(ctx context.Context, userID, id string) (core.BillReminder, error) {
	row, err := r.queries.GetBillReminder(ctx, GetBillReminderParams{ID: id, UserID: userID})
	if errors.Is(err, sql.ErrNoRows) {
		return core.BillReminder{}, ErrNotFound
	}
	if err != nil {
		return core.BillReminder{}, fmt.Errorf("get bill reminder: %w", err)
	}
	return toCoreBillReminder(row), nil
}

func (r *SQLiteRepository) ListBillReminders(ctx context.Context, userID string) ([]core.BillReminder, error) {
	rows, err := r.queries.ListBillRemindersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bill reminders: %w", err)
	}
	out := make([]core.BillReminder, len(rows))
	for i, row := range rows {
		out[i] = toCoreBillReminder(row)
	}
	return out, nil
}

func (r *SQLiteRepository) ListPaidRecurringBills(ctx context.Context) ([]core.BillReminder, error) {
	rows, err := r.queries.ListPaidRecurringBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("list paid recurring bills: %w", err)
	}
	out := make([]core.BillReminder, len(rows))
	for i, row := range rows {
		out[i] = toCoreBillReminder(row)
	}
	return out, nil
}

func (r *SQLiteRepository) MarkBillPaid(ctx context.Context, userID, id string) error {
	n, err := r.queries.MarkBillPaid(ctx, MarkBillPaidParams{ID: id, UserID: userID})
	if err != nil {
		return fmt.Errorf("mark bill paid: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	slog.InfoContext(ctx, "Bill marked paid", "id", id, "user_id", userID)
	return nil
}

// RollBillForward advances the recurrence cursor and clears the paid flag
// so the bill re-enters the unpaid lifecycle for its next occurrence.
func (r *SQLiteRepository) RollBillForward(ctx context.Context, id string, nextDue core.Date) error {
	err := r.queries.RollBillForward(ctx, RollBillForwardParams{
		NextDueDate: formatDate(nextDue),
		ID:          id,
	})
	if err != nil {
		return fmt.Errorf("roll bill forward: %w", err)
	}

	slog.InfoContext(ctx, "Bill rolled forward", "id", id, "next_due", formatDate(nextDue))
	return nil
}

func (r *SQLiteRepository) DeleteBillReminder(ctx context.Context, userID, id string) error {
	n, err := r.queries.DeleteBillReminder(ctx, DeleteBillReminderParams{ID: id, UserID: userID})
	if err != nil {
		return fmt.Errorf("delete bill reminder: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toCoreBillReminder(row BillReminder) core.BillReminder {
	return core.BillReminder{
		ID:           row.ID,
		UserID:       row.UserID,
		Title:        row.Title,
		Description:  row.Description,
		Amount:       core.Money{Cents: row.AmountCents},
		Category:     row.Category,
		DueDate:      parseDate(row.DueDate),
		NextDueDate:  parseDate(row.NextDueDate),
		Frequency:    core.BillFrequency(row.Frequency),
		ReminderDays: int(row.ReminderDays),
		IsPaid:       row.IsPaid,
		AutoPay:      row.AutoPay,
	}
}

// CreateSharedExpense inserts the expense and all its participants in one
// transaction so a half-created split can never exist.
func (r *SQLiteRepository) CreateSharedExpense(ctx context.Context, e core.SharedExpense) (core.SharedExpense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.SharedExpense{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	row, err := qtx.CreateSharedExpense(ctx, CreateSharedExpenseParams{
		ID:          e.ID,
		CreatedBy:   e.CreatedBy,
		Title:       e.Title,
		Description: e.Description,
		TotalCents:  e.TotalAmount.Cents,
		Category:    e.Category,
	})
	if err != nil {
		return core.SharedExpense{}, fmt.Errorf("create shared expense: %w", err)
	}

	participants := make([]core.ExpenseParticipant, 0, len(e.Participants))
	for _, p := range e.Participants {
		prow, err := qtx.CreateExpenseParticipant(ctx, CreateExpenseParticipantParams{
			ID:              p.ID,
			ExpenseID:       row.ID,
			Email:           p.Email,
			AmountOwedCents: p.AmountOwed.Cents,
		})
		if err != nil {
			return core.SharedExpense{}, fmt.Errorf("create participant: %w", err)
		}
		participants = append(participants, toCoreParticipant(prow))
	}

	if err := tx.Commit(); err != nil {
		return core.SharedExpense{}, fmt.Errorf("commit shared expense: %w", err)
	}

	slog.InfoContext(ctx, "Shared expense saved",
		"id", row.ID,
		"created_by", row.CreatedBy,
		"total_cents", row.TotalCents,
		"participants", len(participants))

	out := toCoreSharedExpense(row)
	out.Participants = participants
	return out, nil
}

func (r *SQLiteRepository) ListSharedExpenses(ctx context.Context, createdBy string) ([]core.SharedExpense, error) {
	rows, err := r.queries.ListSharedExpensesByCreator(ctx, createdBy)
	if err != nil {
		return nil, fmt.Errorf("list shared expenses: %w", err)
	}

	out := make([]core.SharedExpense, len(rows))
	for i, row := range rows {
		e := toCoreSharedExpense(row)
		prows, err := r.queries.ListExpenseParticipants(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("list participants for %s: %w", row.ID, err)
		}
		for _, prow := range prows {
			e.Participants = append(e.Participants, toCoreParticipant(prow))
		}
		out[i] = e
	}
	return out, nil
}

// SettleParticipant marks one share paid in full. The expense must
// have been created by userID; anyone else gets ErrNotFound. When the
// last share settles, the parent expense flips to settled as well.
func (r *SQLiteRepository) SettleParticipant(ctx context.Context, userID, expenseID, participantID string) error {
	expense, err := r.queries.GetSharedExpense(ctx, expenseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get shared expense: %w", err)
	}
	if expense.CreatedBy != userID {
		return ErrNotFound
	}

	n, err := r.queries.SettleExpenseParticipant(ctx, SettleExpenseParticipantParams{
		ID:        participantID,
		ExpenseID: expenseID,
	})
	if err != nil {
		return fmt.Errorf("settle participant: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	remaining, err := r.queries.CountUnsettledParticipants(ctx, expenseID)
	if err != nil {
		return fmt.Errorf("count unsettled participants: %w", err)
	}
	if remaining == 0 {
		if err := r.queries.SettleSharedExpense(ctx, expenseID); err != nil {
			return fmt.Errorf("settle shared expense: %w", err)
		}
		slog.InfoContext(ctx, "Shared expense fully settled", "expense_id", expenseID)
	}
	return nil
}

func (r *SQLiteRepository) DeleteSharedExpense(ctx context.Context, createdBy, id string) error {
	n, err := r.queries.DeleteSharedExpense(ctx, DeleteSharedExpenseParams{ID: id, CreatedBy: createdBy})
	if err != nil {
		return fmt.Errorf("delete shared expense: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toCoreSharedExpense(row SharedExpense) core.SharedExpense {
	return core.SharedExpense{
		ID:          row.ID,
		CreatedBy:   row.CreatedBy,
		Title:       row.Title,
		Description: row.Description,
		TotalAmount: core.Money{Cents: row.TotalCents},
		Category:    row.Category,
		IsSettled:   row.IsSettled,
		CreatedAt:   row.CreatedAt,
	}
}

func toCoreParticipant(row ExpenseParticipant) core.ExpenseParticipant {
	return core.ExpenseParticipant{
		ID:         row.ID,
		ExpenseID:  row.ExpenseID,
		Email:      row.Email,
		AmountOwed: core.Money{Cents: row.AmountOwedCents},
		AmountPaid: core.Money{Cents: row.AmountPaidCents},
		IsSettled:  row.IsSettled,
	}
}

func (r *SQLiteRepository) GetCurrencyPreference(ctx context.Context, userID string) (core.CurrencyPreference, error) {
	row, err := r.queries.GetCurrencyPreference(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return core.CurrencyPreference{}, ErrNotFound
	}
	if err != nil {
		return core.CurrencyPreference{}, fmt.Errorf("get currency preference: %w", err)
	}
	return core.CurrencyPreference{Code: row.Code, Symbol: row.Symbol}, nil
}

func (r *SQLiteRepository) SetCurrencyPreference(ctx context.Context, userID string, pref core.CurrencyPreference) error {
	err := r.queries.UpsertCurrencyPreference(ctx, UpsertCurrencyPreferenceParams{
		UserID: userID,
		Code:   pref.Code,
		Symbol: pref.Symbol,
	})
	if err != nil {
		return fmt.Errorf("set currency preference: %w", err)
	}
	return nil
}
