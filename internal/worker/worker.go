// Package worker hosts the background side of finmate: the change
// consumer that keeps stored budget figures in sync, the rollover loop
// that re-arms paid recurring bills, and the optional report export.
package worker

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"finmate/internal/amqp"
	"finmate/internal/export/sheets"
	"finmate/internal/log"
	"finmate/internal/services"
)

type Worker struct {
	budgets  *services.BudgetService
	rollover *services.RolloverProcessor

	amqpURL      string
	amqpExchange string
	amqpQueue    string

	rolloverInterval time.Duration

	// Optional; nil disables the monthly export.
	analytics *services.AnalyticsService
	sheets    *sheets.Client
	exportFor []string // user IDs to export reports for

	logger *log.Logger
}

type Options struct {
	Budgets  *services.BudgetService
	Rollover *services.RolloverProcessor

	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	RolloverInterval time.Duration

	Analytics   *services.AnalyticsService
	Sheets      *sheets.Client
	ExportUsers []string
}

func New(opts Options) *Worker {
	return &Worker{
		budgets:          opts.Budgets,
		rollover:         opts.Rollover,
		amqpURL:          opts.AMQPURL,
		amqpExchange:     opts.AMQPExchange,
		amqpQueue:        opts.AMQPQueue,
		rolloverInterval: opts.RolloverInterval,
		analytics:        opts.Analytics,
		sheets:           opts.Sheets,
		exportFor:        opts.ExportUsers,
		logger: log.New(log.Config{
			Component: log.ComponentWorker,
		}),
	}
}

// Run blocks until the context is cancelled or a loop fails.
func (w *Worker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return w.consumeChanges(ctx) })
	g.Go(func() error { return w.rolloverLoop(ctx) })
	if w.sheets != nil && w.analytics != nil {
		g.Go(func() error { return w.exportLoop(ctx) })
	}

	return g.Wait()
}

// consumeChanges recomputes and persists budget spend whenever a record
// write is announced. Persisted figures are advisory; reads always
// rederive, so a lost message only leaves a stale stored value.
func (w *Worker) consumeChanges(ctx context.Context) error {
	return amqp.ConsumeWithRetry(ctx, w.amqpURL, w.amqpExchange, w.amqpQueue, func(msg *amqp.ChangeMessage) error {
		w.logger.Info("Processing change message",
			log.FieldEntity, msg.Entity,
			log.FieldUserID, msg.UserID,
			log.FieldAction, msg.Action)

		switch msg.Entity {
		case amqp.EntityTransaction, amqp.EntityBill:
			if err := w.budgets.RecomputeSpent(ctx, msg.UserID, time.Now()); err != nil {
				w.logger.Error("Failed to recompute budget spend", "error", err, log.FieldUserID, msg.UserID)
				return err
			}
		}
		// A paid recurring bill re-arms right away instead of waiting
		// for the next sweep.
		if msg.Entity == amqp.EntityBill && msg.Action == amqp.ActionPaid {
			w.runRollover(ctx)
		}
		return nil
	})
}

func (w *Worker) rolloverLoop(ctx context.Context) error {
	ticker := time.NewTicker(w.rolloverInterval)
	defer ticker.Stop()

	// Run once on startup so a long-stopped worker catches up
	// immediately instead of waiting a full interval.
	w.runRollover(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.runRollover(ctx)
		}
	}
}

func (w *Worker) runRollover(ctx context.Context) {
	rolled, err := w.rollover.ProcessPaidBills(ctx, time.Now())
	if err != nil {
		w.logger.Error("Rollover pass failed", "error", err)
		return
	}
	if rolled > 0 {
		w.logger.Info("Rolled recurring bills forward", "count", rolled)
	}
}

// exportLoop appends each user's monthly summary to the configured
// spreadsheet once a day.
func (w *Worker) exportLoop(ctx context.Context) error {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.runExport(ctx)
		}
	}
}

func (w *Worker) runExport(ctx context.Context) {
	now := time.Now()
	for _, userID := range w.exportFor {
		summary, err := w.analytics.MonthlySummary(ctx, userID, now)
		if err != nil {
			w.logger.Error("Failed to build monthly summary for export", "error", err, log.FieldUserID, userID)
			continue
		}
		if err := w.sheets.AppendMonthlySummary(ctx, now, summary); err != nil {
			w.logger.Error("Failed to export monthly summary", "error", err, log.FieldUserID, userID)
			continue
		}
		w.logger.Info("Exported monthly summary", log.FieldUserID, userID)
	}
}
