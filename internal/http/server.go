// Package http exposes the JSON API. Handlers delegate to services and
// derivation; everything the dashboard shows is recomputed from stored
// records at request time, with a short-lived cache in front.
package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"finmate/internal/auth"
	"finmate/internal/cache"
	"finmate/internal/currency"
	"finmate/internal/derive"
	"finmate/internal/log"
	"finmate/internal/services"
)

// Deps bundles everything the server needs.
type Deps struct {
	Transactions *services.TransactionService
	Income       *services.IncomeService
	Budgets      *services.BudgetService
	Goals        *services.GoalService
	Bills        *services.BillService
	Shared       *services.SharedExpenseService
	Analytics    *services.AnalyticsService
	Currencies   *currency.Provider
	JWTSecret    string
}

type Server struct {
	http.Server
	deps        Deps
	rateLimiter *rateLimiter
	httpLog     *log.StructuredLogger

	metrics appMetrics

	// Derived-figure caches, invalidated on every write.
	budgetCache *cache.LRUCache[derive.BudgetReport]
	reportCache *cache.LRUCache[derive.Report]
	caches      *cache.Manager

	shutdownOnce sync.Once

	// now is replaceable in tests.
	now func() time.Time
}

func NewServer(addr string, deps Deps) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		deps:        deps,
		rateLimiter: newRateLimiter(),
		httpLog:     log.NewStructuredLogger(log.New(log.Config{Component: log.ComponentHTTP})),
		budgetCache: cache.NewLRUCache[derive.BudgetReport](100, 5*time.Minute),
		reportCache: cache.NewLRUCache[derive.Report](200, 5*time.Minute),
		caches:      cache.NewManager(),
		metrics:     appMetrics{startedAt: time.Now()},
		now:         time.Now,
	}

	s.caches.Register(s.budgetCache)
	s.caches.Register(s.reportCache)
	s.caches.StartCleanup(10 * time.Minute)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	mux.HandleFunc("GET /api/transactions", s.api(s.handleListTransactions))
	mux.HandleFunc("POST /api/transactions", s.api(s.handleCreateTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.api(s.handleDeleteTransaction))

	mux.HandleFunc("GET /api/income-sources", s.api(s.handleListIncomeSources))
	mux.HandleFunc("POST /api/income-sources", s.api(s.handleCreateIncomeSource))
	mux.HandleFunc("DELETE /api/income-sources/{id}", s.api(s.handleDeleteIncomeSource))

	mux.HandleFunc("GET /api/budgets", s.api(s.handleBudgetReport))
	mux.HandleFunc("POST /api/budgets", s.api(s.handleCreateBudgetCategory))
	mux.HandleFunc("DELETE /api/budgets/{id}", s.api(s.handleDeleteBudgetCategory))

	mux.HandleFunc("GET /api/goals", s.api(s.handleListGoals))
	mux.HandleFunc("POST /api/goals", s.api(s.handleCreateGoal))
	mux.HandleFunc("POST /api/goals/{id}/deposit", s.api(s.handleGoalDeposit))
	mux.HandleFunc("DELETE /api/goals/{id}", s.api(s.handleDeleteGoal))

	mux.HandleFunc("GET /api/bills", s.api(s.handleListBills))
	mux.HandleFunc("GET /api/bills/upcoming", s.api(s.handleUpcomingBills))
	mux.HandleFunc("POST /api/bills", s.api(s.handleCreateBill))
	mux.HandleFunc("POST /api/bills/{id}/pay", s.api(s.handlePayBill))
	mux.HandleFunc("DELETE /api/bills/{id}", s.api(s.handleDeleteBill))

	mux.HandleFunc("GET /api/shared-expenses", s.api(s.handleListSharedExpenses))
	mux.HandleFunc("POST /api/shared-expenses", s.api(s.handleCreateSharedExpense))
	mux.HandleFunc("POST /api/shared-expenses/{id}/participants/{pid}/settle", s.api(s.handleSettleParticipant))
	mux.HandleFunc("DELETE /api/shared-expenses/{id}", s.api(s.handleDeleteSharedExpense))

	mux.HandleFunc("GET /api/categories", s.api(s.handleListCategories))

	mux.HandleFunc("GET /api/analytics", s.api(s.handleAnalytics))
	mux.HandleFunc("GET /api/reports/monthly", s.api(s.handleMonthlySummary))
	mux.HandleFunc("GET /api/reports/export", s.api(s.handleExportCSV))

	mux.HandleFunc("GET /api/settings/currency", s.api(s.handleGetCurrency))
	mux.HandleFunc("PUT /api/settings/currency", s.api(s.handleSetCurrency))

	return s
}

// api chains security headers, rate limiting, and bearer-token auth.
func (s *Server) api(next http.HandlerFunc) http.HandlerFunc {
	authed := auth.Middleware(s.deps.JWTSecret)(next)
	return s.withSecurityHeaders(func(w http.ResponseWriter, r *http.Request) {
		authed.ServeHTTP(w, r)
	})
}

// invalidateDerived drops cached derived figures for a user after a
// write.
func (s *Server) invalidateDerived(userID string) {
	s.budgetCache.Delete(budgetCacheKey(userID, s.now()))
	for _, p := range []derive.Period{derive.PeriodWeek, derive.PeriodMonth, derive.PeriodQuarter, derive.PeriodYear} {
		s.reportCache.Delete(reportCacheKey(userID, p))
	}
}

func budgetCacheKey(userID string, today time.Time) string {
	return fmt.Sprintf("%s:%s", userID, today.Format("2006-01"))
}

func reportCacheKey(userID string, period derive.Period) string {
	return fmt.Sprintf("%s:%s", userID, period)
}

// Shutdown stops the HTTP server and the background cleanup goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.caches.Stop()
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
