package http

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"

	"finmate/internal/auth"
	"finmate/internal/core"
	"finmate/internal/currency"
	"finmate/internal/derive"
)

func supportedCurrencyCodes() []string {
	codes := currency.Codes()
	sort.Strings(codes)
	return codes
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	period := derive.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = derive.PeriodMonth
	}
	if !period.Valid() {
		badRequest(w, fmt.Sprintf("unknown period %q", period))
		return
	}

	key := reportCacheKey(userID, period)
	report, ok := s.reportCache.Get(key)
	s.recordCacheLookup(ok)
	if !ok {
		var err error
		report, err = s.deps.Analytics.Report(r.Context(), userID, period, s.now())
		if err != nil {
			writeError(w, r, err)
			return
		}
		s.reportCache.Set(key, report)
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusOK, analyticsOut(report, pref))
}

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	summary, err := s.deps.Analytics.MonthlySummary(r.Context(), userID, s.now())
	if err != nil {
		writeError(w, r, err)
		return
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusOK, monthlySummaryOut(summary, pref))
}

// handleExportCSV streams the user's full transaction history. Amounts
// are plain decimals so the file loads into a spreadsheet without
// currency-symbol cleanup.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	transactions, err := s.deps.Transactions.List(r.Context(), userID, "")
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"date", "description", "category", "kind", "amount"})
	for _, tx := range transactions {
		_ = cw.Write([]string{
			dateOut(tx.Date),
			tx.Description,
			tx.Category,
			string(tx.Kind),
			fmt.Sprintf("%d.%02d", tx.Amount.Cents/100, tx.Amount.Cents%100),
		})
	}
	cw.Flush()
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"transaction":    core.TransactionCategories,
		"bill":           core.BillCategories,
		"shared_expense": core.SharedExpenseCategories,
	})
}

func (s *Server) handleGetCurrency(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusOK, currencyResponse{
		Code:      pref.Code,
		Symbol:    pref.Symbol,
		Supported: supportedCurrencyCodes(),
	})
}

func (s *Server) handleSetCurrency(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req currencyRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	pref, err := s.deps.Currencies.Set(r.Context(), userID, req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, currencyResponse{Code: pref.Code, Symbol: pref.Symbol})
}
