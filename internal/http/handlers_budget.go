package http

import (
	"net/http"

	"finmate/internal/auth"
)

func (s *Server) handleBudgetReport(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	key := budgetCacheKey(userID, s.now())
	report, ok := s.budgetCache.Get(key)
	s.recordCacheLookup(ok)
	if !ok {
		var err error
		report, err = s.deps.Budgets.Report(r.Context(), userID, s.now())
		if err != nil {
			writeError(w, r, err)
			return
		}
		s.budgetCache.Set(key, report)
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusOK, budgetReportOut(report, pref))
}

func (s *Server) handleCreateBudgetCategory(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req budgetCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	cat, err := req.toCore(userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.deps.Budgets.CreateCategory(r.Context(), cat)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateDerived(userID)

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusCreated, categoryBudgetResponse{
		ID:     created.ID,
		Name:   created.Name,
		Color:  created.Color,
		Budget: moneyOut(created.Budget, pref),
		Spent:  moneyOut(created.Spent, pref),
	})
}

func (s *Server) handleDeleteBudgetCategory(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	if err := s.deps.Budgets.DeleteCategory(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateDerived(userID)
	w.WriteHeader(http.StatusNoContent)
}
