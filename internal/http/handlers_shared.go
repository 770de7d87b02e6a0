package http

import (
	"net/http"

	"finmate/internal/auth"
	"finmate/internal/services"
)

func (s *Server) handleListSharedExpenses(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	expenses, err := s.deps.Shared.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	out := make([]sharedExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, sharedExpenseOut(e, pref))
	}
	writeJSON(w, http.StatusOK, map[string]any{"shared_expenses": out})
}

func (s *Server) handleCreateSharedExpense(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req sharedExpenseRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if len(req.Participants) > 0 && len(req.SplitEvenly) > 0 {
		badRequest(w, "provide either participants or split_evenly, not both")
		return
	}

	expense, err := req.toCore(userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(req.SplitEvenly) > 0 {
		expense.Participants = services.SplitEvenly(expense.TotalAmount, req.SplitEvenly)
	}

	created, err := s.deps.Shared.Create(r.Context(), expense)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusCreated, sharedExpenseOut(created, pref))
}

func (s *Server) handleSettleParticipant(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	expenseID := r.PathValue("id")
	participantID := r.PathValue("pid")

	if err := s.deps.Shared.SettleParticipant(r.Context(), userID, expenseID, participantID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteSharedExpense(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	if err := s.deps.Shared.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
