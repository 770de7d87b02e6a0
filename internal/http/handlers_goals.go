package http

import (
	"net/http"

	"finmate/internal/auth"
)

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	progress, err := s.deps.Goals.ListProgress(r.Context(), userID, s.now())
	if err != nil {
		writeError(w, r, err)
		return
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	out := make([]goalProgressResponse, 0, len(progress))
	for _, gp := range progress {
		out = append(out, goalProgressOut(gp, pref))
	}
	writeJSON(w, http.StatusOK, map[string]any{"goals": out})
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req goalRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	goal, err := req.toCore(userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.deps.Goals.Create(r.Context(), goal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusCreated, goalProgressResponse{
		ID:            created.ID,
		Name:          created.Name,
		CurrentAmount: moneyOut(created.CurrentAmount, pref),
		TargetAmount:  moneyOut(created.TargetAmount, pref),
		TargetDate:    dateOut(created.TargetDate),
		Remaining:     moneyOut(created.TargetAmount, pref),
	})
}

func (s *Server) handleGoalDeposit(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req depositRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	progress, err := s.deps.Goals.Deposit(r.Context(), userID, r.PathValue("id"), amount, s.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateDerived(userID)

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusOK, goalProgressOut(progress, pref))
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	if err := s.deps.Goals.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateDerived(userID)
	w.WriteHeader(http.StatusNoContent)
}
