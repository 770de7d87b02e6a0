package http

import (
	"net/http"

	"finmate/internal/auth"
)

func (s *Server) handleListIncomeSources(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	sources, monthly, err := s.deps.Income.Summary(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	out := incomeSummaryResponse{
		Sources:      make([]incomeSourceResponse, 0, len(sources)),
		MonthlyTotal: moneyOut(monthly, pref),
	}
	for _, src := range sources {
		out.Sources = append(out.Sources, incomeSourceOut(src, pref))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateIncomeSource(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req incomeSourceRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	src, err := req.toCore(userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.deps.Income.Create(r.Context(), src)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateDerived(userID)

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusCreated, incomeSourceOut(created, pref))
}

func (s *Server) handleDeleteIncomeSource(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	if err := s.deps.Income.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateDerived(userID)
	w.WriteHeader(http.StatusNoContent)
}
