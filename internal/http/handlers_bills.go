package http

import (
	"net/http"

	"finmate/internal/auth"
	"finmate/internal/derive"
)

func (s *Server) handleListBills(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	views, err := s.deps.Bills.List(r.Context(), userID, s.now())
	if err != nil {
		writeError(w, r, err)
		return
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusOK, map[string]any{"bills": billViewsOut(views, pref)})
}

func (s *Server) handleUpcomingBills(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	bills, total, err := s.deps.Bills.Upcoming(r.Context(), userID, s.now())
	if err != nil {
		writeError(w, r, err)
		return
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	out := upcomingBillsResponse{
		Bills: make([]billResponse, 0, len(bills)),
		Total: moneyOut(total, pref),
	}
	for _, b := range bills {
		out.Bills = append(out.Bills, billOut(b, derive.ClassifyBill(b, s.now()), pref))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateBill(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req billRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	bill, err := req.toCore(userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.deps.Bills.Create(r.Context(), bill)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusCreated, billOut(created, derive.ClassifyBill(created, s.now()), pref))
}

func (s *Server) handlePayBill(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	payment, err := s.deps.Bills.MarkPaid(r.Context(), userID, r.PathValue("id"), s.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateDerived(userID)

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusOK, map[string]any{"payment": transactionOut(payment, pref)})
}

func (s *Server) handleDeleteBill(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	if err := s.deps.Bills.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
