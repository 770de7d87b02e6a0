package http

import (
	"fmt"
	"net/http"
	"time"

	"finmate/internal/auth"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	search := r.URL.Query().Get("search")

	// Optional ?month=2006-01 narrows the list to one calendar month.
	var monthStart, monthEnd time.Time
	if month := r.URL.Query().Get("month"); month != "" {
		var err error
		monthStart, err = time.Parse("2006-01", month)
		if err != nil {
			badRequest(w, fmt.Sprintf("invalid month %q, expected YYYY-MM", month))
			return
		}
		monthEnd = monthStart.AddDate(0, 1, 0)
	}

	transactions, err := s.deps.Transactions.List(r.Context(), userID, search)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	out := make([]transactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		if !monthStart.IsZero() && (tx.Date.Before(monthStart) || !tx.Date.Before(monthEnd)) {
			continue
		}
		out = append(out, transactionOut(tx, pref))
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": out})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req transactionRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	tx, err := req.toCore(userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.deps.Transactions.Create(r.Context(), tx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateDerived(userID)

	pref := s.deps.Currencies.Resolve(r.Context(), userID)
	writeJSON(w, http.StatusCreated, transactionOut(created, pref))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	if err := s.deps.Transactions.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateDerived(userID)
	w.WriteHeader(http.StatusNoContent)
}
