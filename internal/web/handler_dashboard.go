package web

import (
	"net/http"

	"shelfwise/internal/auth"
	"shelfwise/internal/dashboard"
)

func (s *Server) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.ListByUser(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		s.logger.Error("failed to list items for summary", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}

	writeJSON(w, http.StatusOK, dashboard.ComputeSummary(items, s.now()))
}
