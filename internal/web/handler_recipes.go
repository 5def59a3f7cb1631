package web

import (
	"net/http"
	"strings"

	"shelfwise/internal/recipes"
)

func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter q required")
		return
	}

	found, err := s.finder.Find(r.Context(), query)
	if err != nil {
		s.logger.Error("failed to find recipes", "query", query, "error", err)
		writeError(w, http.StatusBadGateway, "failed to find recipes")
		return
	}
	if found == nil {
		found = []recipes.Recipe{}
	}

	writeJSON(w, http.StatusOK, found)
}
