package web

import (
	"encoding/json"
	"net/http"
	"time"

	"shelfwise/internal/auth"
	"shelfwise/internal/domain"
)

const maxItemNameLen = 200

type createItemRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	ExpiryDate   string  `json:"expiryDate"`
}

type updateItemRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Quantity     *int     `json:"quantity"`
	PricePerUnit *float64 `json:"pricePerUnit"`
	ExpiryDate   *string  `json:"expiryDate"`
	Used         *bool    `json:"used"`
	Wasted       *bool    `json:"wasted"`
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.ListByUser(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		s.logger.Error("failed to list items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.ExpiryDate == "" {
		writeError(w, http.StatusBadRequest, "name and expiryDate required")
		return
	}
	if len(req.Name) > maxItemNameLen {
		writeError(w, http.StatusBadRequest, "name too long")
		return
	}
	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "expiryDate must be YYYY-MM-DD")
		return
	}
	if req.PricePerUnit < 0 {
		writeError(w, http.StatusBadRequest, "pricePerUnit must not be negative")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	item, err := s.items.Create(r.Context(), domain.Item{
		UserID:       auth.UserID(r.Context()),
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		ExpiryDate:   expiry,
	})
	if err != nil {
		s.logger.Error("failed to create item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	item, err := s.items.GetByID(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		s.logger.Error("failed to get item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != nil {
		if *req.Name == "" || len(*req.Name) > maxItemNameLen {
			writeError(w, http.StatusBadRequest, "invalid name")
			return
		}
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			writeError(w, http.StatusBadRequest, "quantity must be positive")
			return
		}
		item.Quantity = *req.Quantity
	}
	if req.PricePerUnit != nil {
		if *req.PricePerUnit < 0 {
			writeError(w, http.StatusBadRequest, "pricePerUnit must not be negative")
			return
		}
		item.PricePerUnit = *req.PricePerUnit
	}
	if req.ExpiryDate != nil {
		expiry, err := parseDate(*req.ExpiryDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "expiryDate must be YYYY-MM-DD")
			return
		}
		item.ExpiryDate = expiry
	}
	if req.Used != nil {
		item.Used = *req.Used
	}
	if req.Wasted != nil {
		item.Wasted = *req.Wasted
	}

	if err := s.items.Update(r.Context(), *item); err != nil {
		s.logger.Error("failed to update item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	updated, err := s.items.GetByID(r.Context(), userID, item.ID)
	if err != nil || updated == nil {
		s.logger.Error("failed to reload item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	id := r.PathValue("id")

	item, err := s.items.GetByID(r.Context(), userID, id)
	if err != nil {
		s.logger.Error("failed to get item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := s.items.Delete(r.Context(), userID, id); err != nil {
		s.logger.Error("failed to delete item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
