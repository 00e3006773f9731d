package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"chowline/internal/adapter/logger"
	"chowline/internal/domain"
	"chowline/internal/interfaces"

	"github.com/gorilla/mux"
)

type MenuHandler struct {
	service interfaces.MenuService
	logger  logger.Logger
}

func NewMenuHandler(service interfaces.MenuService, logger logger.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

type MenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

type MenuItemResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toMenuItemResponse(item *domain.MenuItem) *MenuItemResponse {
	return &MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		CreatedAt:   item.CreatedAt,
	}
}

func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item := &domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}

	if err := h.service.CreateItem(r.Context(), item); err != nil {
		respondJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, toMenuItemResponse(item))
}

func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		h.logger.Error("menu_list_failed", "Failed to list menu items", RequestIDFrom(r.Context()), nil, err)
		respondJSON(w, statusFor(err), map[string]string{"error": "failed to list menu items"})
		return
	}

	resp := make([]*MenuItemResponse, len(items))
	for i, item := range items {
		resp[i] = toMenuItemResponse(item)
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item id"})
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		respondJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, toMenuItemResponse(item))
}

func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item id"})
		return
	}

	var req MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item := &domain.MenuItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}

	if err := h.service.UpdateItem(r.Context(), item); err != nil {
		respondJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, toMenuItemResponse(item))
}

func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item id"})
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		respondJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "menu item deleted"})
}
