package http

import (
	"encoding/json"
	"net/http"

	"chowline/internal/adapter/logger"
	"chowline/internal/interfaces"
)

type AdminHandler struct {
	stats  interfaces.StatsService
	auth   interfaces.AuthService
	logger logger.Logger
}

func NewAdminHandler(stats interfaces.StatsService, auth interfaces.AuthService, logger logger.Logger) *AdminHandler {
	return &AdminHandler{
		stats:  stats,
		auth:   auth,
		logger: logger,
	}
}

type StatsResponse struct {
	TotalOrders      int              `json:"totalOrders"`
	TotalRevenue     float64          `json:"totalRevenue"`
	PendingOrders    int              `json:"pendingOrders"`
	ProcessingOrders int              `json:"processingOrders"`
	RecentOrders     []*OrderResponse `json:"recentOrders"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.stats.GetStats(r.Context())
	if err != nil {
		h.logger.Error("stats_failed", "Failed to compute stats", RequestIDFrom(r.Context()), nil, err)
		respondJSON(w, statusFor(err), map[string]string{"error": "failed to compute stats"})
		return
	}

	recent := make([]*OrderResponse, len(result.RecentOrders))
	for i, order := range result.RecentOrders {
		recent[i] = toOrderResponse(order)
	}

	respondJSON(w, http.StatusOK, StatsResponse{
		TotalOrders:      result.TotalOrders,
		TotalRevenue:     result.TotalRevenue,
		PendingOrders:    result.PendingOrders,
		ProcessingOrders: result.ProcessingOrders,
		RecentOrders:     recent,
	})
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, LoginResponse{Success: false, Message: "Invalid request body"})
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondJSON(w, statusFor(err), LoginResponse{Success: false, Message: "Invalid credentials"})
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{Success: true, Token: token})
}
