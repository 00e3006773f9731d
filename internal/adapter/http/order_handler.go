package http

import (
	"encoding/json"
	"net/http"
	"time"

	"chowline/internal/adapter/logger"
	"chowline/internal/domain"
	"chowline/internal/interfaces"

	"github.com/gorilla/mux"
)

type OrderHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

type VerifyPaymentRequest struct {
	Reference string            `json:"reference"`
	OrderData *OrderDataRequest `json:"orderData"`
}

type OrderDataRequest struct {
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Phone    string             `json:"phone"`
	Address  string             `json:"address"`
	Junction string             `json:"junction"`
	Items    []domain.OrderItem `json:"items"`
	// Accepted for wire compatibility; the stored total always comes from
	// the gateway's verified amount.
	TotalAmount float64 `json:"totalAmount"`
}

type OrderResponse struct {
	Reference    string             `json:"reference"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Junction     string             `json:"junction"`
	Items        []domain.OrderItem `json:"items"`
	TotalAmount  float64            `json:"totalAmount"`
	Status       domain.Status      `json:"status"`
	DispatchedAt *time.Time         `json:"dispatchedAt,omitempty"`
	DeliveredAt  *time.Time         `json:"deliveredAt,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type SubmitResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Order   *OrderResponse `json:"order,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func toOrderResponse(order *domain.Order) *OrderResponse {
	return &OrderResponse{
		Reference:    order.Reference,
		Name:         order.CustomerName,
		Email:        order.Email,
		Phone:        order.Phone,
		Address:      order.Address,
		Junction:     order.Junction,
		Items:        order.Items,
		TotalAmount:  order.TotalAmount,
		Status:       order.Status,
		DispatchedAt: order.DispatchedAt,
		DeliveredAt:  order.DeliveredAt,
		CreatedAt:    order.CreatedAt,
	}
}

// VerifyPayment is the order submission entry point.
func (h *OrderHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	requestID := RequestIDFrom(r.Context())

	var req VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, SubmitResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if req.Reference == "" || req.OrderData == nil {
		respondJSON(w, http.StatusBadRequest, SubmitResponse{Success: false, Message: "reference and orderData are required"})
		return
	}

	cmd := interfaces.SubmitOrderCommand{
		Reference:    req.Reference,
		CustomerName: req.OrderData.Name,
		Email:        req.OrderData.Email,
		Phone:        req.OrderData.Phone,
		Address:      req.OrderData.Address,
		Junction:     req.OrderData.Junction,
		Items:        req.OrderData.Items,
	}

	order, err := h.service.Submit(r.Context(), cmd)
	if err != nil {
		h.logger.Error("order_submission_failed", "Order submission failed", requestID, map[string]interface{}{
			"reference": req.Reference,
		}, err)
		respondJSON(w, statusFor(err), SubmitResponse{Success: false, Message: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, SubmitResponse{
		Success: true,
		Message: "Payment verified and order placed",
		Order:   toOrderResponse(order),
	})
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("orders_list_failed", "Failed to list orders", RequestIDFrom(r.Context()), nil, err)
		respondJSON(w, statusFor(err), map[string]string{"error": "failed to list orders"})
		return
	}

	resp := make([]*OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order)
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	order, err := h.service.GetOrder(r.Context(), reference)
	if err != nil {
		respondJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), reference, req.Status)
	if err != nil {
		respondJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	if err := h.service.DeleteOrder(r.Context(), reference); err != nil {
		respondJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "order deleted"})
}
