package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"chowline/internal/adapter/logger"
	"chowline/internal/domain"
	"chowline/internal/interfaces"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderService struct {
	submitOrder *domain.Order
	submitErr   error
	submitCmd   *interfaces.SubmitOrderCommand

	updateOrder *domain.Order
	updateErr   error

	getOrder *domain.Order
	getErr   error
}

func (s *fakeOrderService) Submit(ctx context.Context, cmd interfaces.SubmitOrderCommand) (*domain.Order, error) {
	s.submitCmd = &cmd
	return s.submitOrder, s.submitErr
}

func (s *fakeOrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return []*domain.Order{s.getOrder}, nil
}

func (s *fakeOrderService) GetOrder(ctx context.Context, reference string) (*domain.Order, error) {
	return s.getOrder, s.getErr
}

func (s *fakeOrderService) UpdateStatus(ctx context.Context, reference, status string) (*domain.Order, error) {
	return s.updateOrder, s.updateErr
}

func (s *fakeOrderService) DeleteOrder(ctx context.Context, reference string) error {
	return s.getErr
}

func newRouter(svc interfaces.OrderService) *mux.Router {
	handler := NewOrderHandler(svc, logger.New("test"))
	router := mux.NewRouter()
	router.HandleFunc("/api/payment/verify", handler.VerifyPayment).Methods(http.MethodPost)
	router.HandleFunc("/api/orders", handler.ListOrders).Methods(http.MethodGet)
	router.HandleFunc("/api/orders/{reference}", handler.GetOrder).Methods(http.MethodGet)
	router.HandleFunc("/api/orders/{reference}", handler.DeleteOrder).Methods(http.MethodDelete)
	router.HandleFunc("/api/orders/update/{reference}", handler.UpdateStatus).Methods(http.MethodPatch)
	return router
}

func paidOrder() *domain.Order {
	return domain.NewOrder("PSK123", "Ada", "ada@example.com", "+2348000000000",
		"12 Marina Rd", "Lekki", []domain.OrderItem{{Name: "Jollof rice", Quantity: 2, Price: 2500}}, 500000)
}

func TestVerifyPaymentSuccess(t *testing.T) {
	svc := &fakeOrderService{submitOrder: paidOrder()}
	router := newRouter(svc)

	body := `{"reference":"PSK123","orderData":{"name":"Ada","phone":"+2348000000000","totalAmount":5000,"items":[{"name":"Jollof rice","quantity":2,"price":2500}]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/payment/verify", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Order)
	assert.Equal(t, "PSK123", resp.Order.Reference)
	assert.Equal(t, 5000.0, resp.Order.TotalAmount)
	assert.Equal(t, domain.StatusPaid, resp.Order.Status)

	require.NotNil(t, svc.submitCmd)
	assert.Equal(t, "Ada", svc.submitCmd.CustomerName)
}

func TestVerifyPaymentMissingReference(t *testing.T) {
	svc := &fakeOrderService{}
	router := newRouter(svc)

	body := `{"orderData":{"name":"Ada","items":[{"name":"Jollof rice","quantity":1,"price":2500}]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/payment/verify", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Nil(t, svc.submitCmd)
}

func TestVerifyPaymentMissingOrderData(t *testing.T) {
	router := newRouter(&fakeOrderService{})

	req := httptest.NewRequest(http.MethodPost, "/api/payment/verify", bytes.NewBufferString(`{"reference":"PSK123"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyPaymentDeclined(t *testing.T) {
	svc := &fakeOrderService{submitErr: fmt.Errorf("gateway status %q: %w", "failed", domain.ErrPaymentNotSuccessful)}
	router := newRouter(svc)

	body := `{"reference":"PSK123","orderData":{"name":"Ada","items":[{"name":"Jollof rice","quantity":1,"price":2500}]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/payment/verify", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Order)
}

func TestVerifyPaymentDuplicate(t *testing.T) {
	svc := &fakeOrderService{submitErr: fmt.Errorf("reference: %w", domain.ErrDuplicateReference)}
	router := newRouter(svc)

	body := `{"reference":"PSK123","orderData":{"name":"Ada","items":[{"name":"Jollof rice","quantity":1,"price":2500}]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/payment/verify", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetOrderNotFound(t *testing.T) {
	svc := &fakeOrderService{getErr: fmt.Errorf("order: %w", domain.ErrNotFound)}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/NOPE", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatus(t *testing.T) {
	order := paidOrder()
	order.ApplyStatus("delivered")
	svc := &fakeOrderService{updateOrder: order}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/update/PSK123", bytes.NewBufferString(`{"status":"delivered"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusDelivered, resp.Status)
	assert.NotNil(t, resp.DeliveredAt)
}
