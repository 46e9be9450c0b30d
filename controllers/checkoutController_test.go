package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopline/shopline-api/payments"
	"github.com/shopline/shopline-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutRouter(gateway services.CheckoutGateway, orders *MockOrderRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cc := NewCheckoutController(services.NewCheckoutService(gateway, orders))
	router.POST("/stripe-checkout", cc.Checkout)
	return router
}

func TestCheckout_ReturnsRedirectURL(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockOrders.On("Create", mock.Anything, mock.Anything).Return(nil)
	router := newCheckoutRouter(&stubGateway{
		session: &payments.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/c/pay/cs_test_123"},
	}, mockOrders)

	body := `{"items":[{"title":"Mug","price":"$12.50","productImg":"https://cdn.example.com/mug.png","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/stripe-checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", resp.URL)
	mockOrders.AssertExpectations(t)
}

func TestCheckout_MissingItems(t *testing.T) {
	router := newCheckoutRouter(&stubGateway{}, new(MockOrderRepository))

	req := httptest.NewRequest(http.MethodPost, "/stripe-checkout", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_EmptyCart(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	router := newCheckoutRouter(&stubGateway{}, mockOrders)

	req := httptest.NewRequest(http.MethodPost, "/stripe-checkout", strings.NewReader(`{"items":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_UnparseablePrice(t *testing.T) {
	router := newCheckoutRouter(&stubGateway{}, new(MockOrderRepository))

	body := `{"items":[{"title":"Mug","price":"free","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/stripe-checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_GatewayFailure(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	router := newCheckoutRouter(&stubGateway{err: errors.New("stripe is down")}, mockOrders)

	body := `{"items":[{"title":"Mug","price":"$5","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/stripe-checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong with the payment.")
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
