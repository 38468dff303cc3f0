package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCartTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewCartController()
	authStub := func(c *gin.Context) {
		c.Set("user_id", 1)
		c.Next()
	}
	router.POST("/api/cart", authStub, ctrl.AddToCart)
	router.PUT("/api/cart/:id", authStub, ctrl.UpdateCartItem)
	router.DELETE("/api/cart/:id", authStub, ctrl.RemoveCartItem)
	return router
}

func TestAddToCartRequiresProductID(t *testing.T) {
	router := newCartTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"quantity": 2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without product_id, got %d", w.Code)
	}
}

func TestAddToCartRejectsNegativeQuantity(t *testing.T) {
	router := newCartTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"product_id": 1, "quantity": -3}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative quantity, got %d", w.Code)
	}
}

func TestUpdateCartItemRequiresQuantity(t *testing.T) {
	router := newCartTestRouter()

	req := httptest.NewRequest(http.MethodPut, "/api/cart/5", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without quantity, got %d", w.Code)
	}
}

func TestUpdateCartItemRejectsBadID(t *testing.T) {
	router := newCartTestRouter()

	req := httptest.NewRequest(http.MethodPut, "/api/cart/abc", strings.NewReader(`{"quantity": 2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", w.Code)
	}
}

func TestRemoveCartItemRejectsBadID(t *testing.T) {
	router := newCartTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for id 0, got %d", w.Code)
	}
}
