package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// newCheckoutTestRouter stubs the auth middleware so requests arrive with a
// known user id. Only validation paths run here; they reject before any
// storage access.
func newCheckoutTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewCheckoutController()
	router.POST("/api/checkout", func(c *gin.Context) {
		c.Set("user_id", 1)
		c.Next()
	}, ctrl.Checkout)
	return router
}

func postCheckout(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	router := newCheckoutTestRouter()

	w := postCheckout(t, router, `{
		"fullName": "Jo",
		"address": "1 Main St",
		"email": "jo@x.com",
		"cardNumber": "4111111111111111",
		"cartItems": []
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", w.Code)
	}
}

func TestCheckoutMissingFieldsRejected(t *testing.T) {
	router := newCheckoutTestRouter()

	w := postCheckout(t, router, `{
		"fullName": "",
		"address": "1 Main St",
		"email": "jo@x.com",
		"cardNumber": "4111111111111111",
		"cartItems": [{"id": 1, "quantity": 1, "price": 10.0}]
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank full name, got %d", w.Code)
	}
}

func TestCheckoutWhitespaceFieldsRejected(t *testing.T) {
	router := newCheckoutTestRouter()

	w := postCheckout(t, router, `{
		"fullName": "Jo",
		"address": "   ",
		"email": "jo@x.com",
		"cardNumber": "4111111111111111",
		"cartItems": [{"id": 1, "quantity": 1, "price": 10.0}]
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for whitespace address, got %d", w.Code)
	}
}

func TestCheckoutBadCardRejected(t *testing.T) {
	router := newCheckoutTestRouter()

	for _, card := range []string{"123", "4111-abcd-1111-1111", "41111111111111111111"} {
		w := postCheckout(t, router, `{
			"fullName": "Jo",
			"address": "1 Main St",
			"email": "jo@x.com",
			"cardNumber": "`+card+`",
			"cartItems": [{"id": 1, "quantity": 1, "price": 10.0}]
		}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for card %q, got %d", card, w.Code)
		}
	}
}

func TestCheckoutMalformedBodyRejected(t *testing.T) {
	router := newCheckoutTestRouter()

	w := postCheckout(t, router, `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}
}
