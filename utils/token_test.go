package utils

import (
	"testing"

	"storefront/config"
)

func setTestConfig(expiry string) {
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: expiry,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig("24h")

	token, err := GenerateToken(42, "jo@x.com")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Email != "jo@x.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	setTestConfig("-1h")

	token, err := GenerateToken(1, "jo@x.com")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	setTestConfig("24h")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	setTestConfig("24h")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected garbage token to fail validation")
	}
}
