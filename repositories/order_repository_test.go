package repositories

import (
	"testing"

	"storefront/models"
)

func TestComputeTotal(t *testing.T) {
	items := []models.CheckoutItemRequest{
		{ProductID: 1, Quantity: 2, Price: 10.00},
		{ProductID: 2, Quantity: 3, Price: 5.00},
	}
	if got := ComputeTotal(items); got != 35.00 {
		t.Fatalf("ComputeTotal = %.2f, want 35.00", got)
	}
}

func TestComputeTotalEmpty(t *testing.T) {
	if got := ComputeTotal(nil); got != 0 {
		t.Fatalf("ComputeTotal(nil) = %.2f, want 0", got)
	}
}

func TestTotalsMatch(t *testing.T) {
	tests := []struct {
		name   string
		client float64
		server float64
		want   bool
	}{
		{"exact", 35.00, 35.00, true},
		{"within tolerance", 35.00, 35.009, true},
		{"just over tolerance", 35.00, 35.02, false},
		{"stale price", 35.00, 40.00, false},
		{"under server total", 30.00, 35.00, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalsMatch(tt.client, tt.server); got != tt.want {
				t.Fatalf("TotalsMatch(%.3f, %.3f) = %v, want %v", tt.client, tt.server, got, tt.want)
			}
		})
	}
}
