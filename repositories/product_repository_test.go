package repositories

import (
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildSearchQueryNoFilters(t *testing.T) {
	query, args := buildSearchQuery(SearchParams{})
	if !strings.Contains(query, "WHERE 1=1") {
		t.Fatalf("expected open query, got %q", query)
	}
	if strings.Contains(query, "$1") {
		t.Fatalf("expected no placeholders, got %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %d", len(args))
	}
}

func TestBuildSearchQueryTextOnly(t *testing.T) {
	query, args := buildSearchQuery(SearchParams{Query: "shirt"})
	if !strings.Contains(query, "(name ILIKE $1 OR description ILIKE $1)") {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(args) != 1 || args[0] != "%shirt%" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildSearchQueryCategoryAndMinPrice(t *testing.T) {
	query, args := buildSearchQuery(SearchParams{
		Category: "electronics",
		MinPrice: floatPtr(50),
	})
	if !strings.Contains(query, "category = $1") {
		t.Fatalf("category placeholder misnumbered: %q", query)
	}
	if !strings.Contains(query, "price >= $2") {
		t.Fatalf("min price placeholder misnumbered: %q", query)
	}
	if strings.Contains(query, "ILIKE") || strings.Contains(query, "price <=") {
		t.Fatalf("absent filters leaked into query: %q", query)
	}
	if len(args) != 2 || args[0] != "electronics" || args[1] != 50.0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildSearchQueryAllFilters(t *testing.T) {
	query, args := buildSearchQuery(SearchParams{
		Query:    "phone",
		Category: "electronics",
		MinPrice: floatPtr(10),
		MaxPrice: floatPtr(500),
	})
	for _, want := range []string{
		"(name ILIKE $1 OR description ILIKE $1)",
		"category = $2",
		"price >= $3",
		"price <= $4",
	} {
		if !strings.Contains(query, want) {
			t.Fatalf("query missing %q: %q", want, query)
		}
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(args))
	}
}
