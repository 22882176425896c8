package recipes

import (
	"strings"
	"testing"
	"time"

	"github.com/ecochef/ecochef/internal/domain/models"
)

func TestBuildIngredientSummary_Empty(t *testing.T) {
	if got := BuildIngredientSummary(nil, time.Now()); got != "" {
		t.Errorf("expected empty summary, got %q", got)
	}
}

func TestBuildIngredientSummary_NoExpiryOmitsDate(t *testing.T) {
	items := []models.GroceryItem{
		{Name: "Rice", Quantity: 1},
	}

	got := BuildIngredientSummary(items, time.Now())

	if !strings.Contains(got, "- Rice x1") {
		t.Errorf("missing item line in %q", got)
	}
	if strings.Contains(got, "expire") {
		t.Errorf("expected no expiry text for dateless item, got %q", got)
	}
}

func TestBuildIngredientSummary_ExpiryStates(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	bought := time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)
	past := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	soon := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	later := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	items := []models.GroceryItem{
		{Name: "Milk", Quantity: 1, IsRefrigerated: true, PurchaseDate: bought, ExpiryDate: &past},
		{Name: "Spinach", Quantity: 2, PurchaseDate: bought, ExpiryDate: &soon},
		{Name: "Pasta", Quantity: 3, PurchaseDate: bought, ExpiryDate: &later},
	}

	got := BuildIngredientSummary(items, now)

	if !strings.Contains(got, "Milk x1 (refrigerated), bought 25/02/2024, expired on 01/03/2024") {
		t.Errorf("expired item not flagged: %q", got)
	}
	if !strings.Contains(got, "Spinach x2, bought 25/02/2024, expiring soon (12/03/2024)") {
		t.Errorf("expiring-soon item not flagged: %q", got)
	}
	if !strings.Contains(got, "Pasta x3, bought 25/02/2024, expires 01/06/2024") {
		t.Errorf("future expiry wrong: %q", got)
	}
}

func TestBuildIngredientSummary_PurchaseDate(t *testing.T) {
	bought := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	items := []models.GroceryItem{
		{Name: "Rice", Quantity: 2, PurchaseDate: bought},
	}

	got := BuildIngredientSummary(items, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	if !strings.Contains(got, "- Rice x2, bought 05/03/2024") {
		t.Errorf("purchase date missing from %q", got)
	}
}
