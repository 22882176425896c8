// internal/app/features/recipes/summary.go
package recipes

import (
	"fmt"
	"strings"
	"time"

	"github.com/ecochef/ecochef/internal/app/system/dates"
	"github.com/ecochef/ecochef/internal/domain/models"
)

// BuildIngredientSummary renders the member's groceries as one line per
// item for the recipe prompt: name, quantity, refrigeration, purchase date,
// and expiry when known. Expiry lets the model prefer ingredients that are
// about to turn; items with no expiry are listed without a date rather than
// with a fabricated one.
func BuildIngredientSummary(items []models.GroceryItem, now time.Time) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "- %s x%d", it.Name, it.Quantity)
		if it.IsRefrigerated {
			b.WriteString(" (refrigerated)")
		}
		if !it.PurchaseDate.IsZero() {
			fmt.Fprintf(&b, ", bought %s", dates.Display(it.PurchaseDate))
		}
		if it.HasExpiry() {
			exp := *it.ExpiryDate
			switch {
			case exp.Before(now):
				fmt.Fprintf(&b, ", expired on %s", dates.Display(exp))
			case exp.Before(now.AddDate(0, 0, 3)):
				fmt.Fprintf(&b, ", expiring soon (%s)", dates.Display(exp))
			default:
				fmt.Fprintf(&b, ", expires %s", dates.Display(exp))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

const systemPrompt = `You are a sustainable cooking assistant. Given a list of
groceries the user already has, suggest one recipe that uses as many of them
as possible, prioritising items that are expiring soon and skipping items
that have already expired. Respond with a recipe name, an ingredient list,
and numbered steps in plain text.`

// buildUserPrompt wraps the ingredient summary for the completion request.
func buildUserPrompt(summary string) string {
	return "My groceries:\n" + summary + "\nSuggest a recipe."
}
