// internal/app/features/billscan/extract.go
package billscan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Completer generates text from a system + user prompt pair.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const extractPrompt = `You convert raw OCR text from a grocery receipt into
JSON. Output ONLY a JSON array, no prose and no code fences. Each element:
{"name": string, "quantity": integer >= 1, "is_refrigerated": boolean,
"purchase_date": "YYYY-MM-DD", "expiry_date": "YYYY-MM-DD" or null}.
Use null for expiry_date when the item is non-perishable. Skip totals,
taxes, and non-food lines.`

// itemInput is one extracted receipt line.
type itemInput struct {
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	IsRefrigerated bool    `json:"is_refrigerated"`
	PurchaseDate   string  `json:"purchase_date"`
	ExpiryDate     *string `json:"expiry_date"`
}

// extractJSON asks the model to structure the OCR text. The model's raw
// output is returned as-is; callers that need typed items run parseItems
// on it.
func extractJSON(ctx context.Context, llm Completer, extractedText string) (string, error) {
	out, err := llm.Complete(ctx, extractPrompt, extractedText)
	if err != nil {
		return "", fmt.Errorf("billscan: extraction: %w", err)
	}
	return out, nil
}

// parseItems decodes the model output. Models occasionally wrap the array
// in markdown fences despite instructions, so those are stripped first.
func parseItems(jsonData string) ([]itemInput, error) {
	s := strings.TrimSpace(jsonData)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var items []itemInput
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("billscan: decode items: %w", err)
	}
	return items, nil
}
