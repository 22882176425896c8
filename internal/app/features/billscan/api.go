// internal/app/features/billscan/api.go
package billscan

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/app/system/timeouts"
)

// ocrToJSONRequest is the body of POST /api/ocr-to-json.
type ocrToJSONRequest struct {
	ExtractedText string `json:"extractedText"`
}

// ocrToJSONResponse carries either the structured data or an error, never
// both.
type ocrToJSONResponse struct {
	JSONData string `json:"jsonData,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HandleOCRToJSON handles POST /api/ocr-to-json.
//
// On success: 200 and { "jsonData": "..." }.
// On a missing or malformed body: 400 and { "error": "..." }.
// On extraction failure: 500 and { "error": "..." }.
func (h *Handler) HandleOCRToJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req ocrToJSONRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "request body must be JSON with an extractedText field")
		return
	}
	if strings.TrimSpace(req.ExtractedText) == "" {
		writeAPIError(w, http.StatusBadRequest, "extractedText is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	jsonData, err := extractJSON(ctx, h.LLM, req.ExtractedText)
	if err != nil {
		h.Log.Error("ocr-to-json: extraction failed", zap.Error(err))
		writeAPIError(w, http.StatusInternalServerError, "could not extract items from the text")
		return
	}

	_ = json.NewEncoder(w).Encode(ocrToJSONResponse{JSONData: jsonData})
}

func writeAPIError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ocrToJSONResponse{Error: msg})
}
