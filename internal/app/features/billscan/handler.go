// internal/app/features/billscan/handler.go

// Feature billscan turns a photographed grocery receipt into grocery
// items: OCR first, then an LLM pass that structures the raw text.
package billscan

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	grocerystore "github.com/ecochef/ecochef/internal/app/store/groceries"
	"github.com/ecochef/ecochef/internal/app/store/queries/publishpost"
	"github.com/ecochef/ecochef/internal/app/system/auth"
	"github.com/ecochef/ecochef/internal/app/system/dates"
	"github.com/ecochef/ecochef/internal/app/system/ocr"
	"github.com/ecochef/ecochef/internal/app/system/timeouts"
	"github.com/ecochef/ecochef/internal/app/system/viewdata"
	"github.com/ecochef/ecochef/internal/domain/models"
)

const maxReceiptBytes = 10 << 20

// ReceiptArchiver keeps a copy of each scanned receipt image.
type ReceiptArchiver interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

type Handler struct {
	Groceries *grocerystore.Store
	OCR       ocr.Recognizer
	LLM       Completer
	Receipts  ReceiptArchiver
	OCRLang   string
	Log       *zap.Logger
}

func NewHandler(store *grocerystore.Store, recognizer ocr.Recognizer, llm Completer, receipts ReceiptArchiver, ocrLang string, logger *zap.Logger) *Handler {
	return &Handler{
		Groceries: store,
		OCR:       recognizer,
		LLM:       llm,
		Receipts:  receipts,
		OCRLang:   ocrLang,
		Log:       logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	Added int
	Error string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /scan – upload form                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Scan a receipt", "/dashboard"),
	}
	templates.Render(w, r, "billscan", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /scan – OCR, extract, and save items                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	reRender := func(msg string, added int) {
		data := pageData{
			BaseVM: viewdata.NewBaseVM(r, "Scan a receipt", "/dashboard"),
			Added:  added,
			Error:  msg,
		}
		templates.Render(w, r, "billscan", data)
	}

	if err := r.ParseMultipartForm(maxReceiptBytes); err != nil {
		reRender("The upload was too large or malformed.", 0)
		return
	}
	file, header, err := r.FormFile("receipt")
	if err != nil {
		reRender("A receipt photo is required.", 0)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxReceiptBytes))
	if err != nil {
		reRender("Could not read the uploaded photo.", 0)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Keep a copy of the receipt before processing. Archiving is best
	// effort; a storage hiccup should not block the scan.
	if h.Receipts != nil {
		key := "receipts/" + publishpost.ObjectKey(header.Filename)
		contentType := header.Header.Get("Content-Type")
		if err := h.Receipts.Upload(ctx, key, image, contentType); err != nil {
			h.Log.Warn("billscan: receipt archive failed",
				zap.String("key", key), zap.Error(err))
		}
	}

	text, err := h.OCR.Recognize(ctx, image, h.OCRLang)
	if err != nil {
		h.Log.Error("billscan: ocr failed", zap.Error(err))
		reRender("Could not read text from that photo. Try a clearer shot.", 0)
		return
	}

	jsonData, err := extractJSON(ctx, h.LLM, text)
	if err != nil {
		h.Log.Error("billscan: extraction failed", zap.Error(err))
		reRender("Could not make sense of the receipt. Please try again.", 0)
		return
	}
	items, err := parseItems(jsonData)
	if err != nil {
		h.Log.Error("billscan: bad extraction output", zap.Error(err))
		reRender("Could not make sense of the receipt. Please try again.", 0)
		return
	}

	added := h.saveItems(ctx, userID, items)
	if added == 0 && len(items) > 0 {
		reRender("None of the items could be saved. Please add them manually.", 0)
		return
	}

	reRender("", added)
}

// saveItems inserts what it can and counts successes; one bad line does
// not discard the rest of the receipt.
func (h *Handler) saveItems(ctx context.Context, userID primitive.ObjectID, items []itemInput) int {
	added := 0
	for _, in := range items {
		purchase, err := dates.ParseStored(in.PurchaseDate)
		if err != nil {
			purchase = time.Now().UTC()
		}
		var expiry *time.Time
		if in.ExpiryDate != nil {
			expiry, err = dates.ParseStoredPtr(*in.ExpiryDate)
			if err != nil {
				expiry = nil
			}
		}

		item := &models.GroceryItem{
			UserID:         userID,
			Name:           in.Name,
			Quantity:       in.Quantity,
			IsRefrigerated: in.IsRefrigerated,
			PurchaseDate:   purchase,
			ExpiryDate:     expiry,
		}
		if _, err := h.Groceries.Create(ctx, item); err != nil {
			h.Log.Warn("billscan: skip item", zap.String("name", in.Name), zap.Error(err))
			continue
		}
		added++
	}
	return added
}
