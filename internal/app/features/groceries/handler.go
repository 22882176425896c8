// internal/app/features/groceries/handler.go

// Feature groceries shows and adds the signed-in member's items. Every
// query is filtered by the session user's ID; there is no way to read
// another member's list through this feature.
package groceries

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	uierrors "github.com/ecochef/ecochef/internal/app/features/errors"
	grocerystore "github.com/ecochef/ecochef/internal/app/store/groceries"
	"github.com/ecochef/ecochef/internal/app/system/auth"
	"github.com/ecochef/ecochef/internal/app/system/dates"
	"github.com/ecochef/ecochef/internal/app/system/timeouts"
	"github.com/ecochef/ecochef/internal/app/system/viewdata"
	"github.com/ecochef/ecochef/internal/domain/models"
)

type Handler struct {
	Groceries *grocerystore.Store
	Log       *zap.Logger
}

func NewHandler(store *grocerystore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Groceries: store,
		Log:       logger,
	}
}

// itemVM is a grocery item shaped for display. Dates are rendered
// dd/mm/yyyy; Expiry stays nil for non-perishables so the template can
// show a dash instead of a fake date.
type itemVM struct {
	Name           string
	Quantity       int
	IsRefrigerated bool
	PurchaseDate   string
	Expiry         *string
}

type listData struct {
	viewdata.BaseVM
	Items []itemVM
	Error string
}

func toVM(it models.GroceryItem) itemVM {
	return itemVM{
		Name:           it.Name,
		Quantity:       it.Quantity,
		IsRefrigerated: it.IsRefrigerated,
		PurchaseDate:   dates.Display(it.PurchaseDate),
		Expiry:         dates.DisplayPtr(it.ExpiryDate),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /groceries – list the member's items                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		uierrors.RenderServerError(w, r, "Could not load your groceries.", "/dashboard")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Groceries.ListForUser(ctx, userID)
	if err != nil {
		h.Log.Error("groceries: list", zap.String("user_id", u.ID), zap.Error(err))
		uierrors.RenderServerError(w, r, "Could not load your groceries.", "/dashboard")
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "My groceries", "/dashboard"),
		Items:  make([]itemVM, 0, len(items)),
		Error:  r.URL.Query().Get("err"),
	}
	for _, it := range items {
		data.Items = append(data.Items, toVM(it))
	}

	templates.Render(w, r, "groceries_list", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /groceries – add an item                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		http.Redirect(w, r, "/groceries?err=Could+not+add+the+item.", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	qty, err := strconv.Atoi(strings.TrimSpace(r.FormValue("quantity")))
	if err != nil {
		http.Redirect(w, r, "/groceries?err=Quantity+must+be+a+number.", http.StatusSeeOther)
		return
	}

	purchase, err := dates.ParseStored(strings.TrimSpace(r.FormValue("purchase_date")))
	if err != nil {
		http.Redirect(w, r, "/groceries?err=Purchase+date+is+invalid.", http.StatusSeeOther)
		return
	}
	expiry, err := dates.ParseStoredPtr(strings.TrimSpace(r.FormValue("expiry_date")))
	if err != nil {
		http.Redirect(w, r, "/groceries?err=Expiry+date+is+invalid.", http.StatusSeeOther)
		return
	}

	item := &models.GroceryItem{
		UserID:         userID,
		Name:           r.FormValue("name"),
		Quantity:       qty,
		IsRefrigerated: r.FormValue("is_refrigerated") == "on",
		PurchaseDate:   purchase,
		ExpiryDate:     expiry,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Groceries.Create(ctx, item); err != nil {
		switch {
		case errors.Is(err, grocerystore.ErrMissingName):
			http.Redirect(w, r, "/groceries?err=Item+name+is+required.", http.StatusSeeOther)
		case errors.Is(err, grocerystore.ErrInvalidQuantity):
			http.Redirect(w, r, "/groceries?err=Quantity+must+be+at+least+1.", http.StatusSeeOther)
		default:
			h.Log.Error("groceries: add", zap.String("user_id", u.ID), zap.Error(err))
			http.Redirect(w, r, "/groceries?err=Could+not+add+the+item.", http.StatusSeeOther)
		}
		return
	}

	http.Redirect(w, r, "/groceries", http.StatusSeeOther)
}
