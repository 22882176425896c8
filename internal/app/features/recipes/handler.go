// internal/app/features/recipes/handler.go

// Feature recipes turns the member's grocery list into a recipe suggestion
// and offers to share the result as a post.
package recipes

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	uierrors "github.com/ecochef/ecochef/internal/app/features/errors"
	grocerystore "github.com/ecochef/ecochef/internal/app/store/groceries"
	"github.com/ecochef/ecochef/internal/app/system/auth"
	"github.com/ecochef/ecochef/internal/app/system/htmlsanitize"
	"github.com/ecochef/ecochef/internal/app/system/timeouts"
	"github.com/ecochef/ecochef/internal/app/system/viewdata"
)

// Completer generates text from a system + user prompt pair.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Handler struct {
	Groceries *grocerystore.Store
	LLM       Completer
	Log       *zap.Logger
}

func NewHandler(store *grocerystore.Store, llm Completer, logger *zap.Logger) *Handler {
	return &Handler{
		Groceries: store,
		LLM:       llm,
		Log:       logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	Recipe  string
	HasList bool
	Error   string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /recipes – landing with a generate button                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Recipe ideas", "/dashboard"),
		HasList: true,
	}
	templates.Render(w, r, "recipes", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /recipes/generate                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
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

	reRender := func(msg string, recipe string) {
		data := pageData{
			BaseVM:  viewdata.NewBaseVM(r, "Recipe ideas", "/dashboard"),
			Recipe:  recipe,
			HasList: true,
			Error:   msg,
		}
		templates.Render(w, r, "recipes", data)
	}

	listCtx, cancelList := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancelList()

	items, err := h.Groceries.ListForUser(listCtx, userID)
	if err != nil {
		h.Log.Error("recipes: list groceries", zap.String("user_id", u.ID), zap.Error(err))
		reRender("Could not load your groceries.", "")
		return
	}

	summary := BuildIngredientSummary(items, time.Now())
	if summary == "" {
		reRender("Your grocery list is empty. Add some items first.", "")
		return
	}

	llmCtx, cancelLLM := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancelLLM()

	recipe, err := h.LLM.Complete(llmCtx, systemPrompt, buildUserPrompt(summary))
	if err != nil {
		h.Log.Error("recipes: completion failed", zap.Error(err))
		reRender("Could not generate a recipe right now. Please try again.", "")
		return
	}

	reRender("", htmlsanitize.Strip(recipe))
}
