// internal/app/features/leaderboard/handler.go
package leaderboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ecochef/ecochef/internal/app/features/errors"
	"github.com/ecochef/ecochef/internal/app/store/users"
	"github.com/ecochef/ecochef/internal/app/system/timeouts"
	"github.com/ecochef/ecochef/internal/app/system/viewdata"
)

type Handler struct {
	Users *users.Store
	Log   *zap.Logger
}

func NewHandler(userStore *users.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Users: userStore,
		Log:   logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	Entries []Entry
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /leaderboard                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeBoard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := h.Users.ListAll(ctx)
	if err != nil {
		h.Log.Error("leaderboard: list users", zap.Error(err))
		uierrors.RenderServerError(w, r, "Could not load the leaderboard.", "/dashboard")
		return
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Leaderboard", "/dashboard"),
		Entries: Rank(members),
	}

	templates.Render(w, r, "leaderboard", data)
}
