// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/app/store/users"
	"github.com/ecochef/ecochef/internal/app/system/auth"
	"github.com/ecochef/ecochef/internal/app/system/timeouts"
	"github.com/ecochef/ecochef/internal/app/system/viewdata"
)

// Handler serves the signed-in member dashboard.
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
	Points     int
	HasProfile bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	profile, err := h.Users.GetByEmail(ctx, u.Email)
	switch {
	case err == nil:
		data.Points = profile.Points
		data.HasProfile = true
	case errors.Is(err, users.ErrNotFound):
		// Signup's profile step may have failed; the dashboard still works.
		h.Log.Warn("dashboard: no profile for account", zap.String("email", u.Email))
	default:
		h.Log.Error("dashboard: load profile", zap.String("email", u.Email), zap.Error(err))
	}

	templates.Render(w, r, "dashboard", data)
}
