// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ecochef/ecochef/internal/app/features/errors"
	"github.com/ecochef/ecochef/internal/app/store/users"
	"github.com/ecochef/ecochef/internal/app/system/auth"
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
	FullName   string
	Email      string
	Points     int
	Joined     string
	HasProfile bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /profile                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Profile", "/dashboard"),
		Email:  u.Email,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	profile, err := h.Users.GetByEmail(ctx, u.Email)
	switch {
	case err == nil:
		data.FullName = profile.FullName
		data.Points = profile.Points
		data.Joined = profile.CreatedAt.Format("02/01/2006")
		data.HasProfile = true
	case errors.Is(err, users.ErrNotFound):
		// The login identity exists without a profile document.
		data.FullName = u.Name
	default:
		h.Log.Error("profile: load", zap.String("email", u.Email), zap.Error(err))
		uierrors.RenderServerError(w, r, "Could not load your profile.", "/dashboard")
		return
	}

	templates.Render(w, r, "profile", data)
}
