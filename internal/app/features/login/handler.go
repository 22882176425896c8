// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/app/store/accounts"
	"github.com/ecochef/ecochef/internal/app/system/auth"
	"github.com/ecochef/ecochef/internal/app/system/timeouts"
	"github.com/ecochef/ecochef/internal/app/system/viewdata"
	"github.com/ecochef/ecochef/internal/domain/models"
)

// Authenticator checks email/password credentials. Bad credentials are
// reported as accounts.ErrInvalidCredentials.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.Account, error)
}

type Handler struct {
	Accounts   Authenticator
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(accts Authenticator, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Accounts:   accts,
		SessionMgr: sessionMgr,
		Log:        logger,
	}
}

type formData struct {
	viewdata.BaseVM
	Email     string
	ReturnURL string
	Error     string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login – form                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := formData{
		BaseVM:    viewdata.NewBaseVM(r, "Log in", "/"),
		ReturnURL: query.Get(r, "return"),
	}
	templates.Render(w, r, "login", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login – authenticate                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	ret := strings.TrimSpace(r.FormValue("return"))

	reRender := func(msg string) {
		data := formData{
			BaseVM:    viewdata.NewBaseVM(r, "Log in", "/"),
			Email:     email,
			ReturnURL: ret,
			Error:     msg,
		}
		templates.Render(w, r, "login", data)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	acct, err := h.Accounts.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			reRender("Incorrect email or password.")
			return
		}
		h.Log.Error("login failed", zap.String("email", email), zap.Error(err))
		reRender("Could not log you in right now. Please try again.")
		return
	}

	su := &auth.SessionUser{
		ID:    acct.ID.Hex(),
		Name:  acct.FullName,
		Email: acct.Email,
	}
	if err := h.SessionMgr.CreateLoginSession(w, r, su); err != nil {
		h.Log.Error("login: create session", zap.Error(err))
		reRender("Could not log you in right now. Please try again.")
		return
	}

	dest := urlutil.SafeReturn(ret, "", "/dashboard")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
