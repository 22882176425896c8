// internal/app/features/signup/handler.go
package signup

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	signupflow "github.com/ecochef/ecochef/internal/app/store/queries/signup"
	"github.com/ecochef/ecochef/internal/app/system/auth"
	"github.com/ecochef/ecochef/internal/app/system/timeouts"
	"github.com/ecochef/ecochef/internal/app/system/viewdata"
)

const minPasswordLen = 8

type Handler struct {
	Flow       *signupflow.Runner
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(flow *signupflow.Runner, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Flow:       flow,
		SessionMgr: sessionMgr,
		Log:        logger,
	}
}

type formData struct {
	viewdata.BaseVM
	FullName string
	Email    string
	Error    string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /signup – form                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := formData{
		BaseVM: viewdata.NewBaseVM(r, "Sign up", "/"),
	}
	templates.Render(w, r, "signup", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /signup – register                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	fullName := strings.TrimSpace(r.FormValue("full_name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	reRender := func(msg string) {
		data := formData{
			BaseVM:   viewdata.NewBaseVM(r, "Sign up", "/"),
			FullName: fullName,
			Email:    email,
			Error:    msg,
		}
		templates.Render(w, r, "signup", data)
	}

	if fullName == "" || email == "" {
		reRender("Name and email are required.")
		return
	}
	if len(password) < minPasswordLen {
		reRender("Password must be at least 8 characters.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	acct, _, err := h.Flow.Run(ctx, fullName, email, password)
	if err != nil {
		if errors.Is(err, signupflow.ErrEmailTaken) {
			reRender("That email is already registered. Try logging in.")
			return
		}
		h.Log.Error("signup failed", zap.String("email", email), zap.Error(err))
		reRender("Could not create your account right now. Please try again.")
		return
	}

	su := &auth.SessionUser{
		ID:    acct.ID.Hex(),
		Name:  acct.FullName,
		Email: acct.Email,
	}
	if err := h.SessionMgr.CreateLoginSession(w, r, su); err != nil {
		h.Log.Error("signup: create session", zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
