// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/ecochef/ecochef/internal/app/system/auth"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title      string
	IsLoggedIn bool
	UserName   string
	Message    string
	BackURL    string
}

func newPageData(r *http.Request, title, msg, backURL string) pageData {
	data := pageData{
		Title:   title,
		Message: msg,
		BackURL: backURL,
	}
	if u, ok := auth.CurrentUser(r); ok {
		data.IsLoggedIn = true
		data.UserName = u.Name
	}
	return data
}

// RenderServerError shows a friendly failure page with a message.
// If backURL is empty it falls back to the home page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	if msg == "" {
		msg = "Something went wrong. Please try again."
	}
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", newPageData(r, "Something went wrong", msg, backURL))
}

// RenderNotFound shows a friendly "not found" page.
func RenderNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", newPageData(r, "Page not found",
		"That page doesn't exist.", "/"))
}

// RenderUnauthorized shows a friendly "sign in required" page.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	w.WriteHeader(http.StatusUnauthorized)
	templates.Render(w, r, "error_page", newPageData(r, "Sign in required",
		"Please sign in to continue.", backURL))
}
