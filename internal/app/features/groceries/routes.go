package groceries

import (
	"github.com/go-chi/chi/v5"

	_ "github.com/ecochef/ecochef/internal/app/features/groceries/views"

	"github.com/ecochef/ecochef/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Post("/", h.HandleAdd)
	})
	return r
}
