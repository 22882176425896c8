package billscan

import (
	"github.com/go-chi/chi/v5"

	_ "github.com/ecochef/ecochef/internal/app/features/billscan/views"

	"github.com/ecochef/ecochef/internal/app/system/auth"
)

// Routes serves the interactive scan pages under /scan.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeForm)
		pr.Post("/", h.HandleScan)
	})
	return r
}

// APIRoutes serves the JSON endpoint under /api.
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/ocr-to-json", h.HandleOCRToJSON)
	return r
}
