// internal/app/features/recipes/views/views.go
package recipes

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "recipes",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
