// internal/app/features/groceries/views/views.go
package groceries

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "groceries",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
