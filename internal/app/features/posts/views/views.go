// internal/app/features/posts/views/views.go
package posts

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "posts",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
