// internal/app/features/billscan/views/views.go
package billscan

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "billscan",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
