// internal/app/features/exclusion/templates.go
package exclusion

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "exclusion",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
