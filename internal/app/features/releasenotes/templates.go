// internal/app/features/releasenotes/templates.go
package releasenotes

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "releasenotes",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
