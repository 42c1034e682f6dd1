// internal/app/features/segmentation/templates.go
package segmentation

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "segmentation",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
