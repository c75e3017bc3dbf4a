// Package view binds the HTML templates to Echo's Renderer seam.
// Handlers build view-models and call c.Render; everything about
// markup lives in the embedded template files.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	t *template.Template
}

// New parses the embedded templates.  Parsing happens once at
// startup, so a malformed template fails fast instead of at request
// time.
func New() (*Renderer, error) {
	t, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.t.ExecuteTemplate(w, name, data)
}
