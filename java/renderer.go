package java

import (
	"bytes"
	"embed"
	"io/fs"
	"text/template"

	"github.com/achiku/varfmt"
	"github.com/swipe-io/strcase"

	"github.com/swipe-io/aconfig/internal/errors"
)

const templateExt = ".template"

//go:embed templates/*.template
var embedded embed.FS

// Templates returns the built-in templates, one "<file name>.template" per output file.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer renders the named template with data. Implementations must be
// deterministic and safe for concurrent use.
type Renderer interface {
	Render(name string, data interface{}) ([]byte, error)
}

var funcs = template.FuncMap{
	"ToLowerCamel":  strcase.ToLowerCamel,
	"ToCamel":       strcase.ToCamel,
	"ToSnake":       strcase.ToSnake,
	"ToKebab":       strcase.ToKebab,
	"PublicVarName": varfmt.PublicVarName,
}

// TemplateRenderer is a Renderer backed by text/template.
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// NewTemplateRenderer parses "<name>.template" from fsys for each of names.
func NewTemplateRenderer(fsys fs.FS, names ...string) (*TemplateRenderer, error) {
	r := &TemplateRenderer{templates: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name+templateExt)
		if err != nil {
			return nil, templateParseError(name, err)
		}
		t, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(string(data))
		if err != nil {
			return nil, templateParseError(name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

func (r *TemplateRenderer) Render(name string, data interface{}) ([]byte, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, templateRenderError(name, errors.New("template not loaded"))
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, templateRenderError(name, err)
	}
	return buf.Bytes(), nil
}
