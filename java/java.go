// Package java generates the Java flag library of an aconfig package: the
// static Flags accessor class, the FeatureFlags interface and its
// DeviceConfig backed FeatureFlagsImpl.
package java

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/swipe-io/aconfig"
)

const (
	FlagsFile = "Flags.java"
	ImplFile  = "FeatureFlagsImpl.java"
	IfaceFile = "FeatureFlags.java"
)

var files = [...]string{FlagsFile, ImplFile, IfaceFile}

// FileNames lists the generated file names in output order.
func FileNames() []string {
	return append([]string(nil), files[:]...)
}

type options struct {
	renderer  Renderer
	templates fs.FS
}

type Option func(*options)

// WithRenderer replaces the template renderer. The renderer must know every name of FileNames.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithTemplates loads templates from fsys instead of the built-in ones.
func WithTemplates(fsys fs.FS) Option {
	return func(o *options) {
		o.templates = fsys
	}
}

// Generator turns flag models into Java sources. It holds no mutable state
// and may be shared between goroutines.
type Generator struct {
	renderer Renderer
}

func NewGenerator(opts ...Option) (*Generator, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.renderer == nil {
		fsys := o.templates
		if fsys == nil {
			fsys = Templates()
		}
		r, err := NewTemplateRenderer(fsys, files[:]...)
		if err != nil {
			return nil, err
		}
		o.renderer = r
	}
	return &Generator{renderer: o.renderer}, nil
}

// Generate renders the three files of model. Either all files are returned
// or a *GenerationError.
func (g *Generator) Generate(model FlagModel) ([]aconfig.OutputFile, error) {
	pkg := model.Package()
	ctx, err := BuildContext(model)
	if err != nil {
		return nil, newGenerationError(pkg, err)
	}
	dir := packageDir(pkg)
	out := make([]aconfig.OutputFile, 0, len(files))
	for _, name := range files {
		contents, err := g.renderer.Render(name, ctx)
		if err != nil {
			return nil, newGenerationError(pkg, err)
		}
		out = append(out, aconfig.OutputFile{
			Path:     filepath.Join(dir, name),
			Contents: contents,
		})
	}
	return out, nil
}

// Generate renders model with the built-in templates.
func Generate(model FlagModel) ([]aconfig.OutputFile, error) {
	g, err := NewGenerator()
	if err != nil {
		return nil, newGenerationError(model.Package(), err)
	}
	return g.Generate(model)
}

func packageDir(pkg string) string {
	return filepath.Join(strings.Split(pkg, ".")...)
}
