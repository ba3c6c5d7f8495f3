package java

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/achiku/varfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipe-io/strcase"

	"github.com/swipe-io/aconfig/internal/errors"
)

func TestTemplatesEmbedded(t *testing.T) {
	for _, name := range FileNames() {
		data, err := fs.ReadFile(Templates(), name+templateExt)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "package {{ .Package }};")
	}
}

func TestTemplateRendererFuncs(t *testing.T) {
	fsys := fstest.MapFS{
		"names.template": &fstest.MapFile{
			Data: []byte(`{{ range .Elements }}{{ ToCamel .AccessorName }} {{ ToLowerCamel .AccessorName }} {{ ToKebab .AccessorName }} {{ PublicVarName .AccessorName }};{{ end }}`),
		},
	}
	r, err := NewTemplateRenderer(fsys, "names")
	require.NoError(t, err)

	ctx := &RenderContext{Elements: []RenderElement{{AccessorName: "enabled_rw"}}}
	got, err := r.Render("names", ctx)
	require.NoError(t, err)

	want := strcase.ToCamel("enabled_rw") + " " +
		strcase.ToLowerCamel("enabled_rw") + " " +
		strcase.ToKebab("enabled_rw") + " " +
		varfmt.PublicVarName("enabled_rw") + ";"
	assert.Equal(t, want, string(got))
}

func TestTemplateRendererMissingKey(t *testing.T) {
	fsys := fstest.MapFS{"t.template": &fstest.MapFile{Data: []byte(`{{ .missing }}`)}}
	r, err := NewTemplateRenderer(fsys, "t")
	require.NoError(t, err)

	_, err = r.Render("t", map[string]interface{}{"present": 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateRender))
}

func TestTemplateRendererUnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer(fstest.MapFS{})
	require.NoError(t, err)
	_, err = r.Render(FlagsFile, &RenderContext{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateRender))
}

func TestTemplateRendererParseError(t *testing.T) {
	fsys := fstest.MapFS{"t.template": &fstest.MapFile{Data: []byte(`{{ Unknown .Package }}`)}}
	_, err := NewTemplateRenderer(fsys, "t")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateParse))
	assert.False(t, errors.Is(err, ErrTemplateRender))
}
