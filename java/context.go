package java

import (
	"github.com/swipe-io/aconfig"
	"github.com/swipe-io/aconfig/codegen"
	"github.com/swipe-io/aconfig/internal/errors"
)

// FlagModel is the input of a generation run.
type FlagModel interface {
	Package() string
	Items() []aconfig.Item
}

// RenderElement is the per-flag data the templates see.
type RenderElement struct {
	DefaultValue   string
	Namespace      string
	QualifiedID    string
	ConstantSuffix string
	IsReadWrite    bool
	AccessorName   string
}

// RenderContext is the single value every template of a run is executed with.
type RenderContext struct {
	Package      string
	AnyReadWrite bool
	Elements     []RenderElement
}

// BuildContext maps the flags of model to render elements, keeping their order.
func BuildContext(model FlagModel) (*RenderContext, error) {
	pkg := model.Package()
	items := model.Items()
	elements := make([]RenderElement, 0, len(items))
	for _, item := range items {
		e, err := newRenderElement(pkg, item)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return &RenderContext{
		Package:      pkg,
		AnyReadWrite: anyReadWrite(elements),
		Elements:     elements,
	}, nil
}

func newRenderElement(pkg string, item aconfig.Item) (RenderElement, error) {
	qualifiedID, err := codegen.CreateDeviceConfigIdent(pkg, item.Name)
	if err != nil {
		return RenderElement{}, contractViolation(err)
	}
	var defaultValue string
	switch item.State {
	case aconfig.Enabled:
		defaultValue = "true"
	case aconfig.Disabled:
		defaultValue = "false"
	default:
		return RenderElement{}, contractViolation(errors.AssertionFailedf("flag %q: unexpected %s", item.Name, item.State))
	}
	var isReadWrite bool
	switch item.Permission {
	case aconfig.ReadWrite:
		isReadWrite = true
	case aconfig.ReadOnly:
		isReadWrite = false
	default:
		return RenderElement{}, contractViolation(errors.AssertionFailedf("flag %q: unexpected %s", item.Name, item.Permission))
	}
	return RenderElement{
		DefaultValue:   defaultValue,
		Namespace:      item.Namespace,
		QualifiedID:    qualifiedID,
		ConstantSuffix: codegen.ToASCIIUpper(item.Name),
		IsReadWrite:    isReadWrite,
		AccessorName:   item.Name,
	}, nil
}

func anyReadWrite(elements []RenderElement) bool {
	for _, e := range elements {
		if e.IsReadWrite {
			return true
		}
	}
	return false
}
