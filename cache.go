package aconfig

import (
	"github.com/swipe-io/aconfig/codegen"
	"github.com/swipe-io/aconfig/internal/errors"
)

// ErrInvalidCache marks every validation failure of NewCache.
var ErrInvalidCache = errors.New("invalid cache")

// Cache is a validated, immutable set of flags of one package.
type Cache struct {
	pkg   string
	items []Item
}

// NewCache validates the package and items and keeps the items in the given order.
func NewCache(pkg string, items []Item) (*Cache, error) {
	if !codegen.IsValidPackageIdent(pkg) {
		return nil, errors.Mark(errors.Newf("bad package %q", pkg), ErrInvalidCache)
	}
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if err := validateItem(item); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "flag #%d", i), ErrInvalidCache)
		}
		if _, ok := seen[item.Name]; ok {
			return nil, errors.Mark(errors.Newf("duplicate flag %q", item.Name), ErrInvalidCache)
		}
		seen[item.Name] = struct{}{}
	}
	c := &Cache{pkg: pkg, items: make([]Item, len(items))}
	copy(c.items, items)
	return c, nil
}

func validateItem(item Item) error {
	if !codegen.IsValidNameIdent(item.Name) {
		return errors.WithHint(
			errors.Newf("bad flag name %q", item.Name),
			"flag names must match [a-z][a-z0-9_]*",
		)
	}
	if item.Namespace == "" {
		return errors.Newf("flag %q: empty namespace", item.Name)
	}
	if !item.State.IsValid() {
		return errors.Newf("flag %q: %s", item.Name, item.State)
	}
	if !item.Permission.IsValid() {
		return errors.Newf("flag %q: %s", item.Name, item.Permission)
	}
	return nil
}

func (c *Cache) Package() string {
	return c.pkg
}

// Items returns a copy of the flags in declaration order.
func (c *Cache) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cache) Len() int {
	return len(c.items)
}
