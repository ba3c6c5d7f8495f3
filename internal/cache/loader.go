// Package cache reads flag cache files into an aconfig.Cache.
package cache

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"github.com/pquerna/ffjson/ffjson"
	"gopkg.in/yaml.v3"

	"github.com/swipe-io/aconfig"
	"github.com/swipe-io/aconfig/internal/errors"
)

// ErrUnknownFormat is returned for files whose extension has no decoder.
var ErrUnknownFormat = errors.New("unknown cache format")

type flagDecl struct {
	Name       string             `mapstructure:"name"`
	Namespace  string             `mapstructure:"namespace"`
	State      aconfig.FlagState  `mapstructure:"state"`
	Permission aconfig.Permission `mapstructure:"permission"`
}

type cacheDecl struct {
	Package string     `mapstructure:"package"`
	Flags   []flagDecl `mapstructure:"flags"`
}

type decodeFunc func(data []byte) (map[string]interface{}, error)

var decoders = map[string]decodeFunc{
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".toml": decodeTOML,
	".json": decodeJSON,
}

func decodeYAML(data []byte) (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeTOML(data []byte) (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeJSON(data []byte) (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	if err := ffjson.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Formats returns the supported file extensions.
func Formats() []string {
	return []string{".json", ".toml", ".yaml", ".yml"}
}

// Load reads and validates the cache stored at path. The format is chosen by extension.
func Load(path string) (*aconfig.Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NoteSource(path, err)
	}
	c, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, errors.NoteSource(path, err)
	}
	return c, nil
}

// Decode parses data in the format named by ext (".yaml", ".toml", ...).
func Decode(ext string, data []byte) (*aconfig.Cache, error) {
	decode, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return nil, errors.WithHintf(
			errors.Mark(errors.Newf("extension %q", ext), ErrUnknownFormat),
			"supported extensions: %s", strings.Join(Formats(), ", "),
		)
	}
	raw, err := decode(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode cache")
	}
	var decl cacheDecl
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.TextUnmarshallerHookFunc(),
		ErrorUnused: true,
		Result:      &decl,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "decode cache")
	}
	items := make([]aconfig.Item, len(decl.Flags))
	for i, f := range decl.Flags {
		items[i] = aconfig.Item{
			Namespace:  f.Namespace,
			Name:       f.Name,
			State:      f.State,
			Permission: f.Permission,
		}
	}
	return aconfig.NewCache(decl.Package, items)
}
