package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/swipe-io/aconfig"
	"github.com/swipe-io/aconfig/internal/cache"
	"github.com/swipe-io/aconfig/internal/errors"
	"github.com/swipe-io/aconfig/internal/logger"
	"github.com/swipe-io/aconfig/writer"
)

type dumpFlag struct {
	Name       string             `yaml:"name"`
	Namespace  string             `yaml:"namespace"`
	State      aconfig.FlagState  `yaml:"state"`
	Permission aconfig.Permission `yaml:"permission"`
}

type dumpCache struct {
	Package string     `yaml:"package"`
	Flags   []dumpFlag `yaml:"flags"`
}

var dumpFormats = map[string]func(c *aconfig.Cache) ([]byte, error){
	"text": dumpText,
	"yaml": dumpYAML,
}

func dumpText(c *aconfig.Cache) ([]byte, error) {
	var w writer.TextWriter
	for _, item := range c.Items() {
		w.Ln("%s.%s [%s]: %s %s", c.Package(), item.Name, item.Namespace, item.State, item.Permission)
	}
	return w.Bytes(), nil
}

func dumpYAML(c *aconfig.Cache) ([]byte, error) {
	out := dumpCache{Package: c.Package()}
	for _, item := range c.Items() {
		out.Flags = append(out.Flags, dumpFlag{
			Name:       item.Name,
			Namespace:  item.Namespace,
			State:      item.State,
			Permission: item.Permission,
		})
	}
	return yaml.Marshal(out)
}

func newDumpCmd(a *app) *cobra.Command {
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the flags of a cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cachePath, _ := cmd.Flags().GetString("cache")
			format, _ := cmd.Flags().GetString("format")
			dump, ok := dumpFormats[format]
			if !ok {
				return errors.WithHint(errors.Newf("unknown format %q", format), "use text or yaml")
			}
			c, err := cache.Load(cachePath)
			if err != nil {
				return err
			}
			a.logger.Debug("dump", zap.String(logger.FieldCache, cachePath), zap.Int(logger.FieldCount, c.Len()))
			data, err := dump(c)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	dumpCmd.Flags().String("cache", "", "Flag cache file")
	dumpCmd.Flags().String("format", "text", "Output format: text or yaml")
	_ = dumpCmd.MarkFlagRequired("cache")
	return dumpCmd
}
