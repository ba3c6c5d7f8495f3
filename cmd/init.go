package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/swipe-io/aconfig/internal/errors"
	"github.com/swipe-io/aconfig/internal/logger"
)

func newInitCmd(a *app) *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an aconfig config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, _ := cmd.Flags().GetString("work-dir")
			force, _ := cmd.Flags().GetBool("force")
			if wd == "" {
				var err error
				wd, err = os.Getwd()
				if err != nil {
					return errors.Wrap(err, "failed to get working directory")
				}
			}
			cmd.Printf("Workdir: %s\n", wd)

			v := viper.New()
			setDefaults(v)
			v.Set("caches", []string{})
			v.Set("templates-dir", "")

			filename := filepath.Join(wd, configName+".yaml")
			var err error
			if force {
				err = v.WriteConfigAs(filename)
			} else {
				err = v.SafeWriteConfigAs(filename)
			}
			if err != nil {
				return errors.WithHint(errors.Wrapf(err, "write %s", filename), "use --force to overwrite")
			}
			a.logger.Debug("config written", zap.String(logger.FieldFile, filename))
			cmd.Printf("%s %s\n", colorSuccess("Created"), filename)
			return nil
		},
	}
	initCmd.Flags().StringP("work-dir", "w", "", "Directory of the config file")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	return initCmd
}
