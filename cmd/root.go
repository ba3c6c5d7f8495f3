package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/swipe-io/aconfig/internal/errors"
	"github.com/swipe-io/aconfig/internal/logger"
)

const (
	configName = ".aconfig"
	envPrefix  = "ACONFIG"
)

var (
	colorSuccess = color.Green.Render
	colorAccent  = color.Cyan.Render
	colorFail    = color.Red.Render
)

// Config is the merged view of the config file, ACONFIG_* variables and flags.
type Config struct {
	Caches        []string `mapstructure:"caches"`
	Out           string   `mapstructure:"out"`
	TemplatesDir  string   `mapstructure:"templates-dir"`
	DoNotEdit     bool     `mapstructure:"do-not-edit"`
	GitAttributes bool     `mapstructure:"gitattributes"`
	Verbose       bool     `mapstructure:"verbose"`
	LogJSON       bool     `mapstructure:"log-json"`
}

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	logger  *zap.Logger
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("out", ".")
	v.SetDefault("do-not-edit", true)
	v.SetDefault("gitattributes", false)
}

func (a *app) load() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return errors.Wrap(err, "decode config")
	}
	l, err := logger.New(a.cfg.Verbose, a.cfg.LogJSON)
	if err != nil {
		return err
	}
	a.logger = l
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("config loaded", zap.String(logger.FieldFile, used))
	}
	return nil
}

// NewRootCommand builds the aconfig command tree with its own configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	setDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "aconfig",
		Short: "Generate feature flag libraries from aconfig caches",
		Long: `aconfig turns validated flag caches into source code.

Examples:
  aconfig create-java-lib --cache flags.yaml --out gen
  aconfig dump --cache flags.yaml --format yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./"+configName+".yaml)")
	flags.BoolP("verbose", "v", false, "Verbose output")
	flags.Bool("log-json", false, "Log as JSON")
	_ = a.v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = a.v.BindPFlag("log-json", flags.Lookup("log-json"))

	rootCmd.AddCommand(
		newJavaCmd(a),
		newDumpCmd(a),
		newInitCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), colorFail(err))
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "hint:", hint)
		}
		os.Exit(1)
	}
}
