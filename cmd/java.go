package cmd

import (
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swipe-io/aconfig"
	"github.com/swipe-io/aconfig/internal/cache"
	"github.com/swipe-io/aconfig/internal/errors"
	"github.com/swipe-io/aconfig/internal/executor"
	"github.com/swipe-io/aconfig/internal/gitattributes"
	"github.com/swipe-io/aconfig/internal/logger"
	"github.com/swipe-io/aconfig/java"
	"github.com/swipe-io/aconfig/writer"
)

func newJavaCmd(a *app) *cobra.Command {
	javaCmd := &cobra.Command{
		Use:   "create-java-lib [cache...]",
		Short: "Generate the Java flag library of each cache",
		Long: `Generates Flags.java, FeatureFlags.java and FeatureFlagsImpl.java for every
cache, under <out>/<package path>/. Nothing is written if any cache fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runJava(cmd, args)
		},
	}
	flags := javaCmd.Flags()
	flags.StringSlice("cache", nil, "Flag cache file (.yaml, .yml, .toml, .json), repeatable")
	flags.StringP("out", "o", ".", "Output directory")
	flags.String("templates-dir", "", "Directory with <file>.template overrides")
	flags.Bool("do-not-edit", true, "Prefix generated files with a DO NOT EDIT header")
	flags.Bool("gitattributes", false, "Mark generated files -diff in <out>/.gitattributes")

	_ = a.v.BindPFlag("caches", flags.Lookup("cache"))
	_ = a.v.BindPFlag("out", flags.Lookup("out"))
	_ = a.v.BindPFlag("templates-dir", flags.Lookup("templates-dir"))
	_ = a.v.BindPFlag("do-not-edit", flags.Lookup("do-not-edit"))
	_ = a.v.BindPFlag("gitattributes", flags.Lookup("gitattributes"))
	return javaCmd
}

func (a *app) runJava(cmd *cobra.Command, args []string) error {
	cfg := a.cfg
	caches := append(append([]string(nil), cfg.Caches...), args...)
	if len(caches) == 0 {
		return errors.WithHint(errors.New("requires a cache argument"), "pass --cache <file> or list caches in "+configName+".yaml")
	}

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgWhite))
	cmd.Println(header.Sprint("aconfig - " + aconfig.Version))
	cmd.Printf("%s: %s\n", color.Yellow.Render("Caches"), strings.Join(caches, ", "))
	cmd.Printf("%s: %s\n", color.Yellow.Render("Output"), cfg.Out)

	var opts []java.Option
	if cfg.TemplatesDir != "" {
		opts = append(opts, java.WithTemplates(os.DirFS(cfg.TemplatesDir)))
	}
	generator, err := java.NewGenerator(opts...)
	if err != nil {
		return err
	}

	results := executor.NewGenerationExecutor(cache.Load, generator, a.logger).Execute(caches)

	var ec errors.ErrorCollector
	ec.Add(executor.Errors(results)...)
	if ec.Len() > 0 {
		for _, err := range ec.Errors() {
			a.logger.Error("generate failed", zap.Error(err))
		}
		return ec.Err()
	}

	var writerOpts []writer.Option
	writerOpts = append(writerOpts, writer.WithLogger(a.logger))
	if cfg.DoNotEdit {
		writerOpts = append(writerOpts, writer.WithDoNotEdit(aconfig.Version))
	}
	w := writer.NewFileWriter(cfg.Out, writerOpts...)

	var diffExcludes []string
	for _, r := range results {
		written, err := w.Write(r.Files)
		diffExcludes = append(diffExcludes, written...)
		if err != nil {
			return errors.NoteSource(r.CachePath, err)
		}
		for _, path := range written {
			cmd.Printf("%s: wrote %s\n", colorAccent(r.Package), path)
		}
	}
	if cfg.GitAttributes {
		if err := gitattributes.Generate(cfg.Out, diffExcludes); err != nil {
			return err
		}
	}
	a.logger.Info("generated", zap.Int(logger.FieldCount, len(diffExcludes)))
	cmd.Println(colorSuccess("Command execution completed successfully"))
	return nil
}
