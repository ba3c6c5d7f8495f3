// Package writer writes generated files to disk.
package writer

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/swipe-io/aconfig"
	"github.com/swipe-io/aconfig/frame"
	"github.com/swipe-io/aconfig/internal/errors"
	"github.com/swipe-io/aconfig/internal/logger"
)

type FileWriter struct {
	outDir       string
	version      string
	useDoNotEdit bool
	logger       *zap.Logger
}

type Option func(*FileWriter)

// WithDoNotEdit prefixes every file with a "Code generated ... DO NOT EDIT." header.
func WithDoNotEdit(version string) Option {
	return func(w *FileWriter) {
		w.useDoNotEdit = true
		w.version = version
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(w *FileWriter) {
		w.logger = l
	}
}

func NewFileWriter(outDir string, opts ...Option) *FileWriter {
	w := &FileWriter{outDir: outDir, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *FileWriter) OutDir() string {
	return w.outDir
}

// Write stores files under the output directory and returns the written
// paths relative to it. It stops at the first failure.
func (w *FileWriter) Write(files []aconfig.OutputFile) ([]string, error) {
	written := make([]string, 0, len(files))
	for _, file := range files {
		if filepath.IsAbs(file.Path) || !filepath.IsLocal(file.Path) {
			return written, errors.Newf("refusing to write %q outside of %s", file.Path, w.outDir)
		}
		outputPath := filepath.Join(w.outDir, file.Path)

		content, err := frame.NewFrame(w.version, file.Path, w.useDoNotEdit).Frame(file.Contents)
		if err != nil {
			return written, errors.Wrapf(err, "frame %s", file.Path)
		}

		dirPath := filepath.Dir(outputPath)
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return written, errors.Wrapf(err, "failed to create dir %s", dirPath)
		}
		if err := os.WriteFile(outputPath, content, 0644); err != nil {
			return written, errors.Wrapf(err, "failed to write %s", outputPath)
		}
		w.logger.Debug("wrote", zap.String(logger.FieldFile, outputPath), zap.Int("size", len(content)))
		written = append(written, file.Path)
	}
	return written, nil
}
