// Package executor runs the java generator over many cache files at once.
package executor

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/swipe-io/aconfig"
	"github.com/swipe-io/aconfig/internal/errors"
	"github.com/swipe-io/aconfig/internal/logger"
	"github.com/swipe-io/aconfig/java"
)

// ErrPackageConflict is reported when two caches declare the same package.
var ErrPackageConflict = errors.New("package generated more than once")

type GenerateResult struct {
	CachePath string
	Package   string
	Files     []aconfig.OutputFile
	Errs      []error
}

// Loader reads a cache file.
type Loader func(path string) (*aconfig.Cache, error)

type GenerationExecutor struct {
	load      Loader
	generator *java.Generator
	logger    *zap.Logger
}

func NewGenerationExecutor(load Loader, generator *java.Generator, l *zap.Logger) *GenerationExecutor {
	if l == nil {
		l = zap.NewNop()
	}
	return &GenerationExecutor{load: load, generator: generator, logger: l}
}

type indexedResult struct {
	index  int
	result GenerateResult
}

func (e *GenerationExecutor) processGenerate(cachePaths []string) <-chan indexedResult {
	outCh := make(chan indexedResult)

	go func() {
		var wg sync.WaitGroup

		for i, cachePath := range cachePaths {
			wg.Add(1)

			go func(i int, cachePath string) {
				defer wg.Done()

				generated := GenerateResult{CachePath: cachePath}

				defer func() {
					outCh <- indexedResult{index: i, result: generated}
				}()

				cache, err := e.load(cachePath)
				if err != nil {
					generated.Errs = append(generated.Errs, err)
					return
				}
				generated.Package = cache.Package()

				files, err := e.generator.Generate(cache)
				if err != nil {
					generated.Errs = append(generated.Errs, errors.NoteSource(cachePath, err))
					return
				}
				generated.Files = files

				e.logger.Debug("generated",
					zap.String(logger.FieldCache, cachePath),
					zap.String(logger.FieldPackage, generated.Package),
					zap.Int(logger.FieldCount, cache.Len()),
				)
			}(i, cachePath)
		}
		wg.Wait()
		close(outCh)
	}()
	return outCh
}

// Execute generates every cache concurrently. Results keep the order of cachePaths.
func (e *GenerationExecutor) Execute(cachePaths []string) []GenerateResult {
	results := make([]GenerateResult, len(cachePaths))
	for r := range e.processGenerate(cachePaths) {
		results[r.index] = r.result
	}
	markConflicts(results)
	return results
}

func markConflicts(results []GenerateResult) {
	owners := map[string][]int{}
	for i, r := range results {
		if r.Package != "" && len(r.Errs) == 0 {
			owners[r.Package] = append(owners[r.Package], i)
		}
	}
	pkgs := make([]string, 0, len(owners))
	for pkg := range owners {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	for _, pkg := range pkgs {
		idx := owners[pkg]
		if len(idx) < 2 {
			continue
		}
		first := results[idx[0]].CachePath
		for _, i := range idx[1:] {
			err := errors.Mark(errors.Newf("package %q is also declared by %s", pkg, first), ErrPackageConflict)
			results[i].Errs = append(results[i].Errs, errors.NoteSource(results[i].CachePath, err))
			results[i].Files = nil
		}
	}
}

// Errors flattens the errors of results.
func Errors(results []GenerateResult) []error {
	var ec errors.ErrorCollector
	for _, r := range results {
		ec.Add(r.Errs...)
	}
	return ec.Errors()
}
