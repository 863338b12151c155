// Package driver loads Go packages and runs the inference pipeline over
// them, one engine per package, in parallel.
package driver

import (
	"context"
	"fmt"
	"go/ast"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/nilfer/nilfer/internal/inference"
	"github.com/nilfer/nilfer/internal/observe"
	"github.com/nilfer/nilfer/internal/sugar"
)

// Options control one inference run.
type Options struct {
	// IncludeTrivial keeps slots whose only evidence restates an
	// explicit annotation.
	IncludeTrivial bool

	// Jobs caps parallel workers, 0 means one per CPU.
	Jobs int

	// Markers is the annotation vocabulary to recognize.
	Markers sugar.Markers
}

// UnitResult is the inference outcome for one loaded package.
type UnitResult struct {
	Pkg     *packages.Package
	Records []inference.Record
}

// Load resolves patterns into fully type-checked packages.
func Load(ctx context.Context, patterns []string) ([]*packages.Package, error) {
	conf := packages.Config{
		Context: ctx,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}

	initial, err := packages.Load(&conf, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	if n := packages.PrintErrors(initial); n > 0 {
		return nil, fmt.Errorf("%d errors during loading", n)
	}
	if len(initial) == 0 {
		return nil, fmt.Errorf("%s matched no packages", strings.Join(patterns, " "))
	}

	return initial, nil
}

// Infer runs one inference engine per package. Results keep the order of
// pkgs; indices are goroutine-unique so no locking is needed.
func Infer(ctx context.Context, pkgs []*packages.Package, opts Options) ([]UnitResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]UnitResult, len(pkgs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(pkgs)))

	for i, pkg := range pkgs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = UnitResult{
				Pkg:     pkg,
				Records: inferUnit(pkg, opts),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

func inferUnit(pkg *packages.Package, opts Options) []inference.Record {
	eng := observe.NewEngine(pkg.Fset, pkg.TypesInfo, pkg.Types, opts.Markers)
	for _, file := range pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			if fd, ok := n.(*ast.FuncDecl); ok {
				eng.Observe(fd)
			}
			return true
		})
	}

	return inference.PruneTrivial(eng.Records(), opts.IncludeTrivial)
}
