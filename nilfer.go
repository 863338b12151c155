// Package nilfer infers the nullability intent of pointer slots in Go
// code. It collects evidence per function slot (the return type and each
// parameter) from two sources: explicit marker annotations in signatures
// and observed usage such as nil returns, unchecked dereferences and nil
// arguments. Evidence is aggregated into per-symbol records and rendered
// back onto declarations as "would mark ... here" diagnostics.
package nilfer

import (
	"flag"
	"fmt"
	"go/ast"
	"go/types"
	"os"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"gopkg.in/yaml.v3"

	"github.com/nilfer/nilfer/internal/config"
	"github.com/nilfer/nilfer/internal/inference"
	"github.com/nilfer/nilfer/internal/observe"
	"github.com/nilfer/nilfer/internal/render"
	"github.com/nilfer/nilfer/internal/symid"
	"github.com/nilfer/nilfer/internal/sugar"
)

const doc = `nilfer infers nullability intent for pointer slots from annotations and usage`

// Analyzer is the analysis entry point.
var Analyzer = &analysis.Analyzer{
	Name:     "nilfer",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var (
	flagIncludeTrivial bool
	flagDiagnostics    bool
	flagEvidence       bool
	flagRecords        bool
	flagConfig         string
)

func init() {
	Analyzer.Flags.BoolVar(&flagIncludeTrivial, "include-trivial", false,
		"keep slots whose only evidence restates an explicit annotation")
	Analyzer.Flags.BoolVar(&flagDiagnostics, "diagnostics", true,
		"report verdicts at the declarations they describe")
	Analyzer.Flags.BoolVar(&flagEvidence, "evidence", true,
		"attach evidence provenance notes to each verdict")
	Analyzer.Flags.BoolVar(&flagRecords, "records", false,
		"dump aggregated inference records to stdout as yaml")
	Analyzer.Flags.StringVar(&flagConfig, "config", "",
		"path to a nilfer configuration file")
}

func run(pass *analysis.Pass) (any, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	// Explicit command line flags win over the configuration file.
	set := map[string]bool{}
	pass.Analyzer.Flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	opt := func(name string, flagVal bool, fileVal *bool) bool {
		if set[name] || fileVal == nil {
			return flagVal
		}
		return *fileVal
	}

	includeTrivial := opt("include-trivial", flagIncludeTrivial, cfg.IncludeTrivial)
	diagnostics := opt("diagnostics", flagDiagnostics, cfg.Diagnostics)
	evidence := opt("evidence", flagEvidence, cfg.Evidence)
	dumpRecords := opt("records", flagRecords, cfg.Records)

	markers := sugar.DefaultMarkers()
	for _, m := range cfg.Markers {
		markers.Register(m.Package, m.Nonnull, m.Nullable)
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	eng := observe.NewEngine(pass.Fset, pass.TypesInfo, pass.Pkg, markers)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}
	pector.Preorder(nodeFilter, func(node ast.Node) {
		eng.Observe(node.(*ast.FuncDecl))
	})

	records := inference.PruneTrivial(eng.Records(), includeTrivial)

	if dumpRecords && len(records) > 0 {
		if err := yaml.NewEncoder(os.Stdout).Encode(records); err != nil {
			return nil, fmt.Errorf("encode inference records: %w", err)
		}
	}

	if !diagnostics || len(records) == 0 {
		return nil, nil
	}

	var rep render.Reporter
	rd := render.NewRenderer(
		pass.Fset,
		pass.TypesInfo,
		render.BuildIndex(records),
		func(fn *types.Func) (string, bool) { return symid.For(fn) },
		render.Options{Evidence: evidence},
		&rep,
	)
	for _, file := range pass.Files {
		rd.Render(file)
	}

	report(pass, rep.Diags())

	return nil, nil
}

// report forwards rendered diagnostics to the pass, folding note entries
// into the related information of their preceding report.
func report(pass *analysis.Pass, diags []render.Diag) {
	var pending []analysis.Diagnostic
	for _, d := range diags {
		switch d.Severity {
		case render.SeverityReport:
			pending = append(pending, analysis.Diagnostic{Pos: d.Pos, Message: d.Message})
		case render.SeverityNote:
			if len(pending) == 0 {
				continue
			}

			last := &pending[len(pending)-1]
			last.Related = append(last.Related, analysis.RelatedInformation{
				Pos:     d.Pos,
				Message: d.Message,
			})
		}
	}

	for i := range pending {
		pass.Report(pending[i])
	}
}
