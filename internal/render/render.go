// Package render re-associates aggregated inference records with the
// declarations they describe and emits human-facing diagnostics at their
// positions.
//
// The package never mutates records: it walks the syntax tree, asks the
// injected identifier collaborator for each declaration's stable id, and
// reports verdicts for index hits through a Reporter. Missing matches are
// the expected common case and produce nothing.
package render

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/nilfer/nilfer/internal/inference"
)

// Identify computes the stable identifier of a declared function.
// ok is false when the declaration has no identifier (and is skipped).
type Identify func(*types.Func) (string, bool)

// Options control the rendering pass.
type Options struct {
	// Evidence enables secondary notes with evidence provenance.
	Evidence bool
}

// Renderer walks declarations and reports inference verdicts for the
// symbols present in its index.
type Renderer struct {
	fset  *token.FileSet
	info  *types.Info
	index Index
	ident Identify
	opts  Options
	r     *Reporter
}

// NewRenderer wires a renderer over one unit's file set and type info.
func NewRenderer(
	fset *token.FileSet,
	info *types.Info,
	index Index,
	ident Identify,
	opts Options,
	r *Reporter,
) *Renderer {
	return &Renderer{
		fset:  fset,
		info:  info,
		index: index,
		ident: ident,
		opts:  opts,
		r:     r,
	}
}

// Render visits every function declaration of file exactly once, in
// source order, and reports the matching record, if any, at the
// declaration's name.
func (rd *Renderer) Render(file *ast.File) {
	ast.Inspect(file, func(n ast.Node) bool {
		fd, ok := n.(*ast.FuncDecl)
		if !ok {
			return true
		}

		obj, ok := rd.info.Defs[fd.Name].(*types.Func)
		if !ok {
			return true
		}

		id, ok := rd.ident(obj)
		if !ok {
			return true
		}

		rec, ok := rd.index[id]
		if !ok {
			// Most declarations have no record. Routine, not an error.
			return true
		}

		rd.renderRecord(rec, fd.Name.Pos())
		return true
	})
}

func (rd *Renderer) renderRecord(rec *inference.Record, pos token.Pos) {
	for _, slot := range rec.Slots {
		msg := fmt.Sprintf("would mark %s as %s here", slot.Slot.Name(), slot.Verdict)
		if slot.Conflict {
			// The verdict is best-effort under conflict; say so.
			msg += " (conflicting evidence)"
		}

		rd.r.Report(Diag{Severity: SeverityReport, Message: msg, Pos: pos})

		if !rd.opts.Evidence {
			continue
		}

		for _, ev := range slot.Evidence {
			if ev.Loc == "" {
				continue
			}

			evpos := ParseLoc(rd.fset, ev.Loc)
			if !evpos.IsValid() {
				// Best-effort lookup; the location may be gone.
				continue
			}

			rd.r.Report(Diag{
				Severity: SeverityNote,
				Message:  ev.KindName() + " here",
				Pos:      evpos,
			})
		}
	}
}
