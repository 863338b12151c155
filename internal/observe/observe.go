package observe

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/nilfer/nilfer/internal/evkind"
	"github.com/nilfer/nilfer/internal/inference"
	"github.com/nilfer/nilfer/internal/nullness"
	"github.com/nilfer/nilfer/internal/sugar"
	"github.com/nilfer/nilfer/internal/symid"
)

// Engine accumulates nullability evidence for the functions of one unit.
// It is used exactly once per analysis pass and is not safe for
// concurrent use; run one engine per unit instead.
type Engine struct {
	fset    *token.FileSet
	info    *types.Info
	pkg     *types.Package
	markers sugar.Markers

	perSym map[string]map[nullness.Slot][]inference.Evidence
	seen   map[slotKey]bool
	order  []string
}

// slotKey dedupes built-in observation kinds: seeing the same pattern
// twice adds no information.
type slotKey struct {
	sym  string
	slot nullness.Slot
	kind evkind.Kind
}

// NewEngine wires an engine over one unit's file set, type info and
// package.
func NewEngine(fset *token.FileSet, info *types.Info, pkg *types.Package, markers sugar.Markers) *Engine {
	return &Engine{
		fset:    fset,
		info:    info,
		pkg:     pkg,
		markers: markers,
		perSym:  map[string]map[nullness.Slot][]inference.Evidence{},
		seen:    map[slotKey]bool{},
	}
}

// Observe processes one function declaration: annotation evidence from
// its signature first, then usage evidence from its body.
func (e *Engine) Observe(fd *ast.FuncDecl) {
	obj, ok := e.info.Defs[fd.Name].(*types.Func)
	if !ok {
		return
	}

	sym, ok := symid.For(obj)
	if !ok {
		return
	}

	sig, ok := obj.Type().(*types.Signature)
	if !ok {
		return
	}

	e.observeAnnotations(sym, fd, sig)
	if fd.Body != nil {
		e.observeBody(sym, fd, sig)
	}
}

// Records aggregates everything observed so far into one record per
// symbol, in first-seen order.
func (e *Engine) Records() []inference.Record {
	out := make([]inference.Record, 0, len(e.order))
	for _, sym := range e.order {
		rec := inference.Aggregate(sym, e.perSym[sym])
		if len(rec.Slots) == 0 {
			continue
		}

		out = append(out, rec)
	}

	return out
}

// --- Annotation evidence --------------------------------------------------------------------------------------------

func (e *Engine) observeAnnotations(sym string, fd *ast.FuncDecl, sig *types.Signature) {
	if res := sig.Results(); res != nil && res.Len() > 0 {
		e.annotationAt(sym, nullness.SlotReturn, res.At(0).Type(), resultTypePos(fd))
	}

	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		e.annotationAt(sym, nullness.Param(i), params.At(i).Type(), paramTypePos(fd, i))
	}
}

// annotationAt records direct-annotation evidence when the slot's
// outermost pointer level carries an explicit marker.
func (e *Engine) annotationAt(sym string, slot nullness.Slot, t types.Type, pos token.Pos) {
	if !isPointer(t) {
		// Not a pointer position, no slot exists here. Annotations buried
		// deeper in the type (a slice element, say) belong to no slot.
		return
	}

	anns := sugar.AnnotationsFromType(t, e.markers)
	if len(anns) == 0 {
		return
	}

	ev, ok := inference.Annotation(anns[0], e.locOf(pos))
	if !ok {
		return
	}

	e.add(sym, slot, ev)
}

// --- Usage evidence -------------------------------------------------------------------------------------------------

func (e *Engine) observeBody(sym string, fd *ast.FuncDecl, sig *types.Signature) {
	paramSlot := map[*types.Var]nullness.Slot{}
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		if !isPointer(p.Type()) {
			continue
		}
		paramSlot[p] = nullness.Param(i)
	}

	guards := e.collectGuards(fd.Body, paramSlot)

	retPointer := false
	if res := sig.Results(); res != nil && res.Len() > 0 {
		retPointer = isPointer(res.At(0).Type())
	}

	ast.Inspect(fd.Body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			// Closures have their own control flow; stay out.
			return false

		case *ast.StarExpr:
			e.observeDeref(sym, n.X, n.Pos(), paramSlot, guards)

		case *ast.SelectorExpr:
			if sel, ok := e.info.Selections[n]; ok && sel.Kind() == types.FieldVal {
				e.observeDeref(sym, n.X, n.Pos(), paramSlot, guards)
			}

		case *ast.ReturnStmt:
			if retPointer {
				e.observeReturn(sym, n)
			}

		case *ast.CallExpr:
			e.observeCall(n)
		}

		return true
	})
}

// observeDeref records an unchecked-dereference observation when x is a
// pointer parameter dereferenced outside every guarded region.
func (e *Engine) observeDeref(
	sym string,
	x ast.Expr,
	pos token.Pos,
	slots map[*types.Var]nullness.Slot,
	guards *Guards,
) {
	ident, ok := x.(*ast.Ident)
	if !ok {
		return
	}

	v, ok := e.info.Uses[ident].(*types.Var)
	if !ok {
		return
	}

	slot, ok := slots[v]
	if !ok {
		return
	}

	if guards.Guarded(v, pos) {
		return
	}

	e.add(sym, slot, inference.Observed(evkind.UncheckedDereference, e.locOf(pos)))
}

func (e *Engine) observeReturn(sym string, ret *ast.ReturnStmt) {
	if len(ret.Results) == 0 {
		// Naked return, nothing to see.
		return
	}

	res := ret.Results[0]
	switch {
	case e.isNil(res):
		e.add(sym, nullness.SlotReturn, inference.Observed(evkind.NilReturn, e.locOf(res.Pos())))
	case isAddressOf(res), e.isBuiltinNew(res):
		e.add(sym, nullness.SlotReturn, inference.Observed(evkind.AddressOfReturn, e.locOf(res.Pos())))
	}
}

// observeCall attributes nil arguments to the callee's parameter slots.
// Only same-unit callees are reachable: this engine cannot see all call
// sites of a symbol across a program and does not try to.
func (e *Engine) observeCall(call *ast.CallExpr) {
	fn, ok := typeutil.Callee(e.info, call).(*types.Func)
	if !ok {
		return
	}

	if fn.Pkg() != e.pkg {
		return
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return
	}

	params := sig.Params()
	for i, arg := range call.Args {
		if i >= params.Len() {
			break
		}
		if sig.Variadic() && i >= params.Len()-1 {
			// Variadic tail arguments are slice elements, not the
			// parameter itself.
			break
		}

		if !e.isNil(arg) {
			continue
		}
		if !isPointer(params.At(i).Type()) {
			continue
		}

		callee, ok := symid.For(fn)
		if !ok {
			return
		}

		e.add(callee, nullness.Param(i), inference.Observed(evkind.NilArgument, e.locOf(arg.Pos())))
	}
}

// collectGuards finds `if p != nil { ... }` regions (and the else branch
// of `if p == nil`) for the tracked pointer parameters.
func (e *Engine) collectGuards(body *ast.BlockStmt, slots map[*types.Var]nullness.Slot) *Guards {
	guards := NewGuards()

	ast.Inspect(body, func(n ast.Node) bool {
		ifs, ok := n.(*ast.IfStmt)
		if !ok {
			return true
		}

		bin, ok := ifs.Cond.(*ast.BinaryExpr)
		if !ok {
			return true
		}

		v := e.nilCheckedVar(bin, slots)
		if v == nil {
			return true
		}

		switch bin.Op {
		case token.NEQ:
			guards.Add(v, ifs.Body.Pos(), ifs.Body.End())
		case token.EQL:
			if ifs.Else != nil {
				guards.Add(v, ifs.Else.Pos(), ifs.Else.End())
			}
		}

		return true
	})

	return guards
}

// nilCheckedVar returns the tracked pointer parameter compared against
// nil in bin, or nil when bin is not such a comparison.
func (e *Engine) nilCheckedVar(bin *ast.BinaryExpr, slots map[*types.Var]nullness.Slot) *types.Var {
	if bin.Op != token.NEQ && bin.Op != token.EQL {
		return nil
	}

	x, y := bin.X, bin.Y
	if e.isNil(x) {
		x, y = y, x
	}
	if !e.isNil(y) {
		return nil
	}

	ident, ok := x.(*ast.Ident)
	if !ok {
		return nil
	}

	v, ok := e.info.Uses[ident].(*types.Var)
	if !ok {
		return nil
	}

	if _, ok := slots[v]; !ok {
		return nil
	}

	return v
}

// --- Small helpers --------------------------------------------------------------------------------------------------

// add records one evidence item, keeping at most one item per built-in
// kind per slot.
func (e *Engine) add(sym string, slot nullness.Slot, ev inference.Evidence) {
	key := slotKey{sym: sym, slot: slot, kind: ev.Kind}
	if ev.Kind != evkind.Other && e.seen[key] {
		return
	}
	e.seen[key] = true

	slots, ok := e.perSym[sym]
	if !ok {
		slots = map[nullness.Slot][]inference.Evidence{}
		e.perSym[sym] = slots
		e.order = append(e.order, sym)
	}

	slots[slot] = append(slots[slot], ev)
}

func (e *Engine) isNil(expr ast.Expr) bool {
	tv, ok := e.info.Types[expr]
	return ok && tv.IsNil()
}

func (e *Engine) isBuiltinNew(expr ast.Expr) bool {
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		return false
	}

	ident, ok := call.Fun.(*ast.Ident)
	if !ok {
		return false
	}

	b, ok := e.info.Uses[ident].(*types.Builtin)
	return ok && b.Name() == "new"
}

func (e *Engine) locOf(pos token.Pos) string {
	if !pos.IsValid() {
		return ""
	}

	return e.fset.Position(pos).String()
}

func isAddressOf(expr ast.Expr) bool {
	ue, ok := expr.(*ast.UnaryExpr)
	return ok && ue.Op == token.AND
}

func isPointer(t types.Type) bool {
	_, ok := types.Unalias(t).(*types.Pointer)
	return ok
}

// resultTypePos locates the first result's type expression.
func resultTypePos(fd *ast.FuncDecl) token.Pos {
	if fd.Type.Results == nil || len(fd.Type.Results.List) == 0 {
		return token.NoPos
	}

	return fd.Type.Results.List[0].Type.Pos()
}

// paramTypePos locates the i-th parameter's type expression, counting
// through grouped parameter fields.
func paramTypePos(fd *ast.FuncDecl, i int) token.Pos {
	if fd.Type.Params == nil {
		return token.NoPos
	}

	idx := 0
	for _, field := range fd.Type.Params.List {
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		if i < idx+n {
			return field.Type.Pos()
		}
		idx += n
	}

	return token.NoPos
}
