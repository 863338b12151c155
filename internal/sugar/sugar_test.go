package sugar_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/nilfer/nilfer/internal/nullness"
	"github.com/nilfer/nilfer/internal/sugar"
)

// nullVec type checks expr (with preamble declarations in scope) and
// extracts its annotation sequence. Marker aliases named Nonnull and
// Nullable are always in scope.
func nullVec(t *testing.T, preamble, expr string) []nullness.Nullness {
	t.Helper()

	const header = "package p\n\ntype Nonnull[T any] = T\ntype Nullable[T any] = T\n\n"
	src := header + preamble + "\ntype Target = " + expr + "\n"

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, 0)
	if err != nil {
		t.Fatalf("parse %q: %s", expr, err)
	}

	var conf types.Config
	pkg, err := conf.Check("p", fset, []*ast.File{file}, nil)
	if err != nil {
		t.Fatalf("type check %q: %s", expr, err)
	}

	obj := pkg.Scope().Lookup("Target")
	if obj == nil {
		t.Fatalf("no Target declared for %q", expr)
	}

	markers := sugar.NewMarkers()
	markers.Register("p", "", "")

	return sugar.AnnotationsFromType(obj.Type(), markers)
}

func TestAnnotationsFromType(t *testing.T) {
	const (
		un  = nullness.Unspecified
		nn  = nullness.Nonnull
		nbl = nullness.Nullable
	)

	tests := []struct {
		name     string
		preamble string
		expr     string
		want     []nullness.Nullness
	}{
		{
			name: "non-pointer yields nothing",
			expr: "int",
		},
		{
			name: "bare pointer",
			expr: "*int",
			want: []nullness.Nullness{un},
		},
		{
			name: "pointer to pointer",
			expr: "**int",
			want: []nullness.Nullness{un, un},
		},
		{
			name: "both levels annotated",
			expr: "Nonnull[*Nullable[*int]]",
			want: []nullness.Nullness{nn, nbl},
		},
		{
			name:     "annotation behind plain alias",
			preamble: "type X = Nonnull[*int]",
			expr:     "X",
			want:     []nullness.Nullness{nn},
		},
		{
			name:     "outer pointer over aliased annotation keeps alignment",
			preamble: "type X = Nonnull[*int]",
			expr:     "*X",
			want:     []nullness.Nullness{un, nn},
		},
		{
			name:     "generic alias substitutes its argument",
			preamble: "type Ptr[T any] = Nullable[*T]",
			expr:     "Ptr[int]",
			want:     []nullness.Nullness{nbl},
		},
		{
			name: "nested markers keep pointer order",
			expr: "Nullable[*Nullable[*int]]",
			want: []nullness.Nullness{nbl, nbl},
		},
		{
			name: "triple nesting, outer to inner",
			expr: "Nullable[*Nullable[*Nonnull[*int]]]",
			want: []nullness.Nullness{nbl, nbl, nn},
		},
		{
			name:     "argument reused by the alias body",
			preamble: "type Pair[A, B any] struct{}\ntype Two[T any] = Pair[T, T]",
			expr:     "Two[Nullable[*int]]",
			want:     []nullness.Nullness{nbl, nbl},
		},
		{
			name:     "chained generic aliases propagate substitutions",
			preamble: "type A[T1 any] = Nullable[*T1]\ntype B[T2 any] = Nonnull[*A[T2]]",
			expr:     "B[int]",
			want:     []nullness.Nullness{nn, nbl},
		},
		{
			name:     "defined type erases its sugar",
			preamble: "type P *int",
			expr:     "P",
		},
		{
			name:     "marker over a defined type has no pointer to attach to",
			preamble: "type P *int",
			expr:     "Nonnull[P]",
		},
		{
			name:     "directly nested markers: outermost wins",
			expr:     "Nonnull[Nullable[*int]]",
			want:     []nullness.Nullness{nn},
		},
		{
			name:     "named instance descends into type arguments",
			preamble: "type Box[T any] struct{}",
			expr:     "Box[Nonnull[*int]]",
			want:     []nullness.Nullness{nn},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nullVec(t, tt.preamble, tt.expr)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(tt.want, got) {
				deepequal.SideBySide(t, "annotations", tt.want, got)
			}
		})
	}
}

// An uninstantiated generic alias still reveals the annotations of its own
// body, while its unbound type parameter contributes nothing.
func TestAnnotationsFromType_UnboundParameter(t *testing.T) {
	const src = `package p

type Nullable[T any] = T
type Ptr[T any] = Nullable[*T]
`

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, 0)
	if err != nil {
		t.Fatalf("parse: %s", err)
	}

	var conf types.Config
	pkg, err := conf.Check("p", fset, []*ast.File{file}, nil)
	if err != nil {
		t.Fatalf("type check: %s", err)
	}

	markers := sugar.NewMarkers()
	markers.Register("p", "", "")

	got := sugar.AnnotationsFromType(pkg.Scope().Lookup("Ptr").Type(), markers)
	want := []nullness.Nullness{nullness.Nullable}
	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "annotations", want, got)
	}
}
