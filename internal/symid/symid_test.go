package symid

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

func checkSource(t *testing.T, src string) (*types.Package, *types.Info) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, 0)
	if err != nil {
		t.Fatalf("parse: %s", err)
	}

	info := &types.Info{Defs: map[*ast.Ident]types.Object{}}
	var conf types.Config
	pkg, err := conf.Check("p", fset, []*ast.File{file}, info)
	if err != nil {
		t.Fatalf("type check: %s", err)
	}

	return pkg, info
}

func TestForPackageLevelFunctions(t *testing.T) {
	pkg, _ := checkSource(t, `package p

func Exported() {}

func helper() {}
`)

	tests := []struct {
		name string
		want string
	}{
		{name: "Exported", want: "p#Exported"},
		{name: "helper", want: "p#helper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := pkg.Scope().Lookup(tt.name)
			got, ok := For(obj)
			if !ok {
				t.Fatalf("no identifier for %s", tt.name)
			}
			if got != tt.want {
				t.Errorf("For(%s) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestForSkipsFunctionScopedObjects(t *testing.T) {
	_, info := checkSource(t, `package p

func helper() {
	x := 1
	_ = x
}
`)

	var local types.Object
	for ident, obj := range info.Defs {
		if ident.Name == "x" {
			local = obj
		}
	}
	if local == nil {
		t.Fatal("no definition collected for the local variable")
	}

	if id, ok := For(local); ok {
		t.Errorf("function-scoped object must have no identifier, got %q", id)
	}
}

func TestForNilAndUniverse(t *testing.T) {
	if _, ok := For(nil); ok {
		t.Error("nil object must have no identifier")
	}

	// Universe objects have no package.
	if _, ok := For(types.Universe.Lookup("len")); ok {
		t.Error("universe object must have no identifier")
	}
}
