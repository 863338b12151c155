package observe

import (
	"go/token"
	"go/types"
	"testing"
)

func TestGuardsContainmentPattern(t *testing.T) {
	p := types.NewVar(token.NoPos, nil, "p", types.Typ[types.Int])
	q := types.NewVar(token.NoPos, nil, "q", types.Typ[types.Int])

	g := NewGuards()

	if g.Guarded(p, 10) {
		t.Fatal("nothing is guarded in an empty collection")
	}

	g.Add(p, 0, 200)
	g.Add(q, 10, 90)
	g.Add(p, 20, 30)
	g.Add(q, 110, 190)

	type test struct {
		name string
		v    *types.Var
		pos  token.Pos
		want bool
	}

	tests := []test{
		{name: "p at ground", v: p, pos: 5, want: true},
		{name: "p inside q region", v: p, pos: 50, want: true},
		{name: "q inside own region", v: q, pos: 50, want: true},
		{name: "q outside own regions", v: q, pos: 95, want: false},
		{name: "q in second region", v: q, pos: 150, want: true},
		{name: "p at right edge", v: p, pos: 200, want: true},
		{name: "anything on the left", v: p, pos: -1, want: false},
		{name: "anything on the right", v: q, pos: 201, want: false},
		{name: "nested p region", v: p, pos: 25, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Guarded(tt.v, tt.pos); got != tt.want {
				t.Fatalf("Guarded(%s, %d) = %v, want %v", tt.v.Name(), tt.pos, got, tt.want)
			}
		})
	}
}

func TestGuardsEqualSpans(t *testing.T) {
	p := types.NewVar(token.NoPos, nil, "p", types.Typ[types.Int])
	q := types.NewVar(token.NoPos, nil, "q", types.Typ[types.Int])

	// `if p != nil && q != nil` style: both vars guard the same region.
	g := NewGuards()
	g.Add(p, 10, 90)
	g.Add(q, 10, 90)

	if !g.Guarded(p, 50) {
		t.Error("p must be guarded inside the shared region")
	}
	if !g.Guarded(q, 50) {
		t.Error("q must be guarded inside the shared region")
	}
	if g.Guarded(p, 95) {
		t.Error("p must not be guarded outside the shared region")
	}
}
