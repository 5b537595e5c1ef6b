package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/forcelayout/pkg/io"
)

func sampleLayout() *io.Layout {
	return &io.Layout{
		Dimensions: 2,
		Nodes: []io.PlacedNode{
			{ID: "a", Label: "alpha", Position: io.Point{X: 1, Y: -2}},
			{ID: "b", Position: io.Point{X: 0.5, Y: 0}, Pinned: true},
		},
		Edges: []io.PlacedEdge{
			{Source: "a", Target: "b", Directed: true},
			{Source: "b", Target: "a"},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleLayout(), Options{Scale: 10, DirectedArrows: true})

	for _, want := range []string{
		"digraph G {",
		"inputscale=72;",
		`"a" [label="alpha", pos="10.00,-20.00!"];`,
		`"b" [label="b", pos="5.00,0.00!", penwidth=2];`,
		`"a" -> "b";`,
		`"b" -> "a" [dir=none];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTWithoutArrows(t *testing.T) {
	dot := ToDOT(sampleLayout(), Options{})

	if strings.Contains(dot, `"a" -> "b";`) {
		t.Errorf("directed edge should have no arrow when DirectedArrows is false:\n%s", dot)
	}
	// Zero scale falls back to DefaultScale.
	if !strings.Contains(dot, `pos="20.00,-40.00!"`) {
		t.Errorf("default scale not applied:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites header",
			in:   `<svg width="10pt" viewBox="0.00 0.00 120.40 80.00" xmlns="x"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 120.40 80.00" width="120" height="80"><g/></svg>`,
		},
		{
			name: "no viewBox",
			in:   `<svg><g/></svg>`,
			want: `<svg><g/></svg>`,
		},
		{
			name: "zero size",
			in:   `<svg viewBox="0 0 0 10"></svg>`,
			want: `<svg viewBox="0 0 0 10"></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", got, tt.want)
			}
		})
	}
}
