package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayouter_RecomputesOnlyOnInputChange(t *testing.T) {
	var l Layouter
	p := Params{ItemCount: 200, ViewportHeight: 500, ItemHeight: 100, Gap: 10, Columns: 4}

	first := l.Layout(p, 0)
	second := l.Layout(p, 0)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, l.computes)

	scrolled := l.Layout(p, 1000)
	assert.Equal(t, 2, l.computes)
	assert.Equal(t, Compute(p, 1000), scrolled)

	p.ItemCount = 300
	grown := l.Layout(p, 1000)
	assert.Equal(t, 3, l.computes)
	assert.Equal(t, 8250, grown.ContainerHeight)
}

func TestLayouter_GeometryCache(t *testing.T) {
	var l Layouter
	p := Params{ItemCount: 10, ViewportHeight: 4, ItemHeight: 2, Columns: 1}

	assert.Equal(t, Geometry{ItemsPerRow: 1, RowHeight: 2, TotalHeight: 20}, l.Geometry(p))

	// Viewport height does not affect geometry.
	p.ViewportHeight = 8
	assert.Equal(t, Geometry{ItemsPerRow: 1, RowHeight: 2, TotalHeight: 20}, l.Geometry(p))

	p.Columns = 3
	assert.Equal(t, Geometry{ItemsPerRow: 3, RowHeight: 2, TotalHeight: 8}, l.Geometry(p))
}
