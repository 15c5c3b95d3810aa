package window

// geometryKey holds the inputs Geometry depends on.
type geometryKey struct {
	itemCount  int
	itemHeight int
	gap        int
	columns    int
}

type layoutKey struct {
	params Params
	offset int
}

// Layouter caches derived values and recomputes them only when their inputs
// change. The zero value is ready to use. It is not safe for concurrent use;
// a widget owns one and calls it from its update loop.
type Layouter struct {
	geometry    Geometry
	geometryKey geometryKey
	hasGeometry bool

	layout    Layout
	layoutKey layoutKey
	hasLayout bool

	// computes counts real recomputations, for tests.
	computes int
}

// Geometry returns the scroll-independent geometry for p.
func (l *Layouter) Geometry(p Params) Geometry {
	key := geometryKey{
		itemCount:  p.ItemCount,
		itemHeight: p.ItemHeight,
		gap:        p.Gap,
		columns:    ItemsPerRow(p.Columns),
	}
	if l.hasGeometry && l.geometryKey == key {
		return l.geometry
	}
	l.geometry = Derive(p)
	l.geometryKey = key
	l.hasGeometry = true
	return l.geometry
}

// Layout returns the layout for p at scrollOffset. The returned Items slice is
// shared with the cache and must not be modified.
func (l *Layouter) Layout(p Params, scrollOffset int) Layout {
	key := layoutKey{params: p, offset: scrollOffset}
	if l.hasLayout && l.layoutKey == key {
		return l.layout
	}
	l.layout = Compute(p, scrollOffset)
	l.layoutKey = key
	l.hasLayout = true
	l.computes++
	return l.layout
}
