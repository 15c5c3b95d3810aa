package window

import "math"

// cellEpsilon absorbs float error when converting percentages back to cells.
const cellEpsilon = 1e-9

// Position places one materialized item inside the scrollable content.
type Position struct {
	Index int
	// Top is the offset of the item from the top of the content.
	Top int
	// LeftPercent is the horizontal offset as a percentage of container width.
	LeftPercent float64
	// WidthPercent is the column width as a percentage of container width.
	// The rendered width is this minus GapAllowance.
	WidthPercent float64
	GapAllowance int
	MinHeight    int
}

// Cells resolves the percentage placement to a column offset and width within
// a container of containerWidth cells. The width runs to the next column's
// left edge less the gap, so every column is separated by exactly the gap.
// The width never goes negative.
func (p Position) Cells(containerWidth int) (x, width int) {
	if containerWidth <= 0 {
		return 0, 0
	}
	w := float64(containerWidth)
	x = int(math.Floor(p.LeftPercent*w/percentWhole + cellEpsilon))
	next := int(math.Floor((p.LeftPercent+p.WidthPercent)*w/percentWhole + cellEpsilon))
	width = next - x - p.GapAllowance
	if width < 0 {
		width = 0
	}
	if x+width > containerWidth {
		width = containerWidth - x
	}
	return x, width
}

// PositionOf computes the absolute placement of the item at index.
func PositionOf(p Params, index int) Position {
	ipr := ItemsPerRow(p.Columns)
	columnPercent := percentWhole / float64(ipr)
	return Position{
		Index:        index,
		Top:          (index / ipr) * RowHeight(p),
		LeftPercent:  float64(index%ipr) * columnPercent,
		WidthPercent: columnPercent,
		GapAllowance: p.Gap,
		MinHeight:    p.ItemHeight,
	}
}

// Layout is the result of one render: the content height to give the inner
// scrollable element and the items to materialize, in ascending index order.
type Layout struct {
	ContainerHeight int
	Range           Range
	Items           []Position
}

// Compute produces the layout for p at scrollOffset.
func Compute(p Params, scrollOffset int) Layout {
	r := VisibleRange(p, scrollOffset)
	layout := Layout{
		ContainerHeight: TotalHeight(p),
		Range:           r,
	}
	if r.Empty() {
		return layout
	}
	layout.Items = make([]Position, 0, r.Len())
	for i := r.Start; i <= r.End; i++ {
		layout.Items = append(layout.Items, PositionOf(p, i))
	}
	return layout
}

// ShouldLoadMore reports whether a scroll to offset, showing visibleExtent
// units, has come within LoadMoreThreshold of totalHeight. It is always false
// while loading.
func ShouldLoadMore(offset, visibleExtent, totalHeight int, loading bool) bool {
	if loading {
		return false
	}
	return offset+visibleExtent >= totalHeight-LoadMoreThreshold
}
