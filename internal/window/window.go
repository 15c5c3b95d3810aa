package window

// LoadMoreThreshold is the distance from the bottom of the content at which
// scrolling starts requesting more items.
const LoadMoreThreshold = 100

// percentWhole is the full container width in percent.
const percentWhole = 100.0

// Params are the caller-supplied layout parameters for one render.
type Params struct {
	ItemCount      int
	ViewportHeight int
	ItemHeight     int
	Gap            int
	// Columns is the number of items per row. Values <= 1 mean a plain list.
	Columns int
}

// Geometry holds the values derived from Params that do not depend on scrolling.
type Geometry struct {
	ItemsPerRow int
	RowHeight   int
	TotalHeight int
}

// Range is an inclusive interval of item indices.
// A range with Start > End is empty.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range materializes no items.
func (r Range) Empty() bool {
	return r.Start > r.End
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// ItemsPerRow returns the effective column count, never less than one.
func ItemsPerRow(columns int) int {
	if columns > 1 {
		return columns
	}
	return 1
}

// RowHeight returns the height of one row including the gap below it.
func RowHeight(p Params) int {
	return p.ItemHeight + p.Gap
}

// RowCount returns the number of rows needed to hold every item.
func RowCount(p Params) int {
	if p.ItemCount <= 0 {
		return 0
	}
	return ceilDiv(p.ItemCount, ItemsPerRow(p.Columns))
}

// TotalHeight returns the scrollable content height for all items.
func TotalHeight(p Params) int {
	return RowCount(p) * RowHeight(p)
}

// Derive computes the scroll-independent geometry for p.
func Derive(p Params) Geometry {
	return Geometry{
		ItemsPerRow: ItemsPerRow(p.Columns),
		RowHeight:   RowHeight(p),
		TotalHeight: TotalHeight(p),
	}
}

// VisibleRange returns the inclusive range of items intersecting the viewport
// at scrollOffset. Whole rows are materialized, so Start is always the first
// index of a row. The range is empty when there are no items.
func VisibleRange(p Params, scrollOffset int) Range {
	if p.ItemCount <= 0 {
		return Range{Start: 0, End: -1}
	}
	ipr := ItemsPerRow(p.Columns)
	rowHeight := RowHeight(p)
	if rowHeight <= 0 {
		// Out of contract; materialize nothing rather than divide by zero.
		return Range{Start: 0, End: -1}
	}

	start := floorDiv(scrollOffset, rowHeight) * ipr
	end := ceilDiv(scrollOffset+p.ViewportHeight, rowHeight)*ipr - 1
	if end > p.ItemCount-1 {
		end = p.ItemCount - 1
	}
	return Range{Start: start, End: end}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}
