// Package window computes the geometry of a windowed (virtualized) list or grid.
//
// Everything here is pure arithmetic over the layout parameters and the current
// scroll offset. Key pieces:
//   - Total scrollable content height for a fixed-height, fixed-column layout
//   - The inclusive index range that must be materialized for a scroll offset
//   - Absolute position of every materialized item
//   - The near-bottom predicate that drives infinite loading
//
// Units are abstract: the terminal widget treats one unit as one row. The engine
// performs no validation and never clamps the scroll offset; callers own the
// contract (item height > 0, gap >= 0, viewport height > 0).
package window
