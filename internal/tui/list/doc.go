// Package list provides a windowed (virtualized) list and grid for Bubble Tea.
//
// Only the items intersecting the viewport are rendered, so View cost depends on
// the viewport height rather than the item count. Key features:
//   - Fixed-height items in one or more columns with a gap between rows
//   - Keyboard, mouse wheel and host-reported scrolling through a scroll.Surface
//   - Infinite loading: a caller continuation runs on every scroll that lands
//     within window.LoadMoreThreshold rows of the bottom, unless loading
//   - Loading indicator and optional scrollbar
//
// The model attaches its scroll handler in Mount (called by Init) and detaches
// it in Unmount. Hosts should defer Unmount once the program exits.
package list
