package list

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/virtuallist/internal/tui"
)

// defaultLoadingText is shown next to the spinner while loading.
const defaultLoadingText = "Fetching more data..."

// Option configures a Model.
type Option func(*Model)

// WithColumns sets the number of items per row. Values <= 1 mean a plain list.
func WithColumns(columns int) Option {
	return func(m *Model) { m.params.Columns = columns }
}

// WithGap sets the number of blank rows between item rows. The same amount of
// columns is taken off each item's width.
func WithGap(gap int) Option {
	return func(m *Model) { m.params.Gap = gap }
}

// WithLoadMore sets the continuation run when scrolling nears the bottom.
// The returned command, if any, is handed back to Bubble Tea.
func WithLoadMore(fn func() tea.Cmd) Option {
	return func(m *Model) {
		if fn != nil {
			m.loadMore = fn
		}
	}
}

// WithLoading sets the initial loading flag.
func WithLoading(loading bool) Option {
	return func(m *Model) { m.loading = loading }
}

// WithLoadingText replaces the loading indicator text.
func WithLoadingText(text string) Option {
	return func(m *Model) { m.loadingText = text }
}

// WithScrollbar reserves the rightmost column for a scrollbar.
func WithScrollbar(show bool) Option {
	return func(m *Model) { m.showScrollbar = show }
}

// WithAutoHeight makes the viewport follow the window height minus reserved rows.
func WithAutoHeight(reserved int) Option {
	return func(m *Model) {
		m.autoHeight = true
		m.reservedRows = max(reserved, 0)
	}
}

// WithWidth sets the initial width in columns.
func WithWidth(width int) Option {
	return func(m *Model) { m.width = width }
}

// WithKeyMap replaces the navigation bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// WithLogger sets the logger used for lifecycle and load-more events.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithStyles replaces the widget styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) { m.styles = styles }
}

// Styles controls the widget chrome. Item content is styled by the RenderFunc.
type Styles struct {
	Loading        lipgloss.Style
	ScrollbarTrack lipgloss.Style
	ScrollbarThumb lipgloss.Style
	TrackChar      string
	ThumbChar      string
}

// DefaultStyles returns the shared virtuallist styles.
func DefaultStyles() Styles {
	return Styles{
		Loading:        tui.OverlayStyle,
		ScrollbarTrack: tui.ScrollbarTrackStyle,
		ScrollbarThumb: tui.ScrollbarThumbStyle,
		TrackChar:      "│",
		ThumbChar:      "┃",
	}
}
