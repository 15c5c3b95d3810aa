package list

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/virtuallist/internal/scroll"
	"github.com/rshade/virtuallist/internal/tui"
	"github.com/rshade/virtuallist/internal/window"
)

// Slot is an item's position resolved to terminal cells.
type Slot struct {
	window.Position
	// X is the column offset inside the list, excluding the scrollbar.
	X int
	// Width and Height are the cell dimensions the rendered item is fitted to.
	Width  int
	Height int
}

// RenderFunc renders the item at index into slot. The result is cut or padded
// to slot.Width x slot.Height.
type RenderFunc func(index int, slot Slot) string

// ScrollMsg reports a scroll position from the host, for example after it
// restores a view. The surface clamps it to the content.
type ScrollMsg struct {
	Offset int
}

// ItemCountMsg changes the total item count.
type ItemCountMsg struct {
	Count int
}

// LoadingMsg changes the loading flag.
type LoadingMsg struct {
	Loading bool
}

// Model is a windowed list or grid. Only visible rows are rendered.
type Model struct {
	params window.Params
	width  int

	autoHeight   bool
	reservedRows int

	// offset mirrors the surface as seen by the attached scroll handler.
	offset  int
	loading bool

	renderItem RenderFunc
	loadMore   func() tea.Cmd

	surface      *scroll.Surface
	subscription *scroll.Subscription
	layouter     window.Layouter
	// pending collects commands produced by scroll handlers during one Update.
	pending []tea.Cmd

	spinner       spinner.Model
	keys          KeyMap
	styles        Styles
	showScrollbar bool
	loadingText   string

	logger zerolog.Logger
}

// New creates a list of itemCount items, each itemHeight rows tall, shown in a
// viewport of viewportHeight rows. renderItem is called for visible items only.
func New(itemCount, viewportHeight, itemHeight int, renderItem RenderFunc, opts ...Option) *Model {
	m := &Model{
		params: window.Params{
			ItemCount:      max(itemCount, 0),
			ViewportHeight: viewportHeight,
			ItemHeight:     itemHeight,
			Columns:        1,
		},
		width:       tui.DefaultWidth,
		renderItem:  renderItem,
		loadMore:    func() tea.Cmd { return nil },
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		loadingText: defaultLoadingText,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.renderItem == nil {
		m.renderItem = func(int, Slot) string { return "" }
	}
	m.spinner.Style = m.styles.Loading.UnsetPadding().UnsetBackground()

	m.surface = scroll.NewSurface(m.params.ViewportHeight)
	m.surface.SetContentHeight(window.TotalHeight(m.params))
	return m
}

// Init mounts the list and starts the spinner if loading.
func (m *Model) Init() tea.Cmd {
	m.Mount()
	if m.loading {
		return m.spinner.Tick
	}
	return nil
}

// Mount attaches the scroll handler. Calling it again while mounted does nothing.
func (m *Model) Mount() {
	if m.subscription.Attached() {
		return
	}
	m.subscription = m.surface.Subscribe(m.handleScroll)
	m.offset = m.surface.Offset()
	m.logger.Debug().Int("items", m.params.ItemCount).Msg("list mounted")
}

// Unmount detaches the scroll handler. It is safe to call any number of times,
// including before Mount.
func (m *Model) Unmount() {
	if !m.subscription.Attached() {
		return
	}
	m.subscription.Detach()
	m.logger.Debug().Msg("list unmounted")
}

// Mounted reports whether the scroll handler is attached.
func (m *Model) Mounted() bool {
	return m.subscription.Attached()
}

// handleScroll records the new offset and requests more items near the bottom.
func (m *Model) handleScroll(ev scroll.Event) {
	m.offset = ev.Offset
	total := m.TotalHeight()
	if !window.ShouldLoadMore(ev.Offset, ev.ViewHeight, total, m.loading) {
		return
	}
	m.logger.Debug().
		Int("offset", ev.Offset).
		Int("view_height", ev.ViewHeight).
		Int("total_height", total).
		Int("items", m.params.ItemCount).
		Msg("load more triggered")
	if cmd := m.loadMore(); cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// Update handles navigation, resize, scroll, item count and loading messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case ScrollMsg:
		m.surface.SetOffset(msg.Offset)
	case ItemCountMsg:
		m.SetItemCount(msg.Count)
	case LoadingMsg:
		cmds = append(cmds, m.SetLoading(msg.Loading))
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.pending...)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.surface.ScrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.surface.ScrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.surface.PageBy(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.surface.PageBy(1)
	case key.Matches(msg, m.keys.Top):
		m.surface.ScrollToStart()
	case key.Matches(msg, m.keys.Bottom):
		m.surface.ScrollToEnd()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	//nolint:exhaustive // Only wheel buttons scroll.
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.surface.ScrollBy(-wheelStep)
	case tea.MouseButtonWheelDown:
		m.surface.ScrollBy(wheelStep)
	}
}

// SetItemCount changes the number of items and resizes the content.
func (m *Model) SetItemCount(count int) {
	m.params.ItemCount = max(count, 0)
	m.surface.SetContentHeight(window.TotalHeight(m.params))
}

// SetLoading sets the loading flag. It returns the spinner tick when loading
// starts.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	was := m.loading
	m.loading = loading
	if loading && !was {
		return m.spinner.Tick
	}
	return nil
}

// SetViewportHeight changes the number of visible rows.
func (m *Model) SetViewportHeight(height int) {
	m.params.ViewportHeight = max(height, 0)
	m.surface.SetViewHeight(m.params.ViewportHeight)
}

// SetSize applies a window size. The height is used only with WithAutoHeight.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 0)
	if m.autoHeight {
		m.SetViewportHeight(height - m.reservedRows)
	}
}

// ScrollTo moves the surface to offset.
func (m *Model) ScrollTo(offset int) {
	m.surface.SetOffset(offset)
}

// Offset returns the scroll offset last delivered to the scroll handler.
func (m *Model) Offset() int {
	return m.offset
}

// Surface returns the scroll surface backing the list.
func (m *Model) Surface() *scroll.Surface {
	return m.surface
}

// Params returns the current layout parameters.
func (m *Model) Params() window.Params {
	return m.params
}

// ItemCount returns the total number of items.
func (m *Model) ItemCount() int {
	return m.params.ItemCount
}

// Loading reports whether the loading flag is set.
func (m *Model) Loading() bool {
	return m.loading
}

// Width returns the width in columns.
func (m *Model) Width() int {
	return m.width
}

// Height returns the viewport height in rows.
func (m *Model) Height() int {
	return m.params.ViewportHeight
}

// KeyMap returns the navigation bindings.
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

// TotalHeight returns the scrollable content height.
func (m *Model) TotalHeight() int {
	return m.layouter.Geometry(m.params).TotalHeight
}

// VisibleRange returns the inclusive range of materialized items.
func (m *Model) VisibleRange() window.Range {
	return m.Layout().Range
}

// Layout returns the layout for the current offset.
func (m *Model) Layout() window.Layout {
	return m.layouter.Layout(m.params, m.offset)
}
