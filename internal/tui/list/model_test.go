package list_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/virtuallist/internal/tui/list"
	"github.com/rshade/virtuallist/internal/window"
)

type loadMoreMsg struct{}

// counter records load-more invocations and returns a command that yields loadMoreMsg.
type counter struct {
	calls int
}

func (c *counter) loadMore() tea.Cmd {
	c.calls++
	return func() tea.Msg { return loadMoreMsg{} }
}

func noopRender(int, list.Slot) string { return "" }

// collectMsgs runs cmd and flattens any batch it returns.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collectMsgs(c)...)
	}
	return out
}

// newGrid builds the 200-item, 4-column list used across these tests.
func newGrid(t *testing.T, opts ...list.Option) *list.Model {
	t.Helper()
	base := []list.Option{list.WithGap(10), list.WithColumns(4)}
	m := list.New(200, 500, 100, noopRender, append(base, opts...)...)
	m.Init()
	return m
}

// TestModel_NewModel tests initialization.
func TestModel_NewModel(t *testing.T) {
	m := list.New(5, 20, 1, noopRender)

	assert.Equal(t, 5, m.ItemCount())
	assert.Equal(t, 20, m.Height())
	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 0, m.Offset())
	assert.False(t, m.Loading())
	assert.False(t, m.Mounted())
	assert.Equal(t, window.Params{ItemCount: 5, ViewportHeight: 20, ItemHeight: 1, Columns: 1}, m.Params())
}

// TestModel_GridAtTop covers a 4-column grid before any scrolling.
func TestModel_GridAtTop(t *testing.T) {
	m := newGrid(t)

	assert.Equal(t, 5500, m.TotalHeight())
	assert.Equal(t, window.Range{Start: 0, End: 19}, m.VisibleRange())
	assert.Equal(t, 5500, m.Surface().ContentHeight())
}

// TestModel_ScrollMsg covers host-reported scroll positions.
func TestModel_ScrollMsg(t *testing.T) {
	m := newGrid(t)

	_, _ = m.Update(list.ScrollMsg{Offset: 1000})
	assert.Equal(t, 1000, m.Offset())
	assert.Equal(t, 36, m.VisibleRange().Start)

	layout := m.Layout()
	require.NotEmpty(t, layout.Items)
	assert.Equal(t, 36, layout.Items[0].Index)
	assert.Equal(t, 990, layout.Items[0].Top)

	// The surface clamps to the last reachable offset.
	_, _ = m.Update(list.ScrollMsg{Offset: 99999})
	assert.Equal(t, 5000, m.Offset())
}

// TestModel_LoadMoreSuppressedWhileLoading covers the loading gate.
func TestModel_LoadMoreSuppressedWhileLoading(t *testing.T) {
	var c counter
	m := newGrid(t, list.WithLoadMore(c.loadMore), list.WithLoading(true))

	_, cmd := m.Update(list.ScrollMsg{Offset: 5000})

	assert.Equal(t, 0, c.calls)
	assert.Equal(t, 5000, m.Offset())
	assert.Nil(t, cmd)
}

// TestModel_LoadMoreOncePerScrollEvent covers firing near the bottom.
func TestModel_LoadMoreOncePerScrollEvent(t *testing.T) {
	var c counter
	m := newGrid(t, list.WithLoadMore(c.loadMore))

	_, cmd := m.Update(list.ScrollMsg{Offset: 100})
	assert.Equal(t, 0, c.calls, "far from the bottom")
	assert.Nil(t, cmd)

	_, cmd = m.Update(list.ScrollMsg{Offset: 4950})
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, []tea.Msg{loadMoreMsg{}}, collectMsgs(cmd))

	_, _ = m.Update(list.ScrollMsg{Offset: 4960})
	assert.Equal(t, 2, c.calls, "every qualifying scroll event fires")

	// Same position again is not a scroll event.
	_, _ = m.Update(list.ScrollMsg{Offset: 4960})
	assert.Equal(t, 2, c.calls)
}

// TestModel_LoadMoreResumesAfterLoading covers clearing the loading flag.
func TestModel_LoadMoreResumesAfterLoading(t *testing.T) {
	var c counter
	m := newGrid(t, list.WithLoadMore(c.loadMore))

	_, cmd := m.Update(list.LoadingMsg{Loading: true})
	assert.NotNil(t, cmd, "spinner starts ticking")
	assert.True(t, m.Loading())

	_, _ = m.Update(list.ScrollMsg{Offset: 5000})
	assert.Equal(t, 0, c.calls)

	_, _ = m.Update(list.ItemCountMsg{Count: 300})
	_, _ = m.Update(list.LoadingMsg{Loading: false})
	assert.Equal(t, 8250, m.TotalHeight())

	_, _ = m.Update(list.ScrollMsg{Offset: 7700})
	assert.Equal(t, 1, c.calls)
}

// TestModel_DefaultLoadMoreIsNoop covers a list without a continuation.
func TestModel_DefaultLoadMoreIsNoop(t *testing.T) {
	m := newGrid(t, list.WithLoadMore(nil))

	assert.NotPanics(t, func() {
		_, cmd := m.Update(list.ScrollMsg{Offset: 5000})
		assert.Nil(t, cmd)
	})
}

// TestModel_MountLifecycle covers attaching and detaching the scroll handler.
func TestModel_MountLifecycle(t *testing.T) {
	var c counter
	m := list.New(200, 500, 100, noopRender, list.WithGap(10), list.WithColumns(4), list.WithLoadMore(c.loadMore))

	// Detaching before attaching is a no-op.
	assert.NotPanics(t, m.Unmount)
	assert.Equal(t, 0, m.Surface().Listeners())

	m.Init()
	m.Mount()
	assert.True(t, m.Mounted())
	assert.Equal(t, 1, m.Surface().Listeners())

	m.Unmount()
	m.Unmount()
	assert.False(t, m.Mounted())
	assert.Equal(t, 0, m.Surface().Listeners())

	// Scrolls while unmounted are not observed.
	_, _ = m.Update(list.ScrollMsg{Offset: 5000})
	assert.Equal(t, 0, m.Offset())
	assert.Equal(t, 0, c.calls)

	// Remounting picks up the surface position.
	m.Mount()
	assert.Equal(t, 5000, m.Offset())
}

// TestModel_KeyNavigation covers keyboard scrolling.
func TestModel_KeyNavigation(t *testing.T) {
	m := list.New(100, 10, 2, noopRender, list.WithGap(1))
	m.Init()
	// 100 rows of 3 → total 300, max offset 290.

	tests := []struct {
		name   string
		key    tea.KeyMsg
		start  int
		expect int
	}{
		{name: "down scrolls one line", key: tea.KeyMsg{Type: tea.KeyDown}, start: 0, expect: 1},
		{name: "j scrolls one line", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, start: 3, expect: 4},
		{name: "up scrolls back one line", key: tea.KeyMsg{Type: tea.KeyUp}, start: 6, expect: 5},
		{name: "down at bottom stays", key: tea.KeyMsg{Type: tea.KeyDown}, start: 290, expect: 290},
		{name: "k at top stays", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, start: 0, expect: 0},
		{name: "page down", key: tea.KeyMsg{Type: tea.KeyPgDown}, start: 0, expect: 10},
		{name: "page up caps at top", key: tea.KeyMsg{Type: tea.KeyPgUp}, start: 5, expect: 0},
		{name: "end goes to bottom", key: tea.KeyMsg{Type: tea.KeyEnd}, start: 0, expect: 290},
		{name: "home goes to top", key: tea.KeyMsg{Type: tea.KeyHome}, start: 100, expect: 0},
		{name: "page down caps at bottom", key: tea.KeyMsg{Type: tea.KeyPgDown}, start: 285, expect: 290},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.ScrollTo(tt.start)
			_, _ = m.Update(tt.key)
			assert.Equal(t, tt.expect, m.Offset())
		})
	}
}

// TestModel_MouseWheel covers wheel scrolling.
func TestModel_MouseWheel(t *testing.T) {
	m := list.New(100, 10, 1, noopRender)
	m.Init()

	_, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 3, m.Offset())

	_, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 3, m.Offset())

	_, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 0, m.Offset())
}

// TestModel_WindowSize covers resize handling.
func TestModel_WindowSize(t *testing.T) {
	fixed := list.New(100, 10, 1, noopRender)
	fixed.Init()
	_, _ = fixed.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, fixed.Width())
	assert.Equal(t, 10, fixed.Height())

	auto := list.New(100, 10, 1, noopRender, list.WithAutoHeight(2))
	auto.Init()
	_, _ = auto.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	assert.Equal(t, 60, auto.Width())
	assert.Equal(t, 38, auto.Height())
	assert.Equal(t, 38, auto.Surface().ViewHeight())
}

// TestModel_ShrinkingViewportReclampsAndFires covers view height changes.
func TestModel_ShrinkingViewportReclampsAndFires(t *testing.T) {
	var c counter
	m := list.New(20, 10, 1, noopRender, list.WithLoadMore(c.loadMore))
	m.Init()
	m.ScrollTo(10)
	require.Equal(t, 10, m.Offset())
	c.calls = 0

	// A taller view moves the offset back, which is a scroll event.
	m.SetViewportHeight(15)
	assert.Equal(t, 5, m.Offset())
	assert.Equal(t, 1, c.calls)
}

// TestModel_EmptyList covers a list with no items.
func TestModel_EmptyList(t *testing.T) {
	m := list.New(0, 10, 1, noopRender, list.WithColumns(3))
	m.Init()

	_, _ = m.Update(list.ScrollMsg{Offset: 50})
	assert.Equal(t, 0, m.TotalHeight())
	assert.True(t, m.VisibleRange().Empty())
	assert.Empty(t, m.Layout().Items)
}
