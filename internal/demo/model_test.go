package demo_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/virtuallist/internal/config"
	"github.com/rshade/virtuallist/internal/demo"
	"github.com/rshade/virtuallist/internal/tui/list"
)

func listConfig() config.ListConfig {
	return config.ListConfig{ViewportHeight: 12, ItemHeight: 3, Gap: 1, Columns: 4}
}

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

// step applies msg and feeds every resulting message back into the model once.
func step(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	m, cmd := m.Update(msg)
	for _, next := range collectMsgs(cmd) {
		m, _ = m.Update(next)
	}
	return m
}

func TestModel_LoadsMoreNearBottom(t *testing.T) {
	source := demo.NewSource(40, 20, 100, 0)
	m := demo.NewModel(context.Background(), source, listConfig(), zerolog.Nop())
	m.Init()
	lm := m.List()

	// 40 items in 4 columns: 10 rows of 4, total 40.
	require.Equal(t, 40, lm.TotalHeight())

	var tm tea.Model = m
	tm, cmd := tm.Update(list.ScrollMsg{Offset: 28})
	assert.True(t, lm.Loading(), "loading is set while the page is fetched")
	require.NotNil(t, cmd)

	for _, next := range collectMsgs(cmd) {
		tm, _ = tm.Update(next)
	}
	assert.False(t, lm.Loading())
	assert.Equal(t, 60, lm.ItemCount())
	assert.Equal(t, 60, source.Len())
	assert.Equal(t, 1, source.Fetches())
}

func TestModel_StopsWhenExhausted(t *testing.T) {
	source := demo.NewSource(20, 20, 40, 0)
	m := demo.NewModel(context.Background(), source, listConfig(), zerolog.Nop())
	m.Init()

	// 5 rows of 4 leave 8 rows to scroll.
	var tm tea.Model = m
	tm = step(t, tm, list.ScrollMsg{Offset: 1})
	assert.Equal(t, 40, m.List().ItemCount())
	assert.True(t, source.Exhausted())

	tm = step(t, tm, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, source.Fetches())
	assert.Contains(t, tm.View(), "all loaded")
}

func TestModel_QuitKeys(t *testing.T) {
	m := demo.NewModel(context.Background(), demo.NewSource(10, 5, 10, 0), listConfig(), zerolog.Nop())

	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModel_ViewShowsHeaderAndItems(t *testing.T) {
	source := demo.NewSource(1000, 100, 1000, 0)
	m := demo.NewModel(context.Background(), source, listConfig(), zerolog.Nop())
	m.Init()

	view := m.View()
	assert.Contains(t, view, "1,000 items")
	assert.Contains(t, view, "showing 1–12")
}

func TestRenderFrame_Plain(t *testing.T) {
	cfg := config.New()
	cfg.List = listConfig()
	cfg.Demo.InitialItems = 100
	cfg.Demo.MaxItems = 100

	var buf bytes.Buffer
	require.NoError(t, demo.RenderFrame(&buf, cfg, 60, 0, true))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, 12 list lines and the help line.
	assert.Len(t, lines, 14)
	assert.Contains(t, lines[0], "100 items")
}

func TestRenderFrame_NearBottomDoesNotFetch(t *testing.T) {
	cfg := config.New()
	// 1000 items in rows of 4 units: total 1000, max offset 980.
	require.Equal(t, 1000, cfg.Demo.InitialItems)

	var buf bytes.Buffer
	require.NoError(t, demo.RenderFrame(&buf, cfg, 80, 980, true))

	out := buf.String()
	assert.Contains(t, out, "1,000 items")
	assert.Contains(t, out, "showing 981–1,000")
	assert.NotContains(t, out, "Fetching more data")
}
