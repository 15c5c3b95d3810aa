package demo

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/virtuallist/internal/config"
	"github.com/rshade/virtuallist/internal/tui"
	"github.com/rshade/virtuallist/internal/tui/list"
)

// chromeRows is the number of rows used by the header and help line.
const chromeRows = 2

// cellBorder is the horizontal and vertical space taken by a cell's border.
const cellBorder = 2

// fetchedMsg reports the end of a page fetch.
type fetchedMsg struct {
	total int
	err   error
}

// fetchState is shared between the model copies Bubble Tea passes around and
// the load-more continuation held by the list.
type fetchState struct {
	fetching bool
}

// Model is the Bubble Tea model of the demo application.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model struct {
	source *Source
	list   *list.Model
	help   help.Model
	logger zerolog.Logger
	out    *message.Printer
	fetch  *fetchState

	done bool
	err  error
}

// NewModel builds the demo around source using the list settings in cfg.
func NewModel(ctx context.Context, source *Source, cfg config.ListConfig, logger zerolog.Logger) Model {
	return newModel(ctx, source, cfg, logger, true)
}

// newModel builds the demo. Without fetch the list never asks for more items.
func newModel(ctx context.Context, source *Source, cfg config.ListConfig, logger zerolog.Logger, fetch bool) Model {
	st := &fetchState{}
	var lm *list.Model

	// The list only calls this while not loading; st also guards against a
	// second scroll event arriving before the fetch result.
	loadMore := func() tea.Cmd {
		if st.fetching || source.Exhausted() {
			return nil
		}
		st.fetching = true
		logger.Debug().Int("items", source.Len()).Msg("fetching next page")
		return tea.Batch(lm.SetLoading(true), fetchNext(ctx, source))
	}

	opts := []list.Option{
		list.WithColumns(cfg.Columns),
		list.WithGap(cfg.Gap),
		list.WithScrollbar(cfg.Scrollbar),
		list.WithLogger(logger),
	}
	if fetch {
		opts = append(opts, list.WithLoadMore(loadMore))
	}
	viewport := cfg.ViewportHeight
	if viewport <= 0 {
		_, h := tui.TerminalSize()
		viewport = h - chromeRows
		opts = append(opts, list.WithAutoHeight(chromeRows))
	}
	lm = list.New(source.Len(), viewport, cfg.ItemHeight, renderCell(source), opts...)

	return Model{
		source: source,
		list:   lm,
		help:   help.New(),
		logger: logger,
		out:    message.NewPrinter(language.English),
		fetch:  st,
		done:   source.Exhausted(),
	}
}

// List returns the embedded list widget.
func (m Model) List() *list.Model {
	return m.list
}

// Init mounts the list.
func (m Model) Init() tea.Cmd {
	return m.list.Init()
}

// Update handles quit keys and fetch results and forwards everything to the list.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s := msg.String(); s == tui.KeyQuit || s == tui.KeyCtrlC || s == tui.KeyEsc {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case fetchedMsg:
		return m.handleFetched(msg)
	}

	_, cmd := m.list.Update(msg)
	return m, cmd
}

func (m Model) handleFetched(msg fetchedMsg) (tea.Model, tea.Cmd) {
	m.fetch.fetching = false
	m.list.SetItemCount(msg.total)
	switch {
	case errors.Is(msg.err, ErrExhausted):
		m.done = true
	case msg.err != nil:
		m.err = msg.err
		m.logger.Warn().Err(msg.err).Msg("fetch failed")
	default:
		m.logger.Debug().Int("total", msg.total).Msg("page loaded")
	}
	if m.source.Exhausted() {
		m.done = true
	}
	return m, m.list.SetLoading(false)
}

// View renders the header, the list and the help line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.list.KeyMap().ShortHelp()))
	return b.String()
}

func (m Model) header() string {
	r := m.list.VisibleRange()
	status := m.out.Sprintf("%d items", m.list.ItemCount())
	if !r.Empty() {
		status += m.out.Sprintf("  showing %d–%d", r.Start+1, r.End+1)
	}
	switch {
	case m.err != nil:
		status += "  " + tui.InfoStyle.Render("error: "+m.err.Error())
	case m.done:
		status += "  " + tui.InfoStyle.Render("all loaded")
	}
	title := tui.HeaderStyle.Render("virtuallist")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", tui.LabelStyle.Render(status))
}

// renderCell draws numbered cells from source.
func renderCell(source *Source) list.RenderFunc {
	return func(index int, slot list.Slot) string {
		value, ok := source.At(index)
		if !ok {
			return ""
		}
		inner := max(slot.Width-cellBorder, 0)
		label := runewidth.Truncate(strconv.Itoa(value), inner, "…")
		return tui.CellStyle.
			Width(inner).
			Height(max(slot.Height-cellBorder, 0)).
			Align(lipgloss.Center).
			Render(label)
	}
}

// fetchNext returns a command that loads the next page.
func fetchNext(ctx context.Context, source *Source) tea.Cmd {
	return func() tea.Msg {
		total, err := source.FetchNext(ctx)
		return fetchedMsg{total: total, err: err}
	}
}
