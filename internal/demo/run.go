package demo

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/rshade/virtuallist/internal/config"
)

// Run starts the interactive demo and blocks until the user quits or ctx is
// canceled.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	source := NewSource(cfg.Demo.InitialItems, cfg.Demo.PageSize, cfg.Demo.MaxItems, cfg.Demo.Latency())
	m := NewModel(ctx, source, cfg.List, logger)
	defer m.List().Unmount()

	logger.Info().
		Int("items", source.Len()).
		Int("columns", cfg.List.Columns).
		Msg("starting demo")

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	logger.Info().Int("items", source.Len()).Int("fetches", source.Fetches()).Msg("demo finished")
	return nil
}

// RenderFrame writes a single frame of the demo at the given scroll offset,
// for terminals that cannot run the interactive program. Only the initial
// items are shown and no page is fetched. Styling is removed when plain is set.
func RenderFrame(w io.Writer, cfg *config.Config, width, offset int, plain bool) error {
	source := NewSource(cfg.Demo.InitialItems, cfg.Demo.PageSize, cfg.Demo.MaxItems, 0)
	listCfg := cfg.List
	if listCfg.ViewportHeight <= 0 {
		listCfg.ViewportHeight = defaultFrameHeight
	}
	m := newModel(context.Background(), source, listCfg, zerolog.Nop(), false)
	m.Init()
	defer m.List().Unmount()

	m.List().SetSize(width, listCfg.ViewportHeight)
	m.List().ScrollTo(offset)

	frame := m.View()
	if plain {
		frame = ansi.Strip(frame)
	}
	if _, err := fmt.Fprintln(w, frame); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// defaultFrameHeight is used by RenderFrame when the config asks to fill the terminal.
const defaultFrameHeight = 20
