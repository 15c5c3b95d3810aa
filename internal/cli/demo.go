package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/virtuallist/internal/config"
	"github.com/rshade/virtuallist/internal/demo"
	"github.com/rshade/virtuallist/internal/logging"
	"github.com/rshade/virtuallist/internal/tui"
)

// demoFlags holds the demo overrides. Only flags the user set are applied.
type demoFlags struct {
	columns    int
	gap        int
	itemHeight int
	height     int
	items      int
	maxItems   int
	pageSize   int
	latency    time.Duration
	scrollbar  bool
	plain      bool
	noColor    bool
	offset     int
}

// newDemoCmd creates the demo command.
func newDemoCmd(state *rootState) *cobra.Command {
	var flags demoFlags

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Scroll through a growing grid of numbered cells",
		Long: `Runs an interactive grid of numbered cells. Only the rows on screen are
rendered. Scrolling near the bottom fetches another page until the item cap
is reached.

When stdout is not a terminal a single frame is printed instead.`,
		Example: `  # Default 4-column grid
  virtuallist demo

  # Single column list with a slow backend
  virtuallist demo --columns 1 --item-height 1 --gap 0 --latency 2s

  # Print the frame at offset 120 without colors
  virtuallist demo --plain --offset 120`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := state.loaded()
			applyDemoFlags(cmd, &flags, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			log := logging.FromContext(ctx).With().Str("component", "demo").Logger()

			mode := tui.DetectOutputMode(flags.plain, flags.noColor, false)
			log.Debug().Str("mode", mode.String()).Msg("output mode detected")
			if mode != tui.OutputModeInteractive {
				width, _ := tui.TerminalSize()
				return demo.RenderFrame(cmd.OutOrStdout(), cfg, width, flags.offset, mode == tui.OutputModePlain)
			}
			return demo.Run(ctx, cfg, log)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.columns, "columns", 0, "items per row")
	f.IntVar(&flags.gap, "gap", 0, "blank rows between grid rows")
	f.IntVar(&flags.itemHeight, "item-height", 0, "rows per item")
	f.IntVar(&flags.height, "height", 0, "viewport rows (0 fills the terminal)")
	f.IntVar(&flags.items, "items", 0, "initial number of items")
	f.IntVar(&flags.maxItems, "max-items", 0, "stop fetching at this many items")
	f.IntVar(&flags.pageSize, "page-size", 0, "items added per fetch")
	f.DurationVar(&flags.latency, "latency", 0, "simulated fetch latency")
	f.BoolVar(&flags.scrollbar, "scrollbar", true, "show a scrollbar")
	f.BoolVar(&flags.plain, "plain", false, "print one unstyled frame instead of running interactively")
	f.BoolVar(&flags.noColor, "no-color", false, "disable colors")
	f.IntVar(&flags.offset, "offset", 0, "scroll offset of the printed frame")

	return cmd
}

// applyDemoFlags copies explicitly set flags over the loaded configuration.
func applyDemoFlags(cmd *cobra.Command, flags *demoFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	list := &cfg.List
	if changed("columns") {
		list.Columns = flags.columns
	}
	if changed("gap") {
		list.Gap = flags.gap
	}
	if changed("item-height") {
		list.ItemHeight = flags.itemHeight
	}
	if changed("height") {
		list.ViewportHeight = flags.height
	}
	if changed("scrollbar") {
		list.Scrollbar = flags.scrollbar
	}
	d := &cfg.Demo
	if changed("items") {
		d.InitialItems = flags.items
		if d.MaxItems < d.InitialItems {
			d.MaxItems = d.InitialItems
		}
	}
	if changed("max-items") {
		d.MaxItems = flags.maxItems
	}
	if changed("page-size") {
		d.PageSize = flags.pageSize
	}
	if changed("latency") {
		d.LatencyMS = int(flags.latency / time.Millisecond)
	}
}
