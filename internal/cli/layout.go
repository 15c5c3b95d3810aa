package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/virtuallist/internal/window"
)

// Output formats for the layout command.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// ErrInvalidLayout is returned for layout parameters that cannot be laid out.
var ErrInvalidLayout = errors.New("invalid layout parameters")

// layoutFlags holds the layout command flags.
type layoutFlags struct {
	items      int
	viewport   int
	itemHeight int
	gap        int
	columns    int
	offset     int
	width      int
	loading    bool
	output     string
}

// LayoutReport is the machine readable result of the layout command.
type LayoutReport struct {
	ItemCount      int          `json:"item_count"       yaml:"item_count"`
	ViewportHeight int          `json:"viewport_height"  yaml:"viewport_height"`
	ItemHeight     int          `json:"item_height"      yaml:"item_height"`
	Gap            int          `json:"gap"              yaml:"gap"`
	Columns        int          `json:"columns"          yaml:"columns"`
	Offset         int          `json:"offset"           yaml:"offset"`
	ItemsPerRow    int          `json:"items_per_row"    yaml:"items_per_row"`
	RowHeight      int          `json:"row_height"       yaml:"row_height"`
	TotalHeight    int          `json:"total_height"     yaml:"total_height"`
	Start          int          `json:"start"            yaml:"start"`
	End            int          `json:"end"              yaml:"end"`
	ShouldLoadMore bool         `json:"should_load_more" yaml:"should_load_more"`
	Items          []LayoutItem `json:"items"            yaml:"items"`
}

// LayoutItem is one materialized item in a LayoutReport.
type LayoutItem struct {
	Index        int     `json:"index"         yaml:"index"`
	Top          int     `json:"top"           yaml:"top"`
	LeftPercent  float64 `json:"left_percent"  yaml:"left_percent"`
	WidthPercent float64 `json:"width_percent" yaml:"width_percent"`
	X            int     `json:"x"             yaml:"x"`
	Width        int     `json:"width"         yaml:"width"`
	MinHeight    int     `json:"min_height"    yaml:"min_height"`
}

// newLayoutCmd creates the layout command.
func newLayoutCmd(state *rootState) *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the items materialized at a scroll offset",
		Long: `Computes the windowed layout for the given parameters without a terminal:
total content height, the inclusive range of visible items and the position of
each of them. Unset parameters come from the list section of the config.`,
		Example: `  # 4-column grid, 100 units tall items with a 10 unit gap
  virtuallist layout --items 1000 --viewport 500 --item-height 100 --gap 10 --columns 4

  # Near the bottom of a 200 item grid, as YAML
  virtuallist layout --items 200 --viewport 500 --item-height 100 --gap 10 --columns 4 --offset 5000 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyLayoutDefaults(cmd, &flags, state)

			params := window.Params{
				ItemCount:      flags.items,
				ViewportHeight: flags.viewport,
				ItemHeight:     flags.itemHeight,
				Gap:            flags.gap,
				Columns:        flags.columns,
			}
			if err := validateLayout(params, flags.offset); err != nil {
				return err
			}
			report := BuildLayoutReport(params, flags.offset, flags.width, flags.loading)

			logger.Debug().Ctx(cmd.Context()).
				Int("total_height", report.TotalHeight).
				Int("start", report.Start).
				Int("end", report.End).
				Msg("layout computed")

			return writeLayoutReport(cmd.OutOrStdout(), report, flags.output)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.items, "items", 0, "total number of items")
	f.IntVar(&flags.viewport, "viewport", 0, "viewport height")
	f.IntVar(&flags.itemHeight, "item-height", 0, "item height")
	f.IntVar(&flags.gap, "gap", 0, "gap between rows")
	f.IntVar(&flags.columns, "columns", 0, "items per row")
	f.IntVar(&flags.offset, "offset", 0, "scroll offset")
	f.IntVar(&flags.width, "width", 0, "container width used to resolve columns to cells (0 skips)")
	f.BoolVar(&flags.loading, "loading", false, "evaluate the load-more check as if a load were in flight")
	f.StringVarP(&flags.output, "output", "o", formatTable, "output format: table, json, yaml")

	return cmd
}

// applyLayoutDefaults fills unset flags from the configuration.
func applyLayoutDefaults(cmd *cobra.Command, flags *layoutFlags, state *rootState) {
	cfg := state.loaded()
	changed := cmd.Flags().Changed
	if !changed("items") {
		flags.items = cfg.Demo.InitialItems
	}
	if !changed("viewport") {
		flags.viewport = cfg.List.ViewportHeight
	}
	if !changed("item-height") {
		flags.itemHeight = cfg.List.ItemHeight
	}
	if !changed("gap") {
		flags.gap = cfg.List.Gap
	}
	if !changed("columns") {
		flags.columns = cfg.List.Columns
	}
}

func validateLayout(p window.Params, offset int) error {
	var errs []error
	if p.ItemCount < 0 {
		errs = append(errs, fmt.Errorf("items must be >= 0, got %d", p.ItemCount))
	}
	if p.ViewportHeight < 0 {
		errs = append(errs, fmt.Errorf("viewport must be >= 0, got %d", p.ViewportHeight))
	}
	if p.ItemHeight < 0 || p.Gap < 0 {
		errs = append(errs, fmt.Errorf("item-height and gap must be >= 0, got %d and %d", p.ItemHeight, p.Gap))
	}
	if window.RowHeight(p) <= 0 {
		errs = append(errs, errors.New("item-height + gap must be > 0"))
	}
	if offset < 0 {
		errs = append(errs, fmt.Errorf("offset must be >= 0, got %d", offset))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidLayout, errors.Join(errs...))
}

// BuildLayoutReport computes the layout for p at offset. Cell columns are
// resolved against width when it is positive.
func BuildLayoutReport(p window.Params, offset, width int, loading bool) LayoutReport {
	geo := window.Derive(p)
	layout := window.Compute(p, offset)

	report := LayoutReport{
		ItemCount:      p.ItemCount,
		ViewportHeight: p.ViewportHeight,
		ItemHeight:     p.ItemHeight,
		Gap:            p.Gap,
		Columns:        geo.ItemsPerRow,
		Offset:         offset,
		ItemsPerRow:    geo.ItemsPerRow,
		RowHeight:      geo.RowHeight,
		TotalHeight:    geo.TotalHeight,
		Start:          layout.Range.Start,
		End:            layout.Range.End,
		ShouldLoadMore: window.ShouldLoadMore(offset, p.ViewportHeight, geo.TotalHeight, loading),
		Items:          make([]LayoutItem, 0, len(layout.Items)),
	}
	for _, pos := range layout.Items {
		item := LayoutItem{
			Index:        pos.Index,
			Top:          pos.Top,
			LeftPercent:  pos.LeftPercent,
			WidthPercent: pos.WidthPercent,
			MinHeight:    pos.MinHeight,
		}
		if width > 0 {
			item.X, item.Width = pos.Cells(width)
		}
		report.Items = append(report.Items, item)
	}
	return report
}

func writeLayoutReport(w io.Writer, report LayoutReport, format string) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encoding layout: %w", err)
		}
		return nil
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encoding layout: %w", err)
		}
		return encoder.Close()
	case formatTable, "":
		return renderLayoutTable(w, report)
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
	}
}

func renderLayoutTable(w io.Writer, report LayoutReport) error {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Items:          %d\n", report.ItemCount)
	p.Fprintf(w, "Items per row:  %d\n", report.ItemsPerRow)
	p.Fprintf(w, "Row height:     %d\n", report.RowHeight)
	p.Fprintf(w, "Total height:   %d\n", report.TotalHeight)
	p.Fprintf(w, "Offset:         %d\n", report.Offset)
	if report.Start > report.End {
		fmt.Fprintln(w, "Visible:        none")
	} else {
		p.Fprintf(w, "Visible:        %d-%d (%d items)\n", report.Start, report.End, len(report.Items))
	}
	fmt.Fprintf(w, "Load more:      %t\n\n", report.ShouldLoadMore)

	if len(report.Items) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tTOP\tLEFT %\tWIDTH %\tX\tWIDTH")
	fmt.Fprintln(tw, "-----\t---\t------\t-------\t-\t-----")
	for _, item := range report.Items {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.2f\t%d\t%d\n",
			item.Index, item.Top, item.LeftPercent, item.WidthPercent, item.X, item.Width)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}
	return nil
}
