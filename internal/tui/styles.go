package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("214")
	ColorCellBG    = lipgloss.Color("238")
	ColorOverlayBG = lipgloss.Color("236")
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are immutable values shared across views.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	// CellStyle frames one grid item.
	CellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorLabel).
			Background(ColorCellBG).
			Foreground(ColorValue)

	// OverlayStyle is used for the loading indicator.
	OverlayStyle = lipgloss.NewStyle().
			Background(ColorOverlayBG).
			Foreground(ColorValue).
			Padding(0, 1)

	ScrollbarTrackStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ScrollbarThumbStyle = lipgloss.NewStyle().Foreground(ColorHighlight)
)
