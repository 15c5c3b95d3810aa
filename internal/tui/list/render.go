package list

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/virtuallist/internal/window"
)

// View renders exactly Height() lines. Only the rows in the visible range are
// passed to the RenderFunc.
func (m *Model) View() string {
	height := m.params.ViewportHeight
	if height <= 0 {
		return ""
	}
	contentWidth := m.contentWidth()

	lines := m.windowLines(contentWidth, height)
	if m.loading {
		lines[height-1] = m.loadingLine(contentWidth)
	}
	if m.showScrollbar && m.width > 0 {
		bar := m.scrollbar(height)
		for i := range lines {
			lines[i] += bar[i]
		}
	}
	return strings.Join(lines, "\n")
}

// contentWidth is the width available to items.
func (m *Model) contentWidth() int {
	if m.showScrollbar && m.width > 0 {
		return m.width - 1
	}
	return m.width
}

// windowLines renders the materialized rows and cuts them to the viewport.
func (m *Model) windowLines(width, height int) []string {
	blank := strings.Repeat(" ", width)
	lines := make([]string, 0, height)

	layout := m.Layout()
	if !layout.Range.Empty() {
		ipr := window.ItemsPerRow(m.params.Columns)
		rowHeight := window.RowHeight(m.params)
		firstTop := layout.Items[0].Top

		block := make([]string, 0, (layout.Range.Len()/ipr+1)*max(rowHeight, 1))
		for start := 0; start < len(layout.Items); start += ipr {
			end := min(start+ipr, len(layout.Items))
			block = append(block, m.renderRow(layout.Items[start:end], width)...)
			for g := 0; g < m.params.Gap; g++ {
				block = append(block, blank)
			}
		}

		cut := m.offset - firstTop
		if cut < 0 {
			// Content starts below the top of the viewport.
			for i := 0; i < -cut && len(lines) < height; i++ {
				lines = append(lines, blank)
			}
			cut = 0
		}
		if cut < len(block) {
			for _, line := range block[cut:] {
				if len(lines) == height {
					break
				}
				lines = append(lines, line)
			}
		}
	}

	for len(lines) < height {
		lines = append(lines, blank)
	}
	return lines
}

// renderRow renders one row of items into ItemHeight lines of exactly width cells.
func (m *Model) renderRow(items []window.Position, width int) []string {
	itemHeight := max(m.params.ItemHeight, 0)
	rows := make([]strings.Builder, itemHeight)
	cursor := 0

	for _, pos := range items {
		x, w := pos.Cells(width)
		slot := Slot{Position: pos, X: x, Width: w, Height: itemHeight}
		cell := fitBlock(m.renderItem(pos.Index, slot), w, itemHeight)
		pad := max(x-cursor, 0)
		for i := range rows {
			rows[i].WriteString(strings.Repeat(" ", pad))
			rows[i].WriteString(cell[i])
		}
		cursor = x + w
	}

	out := make([]string, itemHeight)
	for i := range rows {
		out[i] = fitLine(rows[i].String(), width)
	}
	return out
}

// loadingLine renders the centered loading indicator.
func (m *Model) loadingLine(width int) string {
	indicator := m.styles.Loading.Render(m.spinner.View() + " " + m.loadingText)
	return fitLine(lipgloss.PlaceHorizontal(width, lipgloss.Center, indicator), width)
}

// scrollbar renders one cell per line. The thumb spans the visible share of
// the content.
func (m *Model) scrollbar(height int) []string {
	bar := make([]string, height)
	total := m.TotalHeight()
	track := m.styles.ScrollbarTrack.Render(m.styles.TrackChar)
	if total <= height {
		for i := range bar {
			bar[i] = track
		}
		return bar
	}

	thumbSize := max(height*height/total, 1)
	maxOffset := total - height
	thumbTop := 0
	if maxOffset > 0 {
		thumbTop = min(max(m.offset, 0), maxOffset) * (height - thumbSize) / maxOffset
	}
	thumb := m.styles.ScrollbarThumb.Render(m.styles.ThumbChar)
	for i := range bar {
		if i >= thumbTop && i < thumbTop+thumbSize {
			bar[i] = thumb
		} else {
			bar[i] = track
		}
	}
	return bar
}

// fitBlock cuts or pads s to height lines of exactly width cells.
func fitBlock(s string, width, height int) []string {
	src := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(src) {
			line = src[i]
		}
		out[i] = fitLine(line, width)
	}
	return out
}

// fitLine truncates or pads line to exactly width cells, keeping ANSI styling.
func fitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, "")
	}
	// Truncating a wide rune can leave the line one cell short.
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}
