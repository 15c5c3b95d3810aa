package tui

// Key names as reported by tea.KeyMsg.String().
const (
	KeyQuit  = "q"
	KeyCtrlC = "ctrl+c"
	KeyEsc   = "esc"
)
