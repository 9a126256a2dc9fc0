// Package tui renders advisor output for the terminal.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rshade/ecoadvisor/internal/config"
)

// Color palette.
const (
	ColorHeader = lipgloss.Color("42")
	ColorLabel  = lipgloss.Color("250")
	ColorValue  = lipgloss.Color("255")
	ColorMuted  = lipgloss.Color("243")
	ColorOK     = lipgloss.Color("34")
	ColorError  = lipgloss.Color("196")
	ColorCursor = lipgloss.Color("214")
)

//nolint:gochecknoglobals // Shared style definitions.
var (
	HeaderStyle   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	CursorStyle   = lipgloss.NewStyle().Foreground(ColorCursor).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorCursor)
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInputTTY reports whether stdin is a terminal.
func IsInputTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ShouldStyle decides whether output is styled for a config color mode.
// NO_COLOR disables styling in auto mode.
func ShouldStyle(mode string) bool {
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	case config.ColorNever:
		return false
	default:
		return IsTTY() && os.Getenv("NO_COLOR") == ""
	}
}
