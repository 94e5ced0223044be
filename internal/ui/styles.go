package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants - single source of truth for viewport dimensions
const (
	MinViewportWidth = 80
	MaxViewportWidth = 150
	DefaultWidth     = 100 // used when terminal size is unknown
	DefaultHeight    = 30
	MinTableHeight   = 5
	MaxTableHeight   = 30
	// Rows consumed around the table: top margin, title, border edges, footer.
	chromeHeight = 8
)

// Layout holds computed dimensions for the current terminal size
type Layout struct {
	ViewportWidth  int // clamped terminal width
	ViewportHeight int // terminal height as reported
	InnerWidth     int // ViewportWidth minus border chars
	TableWidth     int // width available for column math
	TableHeight    int // visible data rows
}

// NewLayout creates a Layout from the terminal size, clamping to min/max
func NewLayout(terminalWidth, terminalHeight int) Layout {
	width := clamp(terminalWidth, MinViewportWidth, MaxViewportWidth)
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}
	return Layout{
		ViewportWidth:  width,
		ViewportHeight: terminalHeight,
		InnerWidth:     width - 2,
		TableWidth:     width - 4,
		TableHeight:    clamp(terminalHeight-chromeHeight, MinTableHeight, MaxTableHeight),
	}
}

// DefaultLayout returns a layout using the default terminal size
func DefaultLayout() Layout {
	return NewLayout(DefaultWidth, DefaultHeight)
}

// clamp restricts a value to the given range
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Color palette - centralized color definitions
var (
	ColorBorder    = lipgloss.Color("39")  // blue
	ColorHighlight = lipgloss.Color("24")  // deep blue background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorAccent    = lipgloss.Color("86")  // cyan
	ColorTextDim   = lipgloss.Color("245") // gray
	ColorError     = lipgloss.Color("203") // soft red
	ColorSuccess   = lipgloss.Color("78")  // green
)

// Common styles - reusable style definitions
var (
	// Border style for the main viewport.
	// Content inside borders must use InnerWidth (ViewportWidth - 2).
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	// Title style for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	// Selected row/item style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	// Normal text style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Dim text style for secondary information
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// Hint/help text style
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	// Accent style for highlighted text (cyan)
	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Error text style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Stats footer style
	StatsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)
)

// RenderTitle renders a section title
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderDim renders secondary text
func RenderDim(text string) string {
	return DimStyle.Render(text)
}

// RenderError renders an error line
func RenderError(text string) string {
	return ErrorStyle.Render(text)
}

// CenterText centers text within the given width
func CenterText(text string, width int) string {
	textW := lipgloss.Width(text)
	if textW >= width {
		return text
	}
	padding := (width - textW) / 2
	return lipgloss.NewStyle().PaddingLeft(padding).Render(text)
}

// ApplyTableStyles applies the standard header and selection styling to a
// bubbles table.
func ApplyTableStyles(t *table.Model) {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorText)
	s.Selected = s.Selected.
		Foreground(ColorText).
		Background(ColorHighlight).
		Bold(true)
	t.SetStyles(s)
}

// NewAppSpinner returns the spinner shown while a fetch is in flight.
func NewAppSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)
	return s
}

// NewAppTheme creates a huh theme matching the app's style guide:
// white text, blue highlights and selection.
func NewAppTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	t.Blurred.Title = t.Focused.Title

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Blurred.Description = t.Focused.Description

	t.Focused.Base = lipgloss.NewStyle().
		Foreground(ColorText)
	t.Blurred.Base = t.Focused.Base

	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)

	t.Focused.UnselectedOption = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	return t
}
