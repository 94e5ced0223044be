package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SplashModel is the TUI model for the startup splash screen
type SplashModel struct {
	width  int
	height int
	done   bool
}

type splashTimeoutMsg struct{}

func waitForTimeout() tea.Cmd {
	return tea.Tick(1500*time.Millisecond, func(t time.Time) tea.Msg {
		return splashTimeoutMsg{}
	})
}

func (m SplashModel) Init() tea.Cmd {
	return waitForTimeout()
}

func (m SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	case splashTimeoutMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SplashModel) View() string {
	if m.done {
		return ""
	}

	layout := NewLayout(m.width, m.height)

	wordmark := AccentStyle.Render("parkview")
	tagline := DimStyle.Render("a terminal reader for community boards")
	hint := HintStyle.Render("press any key to skip")

	boxHeight := layout.ViewportHeight - 4
	if boxHeight < 10 {
		boxHeight = 10
	}

	var b strings.Builder
	mid := boxHeight / 2
	for i := 0; i < boxHeight; i++ {
		switch i {
		case mid - 1:
			b.WriteString(CenterText(wordmark, layout.InnerWidth))
		case mid + 1:
			b.WriteString(CenterText(tagline, layout.InnerWidth))
		case boxHeight - 2:
			b.WriteString(CenterText(hint, layout.InnerWidth))
		}
		b.WriteString("\n")
	}

	return BorderStyle.
		Width(layout.InnerWidth).
		Height(boxHeight).
		Render(b.String())
}

// ShowSplash displays the splash screen until a key press or timeout
func ShowSplash() {
	model := SplashModel{
		width:  DefaultWidth,
		height: DefaultHeight,
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	p.Run()

	// Clear screen before continuing
	fmt.Print("\033[2J\033[H")
}
