package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"parkview/internal/nav"
)

// View implements tea.Model
func (m ReaderModel) View() string {
	if m.quitting {
		return ""
	}

	if m.helpVisible {
		return m.renderHelp()
	}

	if m.machine.View() == nav.ViewBoards {
		return m.renderBoardList()
	}

	// A full fetching screen only when the target board has nothing on
	// screen yet; refreshing the displayed board keeps the rows visible.
	if m.fetching && m.machine.Loaded() != m.machine.Board() {
		return m.renderFetching()
	}

	return m.renderRows()
}

func (m ReaderModel) renderRows() string {
	var b strings.Builder

	// Top margin to avoid the terminal edge
	b.WriteString("\n")

	b.WriteString(" ")
	b.WriteString(TitleStyle.Render(m.boardTitle()))
	b.WriteString("\n")

	borderedTable := BorderStyle.
		Width(m.layout.ViewportWidth).
		Render(m.table.View())
	b.WriteString(borderedTable)
	b.WriteString("\n")

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m ReaderModel) boardTitle() string {
	idx := m.machine.Loaded()
	if idx < 0 {
		idx = m.machine.Board()
	}
	return m.boards[idx].Name
}

// renderFooter builds the footer line: post count and position on the left,
// status or hint in the center, refresh age on the right.
func (m ReaderModel) renderFooter() string {
	leftPart := fmt.Sprintf("%d posts", len(m.rows))
	if row, ok := m.machine.Row(); ok {
		leftPart = fmt.Sprintf("%d/%d posts", row+1, len(m.rows))
	}
	if m.skipped > 0 {
		leftPart += fmt.Sprintf(" (%d skipped)", m.skipped)
	}

	centerPart := "Press ? for help, q to quit"
	centerStyled := HintStyle.Render(centerPart)
	if m.statusMsg != "" {
		centerPart = m.statusMsg
		centerStyled = AccentStyle.Render(centerPart)
	}
	if m.err != nil {
		centerPart = fmt.Sprintf("Fetch failed: %v", m.err)
		centerStyled = ErrorStyle.Render(centerPart)
	}

	rightPart := m.refreshAge()

	// Spacing math uses the plain strings; styling adds no visible width
	availableWidth := m.layout.ViewportWidth - 1
	usedWidth := lipgloss.Width(leftPart) + lipgloss.Width(centerPart) + lipgloss.Width(rightPart)
	remainingSpace := availableWidth - usedWidth
	if remainingSpace < 4 {
		remainingSpace = 4
	}
	leftSpacing := remainingSpace / 2
	rightSpacing := remainingSpace - leftSpacing

	return " " + StatsStyle.Render(leftPart) +
		strings.Repeat(" ", leftSpacing) +
		centerStyled +
		strings.Repeat(" ", rightSpacing) +
		StatsStyle.Render(rightPart)
}

func (m ReaderModel) refreshAge() string {
	if m.fetching {
		return "updating..."
	}
	if m.lastFetched.IsZero() {
		return ""
	}
	age := time.Since(m.lastFetched).Round(time.Second)
	return fmt.Sprintf("updated %s ago", age)
}

// renderBoardList renders the board catalog overlay
func (m ReaderModel) renderBoardList() string {
	var b strings.Builder

	boardSelectedStyle := SelectedStyle.Padding(0, 1)
	boardNormalStyle := NormalStyle.Padding(0, 1)

	b.WriteString(TitleStyle.Render("Boards"))
	b.WriteString("\n\n")

	for i, board := range m.boards {
		line := fmt.Sprintf("%-14s %s", board.Name, board.Path)
		if i == m.machine.Loaded() {
			line += "  (loaded)"
		}
		if i == m.machine.Board() {
			b.WriteString(boardSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(boardNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HintStyle.Render("j/k: navigate | Enter: open board | q: quit"))

	borderStyle := BorderStyle.Padding(1, 2).Width(m.layout.ViewportWidth).MarginTop(1)
	return borderStyle.Render(b.String())
}

// renderFetching renders the loading screen shown while a board with no
// rows on screen is being fetched
func (m ReaderModel) renderFetching() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Fetching"))
	b.WriteString("\n\n")

	b.WriteString("Board: ")
	b.WriteString(AccentStyle.Render(m.boards[m.machine.Board()].Name))
	b.WriteString("\n\n")

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(DimStyle.Render("Loading the latest posts..."))
	b.WriteString("\n")

	borderStyle := BorderStyle.Padding(1, 2).Width(m.layout.ViewportWidth).MarginTop(1)
	return borderStyle.Render(b.String())
}

// renderHelp renders the keyboard reference overlay
func (m ReaderModel) renderHelp() string {
	help := `
Keyboard Controls:
  j/k or up/down  Navigate posts (wraps around)
  b or tab        Board catalog
  h               Back to the post list
  Enter or o      Open the highlighted post in your browser
  r               Refresh the current board
  a               Mark every displayed post as read
  ?               Toggle this help
  q               Quit

Marks: [ ] = unread, [x] = opened in browser
`
	borderStyle := BorderStyle.Padding(1, 2).Width(m.layout.ViewportWidth).MarginTop(1)
	return borderStyle.Render(NormalStyle.Render(help))
}
