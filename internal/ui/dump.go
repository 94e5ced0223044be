package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"

	"parkview/internal/api"
	"parkview/internal/models"
	"parkview/internal/scrape"
)

// FetchRowsWithSpinner fetches a board page while showing a spinner, then
// extracts the listing rows.
func FetchRowsWithSpinner(client *api.Client, board models.Board) ([]models.Row, int, error) {
	var markup string
	var fetchErr error

	err := spinner.New().
		Title(fmt.Sprintf("Fetching %s...", board.Name)).
		Action(func() {
			markup, fetchErr = client.Board(board.Path)
		}).
		Run()
	if err != nil {
		return nil, 0, fmt.Errorf("spinner error: %w", err)
	}
	if fetchErr != nil {
		return nil, 0, fetchErr
	}

	return scrape.Rows(markup)
}

// PrintRowTable prints a styled listing table to stdout.
//
// This is the non-interactive report path, so the table is built with
// manual string formatting and lipgloss is used only to color the output.
// The interactive reader uses the bubbles/table component instead.
func PrintRowTable(board models.Board, rows []models.Row, skipped int) {
	if len(rows) == 0 {
		fmt.Println(DimStyle.Render(board.Name + ": no posts"))
		return
	}

	fmt.Println(TitleStyle.Render(board.Name))

	colWidths := []int{4, 50, 6, 14, 8, 10} // #, Title, Cmts, Author, Views, Time
	totalWidth := 2
	for _, w := range colWidths {
		totalWidth += w + 3 // column width + " │ " separator
	}
	totalWidth -= 1 // last column has no trailing separator

	separator := strings.Repeat("─", totalWidth-2)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	headerStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	fmt.Println(borderStyle.Render("┌" + separator + "┐"))

	header := fmt.Sprintf("│ %s │ %s │ %s │ %s │ %s │ %s │",
		padCell("#", colWidths[0]),
		padCell("Title", colWidths[1]),
		padCell("Cmts", colWidths[2]),
		padCell("Author", colWidths[3]),
		padCell("Views", colWidths[4]),
		padCell("Time", colWidths[5]))
	fmt.Println(headerStyle.Render(header))

	fmt.Println(borderStyle.Render("├" + separator + "┤"))

	for i, r := range rows {
		rowText := fmt.Sprintf("│ %s │ %s │ %s │ %s │ %s │ %s │",
			padCell(fmt.Sprintf("%d", i+1), colWidths[0]),
			padCell(r.Title, colWidths[1]),
			padCell(fmt.Sprintf("%d", r.CommentCount), colWidths[2]),
			padCell(r.Author, colWidths[3]),
			padCell(r.ViewCount, colWidths[4]),
			padCell(r.Timestamp, colWidths[5]))
		fmt.Println(NormalStyle.Render(rowText))
	}

	fmt.Println(borderStyle.Render("└" + separator + "┘"))

	if skipped > 0 {
		fmt.Println(DimStyle.Render(fmt.Sprintf("%d rows skipped (missing required fields)", skipped)))
	}
	fmt.Println()
}

// padCell truncates or pads a cell value to an exact display width.
// Widths are display columns, so wide characters count double.
func padCell(s string, width int) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	style := lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	fmt.Println(style.Render(message))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Println(ErrorStyle.Render("Error: " + message))
}
