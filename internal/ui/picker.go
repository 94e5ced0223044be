package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"parkview/internal/models"
)

// RunBoardPicker presents a select form over the board registry and returns
// the chosen index.
func RunBoardPicker(boards []models.Board, current int) (int, error) {
	if len(boards) == 0 {
		return 0, fmt.Errorf("no boards configured")
	}

	selected := 0
	if current >= 0 && current < len(boards) {
		selected = current
	}

	opts := make([]huh.Option[int], len(boards))
	for i, b := range boards {
		opts[i] = huh.NewOption(fmt.Sprintf("%s  (%s)", b.Name, b.Path), i)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select board").
				Description(fmt.Sprintf("%d boards available", len(boards))).
				Options(opts...).
				Value(&selected),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("board selection error: %w", err)
	}

	return selected, nil
}
