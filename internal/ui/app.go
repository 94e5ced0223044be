package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"parkview/internal/api"
	"parkview/internal/db"
	"parkview/internal/models"
	"parkview/internal/nav"
	"parkview/internal/scrape"
)

// Message types for async operations

// fetchCompleteMsg carries the outcome of one fetch+extract cycle.
type fetchCompleteMsg struct {
	board     int
	rows      []models.Row
	skipped   int
	err       error
	fetchedAt time.Time
}

// refreshTickMsg fires on the periodic refresh schedule.
type refreshTickMsg time.Time

// ReaderModel holds the state for the interactive board reader.
type ReaderModel struct {
	table   table.Model
	spinner spinner.Model
	machine *nav.Machine
	boards  []models.Board
	rows    []models.Row    // rows of the loaded board
	skipped int             // containers dropped during the last extract
	seen    map[string]bool // post URLs already opened, for the loaded board

	client *api.Client
	store  *db.Store   // nil when read history is disabled
	logger *log.Logger // nil when logging is disabled

	refreshEvery time.Duration // 0 disables the periodic refresh
	lastFetched  time.Time

	// Layout state
	layout Layout

	fetching    bool
	err         error // last fetch failure; cleared on the next success
	statusMsg   string
	helpVisible bool
	quitting    bool
}

// NewReaderModel creates the board reader model, primed to fetch startBoard.
func NewReaderModel(client *api.Client, store *db.Store, logger *log.Logger, boards []models.Board, startBoard int, refreshEvery time.Duration) ReaderModel {
	machine := nav.New(len(boards))
	machine.SelectBoard(startBoard)
	eff := machine.Apply(nav.ActionHome)

	layout := DefaultLayout()
	t := table.New(
		table.WithColumns(CalculateColumns(PostColumns(), layout.TableWidth)),
		table.WithFocused(true),
		table.WithHeight(layout.TableHeight),
	)
	ApplyTableStyles(&t)

	return ReaderModel{
		table:        t,
		spinner:      NewAppSpinner(),
		machine:      machine,
		boards:       boards,
		client:       client,
		store:        store,
		logger:       logger,
		refreshEvery: refreshEvery,
		layout:       layout,
		fetching:     eff.Fetch,
	}
}

// Init implements tea.Model
func (m ReaderModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchBoard(m.machine.Board()), m.spinner.Tick}
	if m.refreshEvery > 0 {
		cmds = append(cmds, m.scheduleRefresh())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m ReaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.resizeTable()
		return m, nil

	case fetchCompleteMsg:
		return m.handleFetchComplete(msg)

	case spinner.TickMsg:
		// The spinner only animates while a fetch is in flight.
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshTickMsg:
		// Coalesce: never stack a refresh behind a fetch already in flight,
		// and skip refreshing while the board catalog is open.
		if m.fetching || m.machine.View() != nav.ViewRows || m.machine.Loaded() < 0 {
			return m, m.scheduleRefresh()
		}
		m.fetching = true
		return m, tea.Batch(m.fetchBoard(m.machine.Loaded()), m.scheduleRefresh(), m.spinner.Tick)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// fetchBoard returns a tea.Cmd that fetches one board page and extracts its
// listing rows.
func (m ReaderModel) fetchBoard(index int) tea.Cmd {
	board := m.boards[index]
	client := m.client
	logger := m.logger
	return func() tea.Msg {
		markup, err := client.Board(board.Path)
		if err != nil {
			return fetchCompleteMsg{board: index, err: err}
		}
		rows, skipped, err := scrape.Rows(markup)
		if err != nil {
			return fetchCompleteMsg{board: index, err: err}
		}
		if logger != nil {
			logger.Info("extracted rows", "board", board.Name, "rows", len(rows), "skipped", skipped)
		}
		return fetchCompleteMsg{board: index, rows: rows, skipped: skipped, fetchedAt: time.Now()}
	}
}

func (m ReaderModel) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.refreshEvery, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m ReaderModel) handleFetchComplete(msg fetchCompleteMsg) (tea.Model, tea.Cmd) {
	m.fetching = false
	if msg.err != nil {
		// Keep whatever is on screen; the footer reports the failure.
		m.err = msg.err
		if m.logger != nil {
			m.logger.Error("fetch failed", "board", m.boards[msg.board].Name, "error", msg.err)
		}
		return m, nil
	}

	m.err = nil
	m.rows = msg.rows
	m.skipped = msg.skipped
	m.lastFetched = msg.fetchedAt
	m.machine.SetRows(msg.board, len(msg.rows))
	m.reloadSeen(msg.board)
	m.rebuildTable()
	return m, nil
}

func (m ReaderModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Clear transient status on any key press
	if m.statusMsg != "" {
		m.statusMsg = ""
	}

	if m.helpVisible {
		switch key {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		m.helpVisible = false
		return m, nil
	}

	// Block input while fetching, except quit
	if m.fetching {
		if key == "q" || key == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "?":
		m.helpVisible = true
		return m, nil

	case "enter", "esc":
		if m.machine.View() == nav.ViewBoards {
			return m.dispatch(nav.ActionHome)
		}
		if key == "enter" {
			return m.openSelected()
		}
		return m, nil

	case "o":
		if m.machine.View() == nav.ViewRows {
			return m.openSelected()
		}
		return m, nil

	case "r":
		if m.machine.View() == nav.ViewRows && m.machine.Loaded() >= 0 {
			m.fetching = true
			return m, tea.Batch(m.fetchBoard(m.machine.Loaded()), m.spinner.Tick)
		}
		return m, nil

	case "a":
		if m.machine.View() == nav.ViewRows {
			m.markAllRead()
		}
		return m, nil
	}

	return m.dispatch(actionFor(key))
}

// dispatch applies a semantic action to the navigation machine and carries
// out whatever the resulting effect demands.
func (m ReaderModel) dispatch(a nav.Action) (tea.Model, tea.Cmd) {
	eff := m.machine.Apply(a)
	if eff.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if eff.Fetch {
		m.fetching = true
		return m, tea.Batch(m.fetchBoard(eff.Board), m.spinner.Tick)
	}
	if m.machine.View() == nav.ViewRows {
		m.syncCursor()
	}
	return m, nil
}

func (m ReaderModel) openSelected() (tea.Model, tea.Cmd) {
	row, ok := m.machine.Row()
	if !ok || row >= len(m.rows) {
		return m, nil
	}
	r := m.rows[row]

	if err := openURL(m.client.AbsoluteURL(r.URL)); err != nil {
		m.statusMsg = fmt.Sprintf("Open failed: %v", err)
		return m, nil
	}

	if m.store != nil && m.machine.Loaded() >= 0 {
		boardPath := m.boards[m.machine.Loaded()].Path
		if err := m.store.MarkSeen(boardPath, r); err != nil {
			if m.logger != nil {
				m.logger.Error("mark seen", "error", err)
			}
		} else {
			if m.seen == nil {
				m.seen = make(map[string]bool)
			}
			m.seen[r.URL] = true
			m.rebuildTable()
		}
	}
	return m, nil
}

// markAllRead records every displayed row as opened.
func (m *ReaderModel) markAllRead() {
	if m.store == nil || m.machine.Loaded() < 0 || len(m.rows) == 0 {
		return
	}
	boardPath := m.boards[m.machine.Loaded()].Path
	if err := m.store.MarkSeenAll(boardPath, m.rows); err != nil {
		m.statusMsg = fmt.Sprintf("Mark read failed: %v", err)
		return
	}
	if m.seen == nil {
		m.seen = make(map[string]bool)
	}
	for _, r := range m.rows {
		m.seen[r.URL] = true
	}
	m.statusMsg = fmt.Sprintf("Marked %d posts read", len(m.rows))
	m.rebuildTable()
}

// reloadSeen refreshes the read-history marks for the loaded board.
func (m *ReaderModel) reloadSeen(board int) {
	m.seen = nil
	if m.store == nil {
		return
	}
	seen, err := m.store.SeenURLs(m.boards[board].Path)
	if err != nil {
		if m.logger != nil {
			m.logger.Error("load read history", "error", err)
		}
		return
	}
	m.seen = seen
}

// rebuildTable regenerates the table rows from the extracted listing rows,
// marking posts already opened with [x].
func (m *ReaderModel) rebuildTable() {
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		mark := "[ ]"
		if m.seen[r.URL] {
			mark = "[x]"
		}
		rows[i] = table.Row{
			mark,
			r.Title,
			fmt.Sprintf("%d", r.CommentCount),
			r.Author,
			r.ViewCount,
			r.Timestamp,
		}
	}
	m.table.SetRows(rows)
	m.syncCursor()
}

// syncCursor mirrors the machine's row selection onto the table. While no
// row is selected yet the table still draws its cursor on the top row;
// movement keys go through the machine, so wraparound stays intact.
func (m *ReaderModel) syncCursor() {
	if row, ok := m.machine.Row(); ok {
		m.table.SetCursor(row)
	} else {
		m.table.SetCursor(0)
	}
}

func (m *ReaderModel) resizeTable() {
	m.table.SetColumns(CalculateColumns(PostColumns(), m.layout.TableWidth))
	m.table.SetHeight(m.layout.TableHeight)
}

// RunReader launches the interactive board reader and blocks until exit.
// It returns the index of the board selected when the user quit.
func RunReader(client *api.Client, store *db.Store, logger *log.Logger, boards []models.Board, startBoard int, refreshEvery time.Duration) (int, error) {
	model := NewReaderModel(client, store, logger, boards, startBoard, refreshEvery)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return startBoard, err
	}
	if m, ok := finalModel.(ReaderModel); ok {
		return m.machine.Board(), nil
	}
	return startBoard, nil
}
