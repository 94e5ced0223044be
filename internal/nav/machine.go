// Package nav owns the reader's selection state: which view is active, which
// board is highlighted, which row is highlighted, and when a board's rows
// need fetching. It is pure state bookkeeping; the UI layer maps keys onto
// Actions and performs the fetches that Effects demand.
package nav

// View identifies which pane of the reader is active.
type View int

const (
	// ViewRows shows the listing rows of the loaded board.
	ViewRows View = iota
	// ViewBoards shows the board catalog.
	ViewBoards
)

// Action is one of the five semantic inputs the reader responds to.
// Key bindings map onto these in the presentation layer.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionHome   // switch to the rows view
	ActionBoards // switch to the board catalog
	ActionUp
	ActionDown
)

// Effect is what a transition demands from the caller beyond state changes.
// At most one of Quit/Fetch is set.
type Effect struct {
	Quit  bool
	Fetch bool
	Board int // registry index to fetch when Fetch is set
}

// Machine tracks the highlighted board and row. The board index is always a
// valid registry index; the row index is optional and is revalidated on
// every row-count change so it can never point past the displayed sequence.
type Machine struct {
	view       View
	boardCount int
	board      int // selected board index
	loaded     int // board whose rows are displayed; -1 before the first load
	rowCount   int
	row        int // selected row index; -1 when unset
}

// New returns a machine over a registry of boardCount boards, starting on
// the rows view of board 0 with nothing loaded. boardCount must be positive;
// the registry is static and validated at startup.
func New(boardCount int) *Machine {
	return &Machine{
		boardCount: boardCount,
		loaded:     -1,
		row:        -1,
	}
}

// View reports the active pane.
func (m *Machine) View() View { return m.view }

// Board reports the selected board index.
func (m *Machine) Board() int { return m.board }

// Loaded reports the board whose rows are displayed, or -1 before any load.
func (m *Machine) Loaded() int { return m.loaded }

// RowCount reports the length of the displayed row sequence.
func (m *Machine) RowCount() int { return m.rowCount }

// Row reports the selected row index; ok is false while no row is selected
// (before the first movement, and whenever the sequence is empty).
func (m *Machine) Row() (int, bool) {
	if m.row < 0 {
		return 0, false
	}
	return m.row, true
}

// SelectBoard moves the board highlight directly, for restoring the last
// session's board at startup. Out-of-range indices are ignored.
func (m *Machine) SelectBoard(i int) {
	if i >= 0 && i < m.boardCount {
		m.board = i
	}
}

// Apply runs one transition. Entering the rows view with a board other than
// the loaded one demands exactly one fetch for it; everything else is pure
// selection movement.
func (m *Machine) Apply(a Action) Effect {
	switch a {
	case ActionQuit:
		return Effect{Quit: true}
	case ActionBoards:
		m.view = ViewBoards
	case ActionHome:
		m.view = ViewRows
		if m.loaded != m.board {
			return Effect{Fetch: true, Board: m.board}
		}
	case ActionUp:
		m.move(-1)
	case ActionDown:
		m.move(1)
	}
	return Effect{}
}

// SetRows records a completed fetch+extract cycle: board's rows are now
// displayed with length n. Loading a different board resets the row
// highlight; refreshing the same board clamps a selection that the shorter
// sequence no longer contains.
func (m *Machine) SetRows(board, n int) {
	fresh := board != m.loaded
	m.loaded = board
	m.rowCount = n
	switch {
	case n == 0:
		m.row = -1
	case fresh:
		m.row = -1
	case m.row >= n:
		m.row = n - 1
	}
}

func (m *Machine) move(delta int) {
	if m.view == ViewBoards {
		m.board = wrap(m.board+delta, m.boardCount)
		return
	}
	if m.rowCount == 0 {
		return
	}
	// The first movement in either direction lands on the top row.
	if m.row < 0 {
		m.row = 0
		return
	}
	m.row = wrap(m.row+delta, m.rowCount)
}

func wrap(i, n int) int {
	if i < 0 {
		return n - 1
	}
	if i >= n {
		return 0
	}
	return i
}
