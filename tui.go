package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mfeld/meridian/calendar"
	"github.com/mfeld/meridian/catalog"
	"github.com/mfeld/meridian/clock"
	"github.com/mfeld/meridian/config"
	"github.com/mfeld/meridian/meeting"
	"github.com/mfeld/meridian/selection"
)

// viewState represents the current view state
type viewState int

const (
	viewMain viewState = iota
	viewAdd
	viewConfirm
)

// Clock cards are rendered at a fixed height so mouse coordinates map
// directly to list indices: 3 content lines plus the border.
const cardHeight = 5

// Calendar day cells are 4 characters wide with a 1-column left margin.
const (
	calCellWidth  = 4
	calLeftMargin = 1
)

// tickMsg advances the virtual clock once per second while live. The
// generation number guards against a stale tick re-arming the loop after
// a pause/resume cycle: only the current generation may tick.
type tickMsg struct {
	gen int
	at  time.Time
}

// model represents the application state
type model struct {
	// Core data
	cfg    *config.Config
	logger *zap.Logger
	vc     *clock.Virtual
	list   *selection.List
	window meeting.Window
	viewer *time.Location
	month  calendar.Month

	// View state
	state    viewState
	viewport viewport.Model
	ready    bool
	err      error
	width    int
	height   int
	quitting bool
	cursor   int

	// Tick ownership; bumping the generation orphans in-flight ticks
	tickGen int

	// Add mode state
	searchInput        textinput.Model
	searchResults      []catalog.Record
	selectedResult     int
	justEnteredAddMode bool // Flag to prevent initial key from appearing in input

	// Confirm mode state
	confirmMsg      string
	confirmIdentity string

	// Drag state; -1 when no drag is in progress
	dragIndex int
}

func newModel(cfg *config.Config, logger *zap.Logger, vc *clock.Virtual, list *selection.List, window meeting.Window, viewer *time.Location) model {
	ti := textinput.New()
	ti.Placeholder = "Search city or country..."
	ti.CharLimit = 50
	ti.Width = 40

	return model{
		cfg:         cfg,
		logger:      logger,
		vc:          vc,
		list:        list,
		window:      window,
		viewer:      viewer,
		month:       calendar.At(vc.Current()),
		state:       viewMain,
		searchInput: ti,
		dragIndex:   -1,
	}
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	return tickCmd(m.tickGen)
}

// Update handles messages and updates the model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()

	case tickMsg:
		// A tick from a previous generation arrives after a pause; drop
		// it without re-arming.
		if msg.gen == m.tickGen && m.vc.IsLive() {
			m.vc.Tick(time.Second)
			cmds = append(cmds, tickCmd(m.tickGen))
		}

	case error:
		m.err = msg
		return m, tea.Quit
	}

	// Update sub-components based on state
	switch m.state {
	case viewAdd:
		// Only update searchInput if we didn't just enter add mode
		// (prevents the 'a' key from appearing in the input field)
		if !m.justEnteredAddMode {
			m.searchInput, cmd = m.searchInput.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			m.searchResults = m.filterResults(catalog.Search(m.searchInput.Value()))
			if m.selectedResult >= len(m.searchResults) {
				m.selectedResult = 0
			}
		} else {
			m.justEnteredAddMode = false
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input based on current view state
func (m *model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.state {
	case viewMain:
		return m.handleMainKeys(msg)
	case viewAdd:
		return m.handleAddKeys(msg)
	case viewConfirm:
		return m.handleConfirmKeys(msg)
	}
	return nil
}

// handleMainKeys handles keys in main view
func (m *model) handleMainKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return tea.Quit

	case "a":
		// Enter add mode
		m.state = viewAdd
		m.searchInput.Reset()
		m.searchResults = m.filterResults(catalog.Search(""))
		m.selectedResult = 0
		m.justEnteredAddMode = true // Prevent 'a' key from appearing in input
		m.searchInput.Focus()
		return textinput.Blink

	case "x":
		// Ask to remove the zone under the cursor; the last entry stays
		if m.list.Len() > 1 && m.cursor < m.list.Len() {
			entry := m.list.At(m.cursor)
			m.state = viewConfirm
			m.confirmMsg = fmt.Sprintf("Remove '%s'? (y/n)", entry.Label())
			m.confirmIdentity = entry.Identity()
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}

	case "shift+up":
		if m.list.Move(m.cursor, m.cursor-1) {
			m.cursor--
			m.saveSelection()
		}

	case "shift+down":
		if m.list.Move(m.cursor, m.cursor+1) {
			m.cursor++
			m.saveSelection()
		}

	case "left":
		m.scrub(-1)

	case "right":
		m.scrub(1)

	case " ":
		// Toggle between live and frozen at the displayed instant
		if m.vc.IsLive() {
			m.vc.Pause()
			m.tickGen++
		} else {
			return m.resume()
		}

	case "r":
		return m.resume()

	case "[":
		m.month = m.month.Advance(-1)
		m.resizeViewport()

	case "]":
		m.month = m.month.Advance(1)
		m.resizeViewport()

	case "t":
		// Jump the calendar back to the displayed instant's month
		m.month = calendar.At(m.vc.Current())
		m.resizeViewport()
	}

	return nil
}

// handleAddKeys handles keys in add view
func (m *model) handleAddKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// Cancel and return to main
		m.state = viewMain
		return nil

	case "up":
		if m.selectedResult > 0 {
			m.selectedResult--
		}

	case "down":
		if m.selectedResult < len(m.searchResults)-1 {
			m.selectedResult++
		}

	case "enter":
		// Add selected zone and close the selector
		if len(m.searchResults) > 0 && m.selectedResult < len(m.searchResults) {
			rec := m.searchResults[m.selectedResult]
			if m.list.Add(rec) {
				m.saveSelection()
			}
		}
		m.state = viewMain
	}

	return nil
}

// handleConfirmKeys handles keys in confirm view
func (m *model) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y":
		if m.list.Remove(m.confirmIdentity) {
			if m.cursor >= m.list.Len() {
				m.cursor = m.list.Len() - 1
			}
			m.saveSelection()
		}
		m.state = viewMain

	case "n", "esc":
		// Cancel and return to main
		m.state = viewMain
	}

	return nil
}

// handleMouse maps clicks onto the calendar grid and drags onto the clock
// list. Only the main view reacts to the mouse.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.state != viewMain || !m.ready {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if day, ok := m.dayAt(msg.X, msg.Y); ok {
			m.vc.SetDate(day.Date.Year(), day.Date.Month(), day.Date.Day())
			m.tickGen++
			return
		}
		if idx, _, ok := m.clockAt(msg.Y); ok {
			m.cursor = idx
			m.dragIndex = idx
		}

	case tea.MouseActionMotion:
		if m.dragIndex < 0 {
			return
		}
		hover, offset, ok := m.clockAt(msg.Y)
		if !ok {
			return
		}
		// Midpoint hysteresis: the hovered card only yields its slot once
		// the pointer is past its middle in the drag direction.
		if selection.CommitHover(m.dragIndex, hover, offset, cardHeight) {
			if m.list.Move(m.dragIndex, hover) {
				m.dragIndex = hover
				m.cursor = hover
			}
		}

	case tea.MouseActionRelease:
		if m.dragIndex >= 0 {
			m.dragIndex = -1
			m.saveSelection()
		}
	}
}

// resume snaps back to real time and restarts the tick loop under a fresh
// generation.
func (m *model) resume() tea.Cmd {
	m.vc.Resume()
	m.tickGen++
	m.month = calendar.At(m.vc.Current())
	m.resizeViewport()
	return tickCmd(m.tickGen)
}

// scrub moves the time-of-day by step 15-minute increments, pausing the
// clock. The day never wraps; the range is clamped to 00:00..23:45.
func (m *model) scrub(step int) {
	cur := m.vc.Current()
	total := cur.Hour()*60 + cur.Minute()/15*15
	total += step * 15
	if total < 0 {
		total = 0
	}
	if max := 23*60 + 45; total > max {
		total = max
	}
	m.vc.SetTimeOfDay(total/60, total%60)
	m.tickGen++
}

// filterResults drops records already present in the selection.
func (m *model) filterResults(records []catalog.Record) []catalog.Record {
	out := records[:0:0]
	for _, r := range records {
		if !m.list.Contains(r.Identity()) {
			out = append(out, r)
		}
	}
	return out
}

// saveSelection writes the current list order back to the config file,
// mirroring how zones were loaded at startup.
func (m *model) saveSelection() {
	entries := m.list.Entries()
	zones := make([]config.Zone, 0, len(entries))
	for _, e := range entries {
		zones = append(zones, config.Zone{ID: e.ID, City: e.City})
	}
	m.cfg.Zones = zones
	if err := m.cfg.Save(); err != nil {
		m.logger.Error("failed to save config", zap.Error(err))
		m.err = err
	}
}

// resizeViewport recomputes the clock viewport height from the header,
// whose height depends on the number of weeks in the displayed month.
func (m *model) resizeViewport() {
	if m.width == 0 {
		return
	}
	h := m.height - m.clocksTop() - 2 // reserve newline + command bar
	if h < cardHeight {
		h = cardHeight
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, h)
		m.viewport.YPosition = 0
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = h
	}
}

// Header geometry. Line 0 is the month header, line 1 the weekday row,
// then the week rows, a blank line, the scrub bar, and another blank
// line before the clocks.
func (m model) calTop() int { return 2 }

func (m model) weeks() int { return len(m.month.Days()) / 7 }

func (m model) sliderY() int { return m.calTop() + m.weeks() + 1 }

func (m model) clocksTop() int { return m.sliderY() + 2 }

// dayAt maps a screen position to a calendar day cell.
func (m model) dayAt(x, y int) (calendar.Day, bool) {
	row := y - m.calTop()
	if row < 0 || row >= m.weeks() {
		return calendar.Day{}, false
	}
	col := (x - calLeftMargin) / calCellWidth
	if x < calLeftMargin || col < 0 || col > 6 {
		return calendar.Day{}, false
	}
	days := m.month.Days()
	idx := row*7 + col
	if idx >= len(days) {
		return calendar.Day{}, false
	}
	return days[idx], true
}

// clockAt maps a screen row to a clock card index and the pointer's
// offset within that card.
func (m model) clockAt(y int) (idx, offset int, ok bool) {
	rel := y - m.clocksTop() + m.viewport.YOffset
	if rel < 0 {
		return 0, 0, false
	}
	idx = rel / cardHeight
	if idx >= m.list.Len() {
		return 0, 0, false
	}
	return idx, rel % cardHeight, true
}

// tickCmd returns a command that sends a tick message every second
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}
