package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfeld/meridian/calendar"
	"github.com/mfeld/meridian/catalog"
	"github.com/mfeld/meridian/clock"
	"github.com/mfeld/meridian/solar"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(1, 0)

	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	monthStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	weekdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	otherMonthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	todayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	selectedDayStyle = lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("205"))

	cityStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	timeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	inWindowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	outWindowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	cursorCardStyle = cardStyle.BorderForeground(lipgloss.Color("205"))

	dragCardStyle = cardStyle.BorderForeground(lipgloss.Color("42"))

	barStyle = lipgloss.NewStyle().Background(lipgloss.Color("235"))

	barTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)
)

// View renders the UI
func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress 'q' to quit", m.err)
	}

	if m.quitting {
		return "Goodbye!\n"
	}

	if !m.ready {
		return "Initializing..."
	}

	switch m.state {
	case viewMain:
		return m.renderMain()
	case viewAdd:
		return m.renderAdd()
	case viewConfirm:
		return m.renderConfirm()
	}

	return ""
}

// renderMain renders the calendar, the scrub bar and the clock list
func (m model) renderMain() string {
	header := m.renderHeader()

	m.viewport.SetContent(m.renderClocks())
	commandBar := m.renderCommandBar()

	return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), commandBar)
}

// renderHeader renders the month navigation, the day grid and the scrub
// bar. Its line layout must match the geometry used for mouse
// hit-testing (calTop, sliderY, clocksTop).
func (m model) renderHeader() string {
	var lines []string

	nav := fmt.Sprintf(" %s %s %s",
		hintStyle.Render("["),
		monthStyle.Render(m.month.Label()),
		hintStyle.Render("]"))
	lines = append(lines, nav)

	var week strings.Builder
	week.WriteString(strings.Repeat(" ", calLeftMargin))
	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		week.WriteString(weekdayStyle.Render(fmt.Sprintf("%*s", calCellWidth, name)))
	}
	lines = append(lines, week.String())

	current := m.vc.Current()
	now := time.Now().In(m.viewer)
	days := m.month.Days()
	for row := 0; row < len(days)/7; row++ {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", calLeftMargin))
		for col := 0; col < 7; col++ {
			d := days[row*7+col]
			cell := fmt.Sprintf(" %2d ", d.Date.Day())
			switch {
			case calendar.SameDay(d.Date, current) && m.month.Contains(current):
				cell = selectedDayStyle.Render(cell)
			case calendar.SameDay(d.Date, now) && d.InMonth:
				cell = todayStyle.Render(cell)
			case !d.InMonth:
				cell = otherMonthStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		lines = append(lines, b.String())
	}

	lines = append(lines, "", m.renderSlider(), "")
	return strings.Join(lines, "\n")
}

// renderSlider renders the time scrub line: the displayed time, a
// 24-hour position bar and the live/paused state.
func (m model) renderSlider() string {
	cur := m.vc.Current()
	minutes := cur.Hour()*60 + cur.Minute()

	const barWidth = 32
	pos := minutes * (barWidth - 1) / (23*60 + 45)
	if pos > barWidth-1 {
		pos = barWidth - 1
	}
	bar := []rune(strings.Repeat("─", barWidth))
	bar[pos] = '●'

	state := inWindowStyle.Render("LIVE")
	if !m.vc.IsLive() {
		state = outWindowStyle.Render("PAUSED")
	}

	return fmt.Sprintf(" %s %s %s %s",
		timeStyle.Render(cur.Format("3:04 PM")),
		hintStyle.Render("◀"+string(bar)+"▶"),
		state,
		hintStyle.Render(cur.Format("Mon, Jan 2")))
}

// renderClocks renders the selection as a vertical list of fixed-height
// cards so that row positions map onto list indices.
func (m model) renderClocks() string {
	instant := m.vc.Current()
	entries := m.list.Entries()
	inWindow := m.window.Evaluate(instant, entries)

	width := m.width - 8
	if width < 30 {
		width = 30
	}

	cards := make([]string, 0, len(entries))
	for i, e := range entries {
		style := cardStyle
		switch {
		case i == m.dragIndex:
			style = dragCardStyle
		case i == m.cursor:
			style = cursorCardStyle
		}
		cards = append(cards, style.Render(m.renderClockCard(e, instant, inWindow[e.Identity()], width)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderClockCard renders the three content lines of one zone card.
func (m model) renderClockCard(e catalog.Record, instant time.Time, inWindow bool, width int) string {
	p := clock.Project(instant, e.Location(), m.viewer)
	zoned := instant.In(e.Location())

	dot := outWindowStyle.Render("●")
	if inWindow {
		dot = inWindowStyle.Render("●")
	}

	daymark := ""
	if e.Coordinates != (catalog.Coordinates{}) {
		st := solar.Calculate(e.Coordinates.Lat, e.Coordinates.Lng, zoned)
		if st.Daytime(zoned) {
			daymark = "☀"
		} else {
			daymark = "☾"
		}
	}

	line1 := spread(width,
		dot+" "+cityStyle.Render(strings.ToUpper(e.City)),
		dimStyle.Render(p.DayLabel))

	line2 := spread(width,
		timeStyle.Render(p.HourMinute)+" "+timeStyle.Render(p.Meridiem)+" "+dimStyle.Render(p.Abbrev),
		daymark)

	line3 := spread(width,
		dimStyle.Render(zoned.Format("2006-01-02")),
		dimStyle.Render(p.Offset))

	return lipgloss.JoinVertical(lipgloss.Left, line1, line2, line3)
}

// renderAdd renders the add timezone view
func (m model) renderAdd() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Add Timezone"))
	b.WriteString("\n\n")

	b.WriteString("Search city, country or zone name:\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if len(m.searchResults) == 0 {
		b.WriteString(hintStyle.Render("No timezones found"))
	} else {
		b.WriteString(fmt.Sprintf("Results (%d):\n", len(m.searchResults)))
		// Show results (limit visible results)
		maxVisible := 10
		start := 0
		if m.selectedResult >= maxVisible {
			start = m.selectedResult - maxVisible + 1
		}
		end := start + maxVisible
		if end > len(m.searchResults) {
			end = len(m.searchResults)
		}

		for i := start; i < end; i++ {
			rec := m.searchResults[i]
			line := fmt.Sprintf("  %s (%s)", rec.Label(), rec.ID)

			if i == m.selectedResult {
				line = lipgloss.NewStyle().
					Foreground(lipgloss.Color("205")).
					Bold(true).
					Render("> " + line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("↑/↓: Navigate | Enter: Add | ESC: Cancel"))

	return b.String()
}

// renderConfirm renders the confirmation dialog
func (m model) renderConfirm() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Confirm"))
	b.WriteString("\n\n")

	b.WriteString(m.confirmMsg)
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("y: Yes | n/ESC: No"))

	return b.String()
}

// renderCommandBar renders the command bar at the bottom
func (m model) renderCommandBar() string {
	commands := "a: Add | x: Remove | drag/shift+↑↓: Reorder | ←/→: Scrub | space: Pause | r: Live | [ ]: Month | q: Quit"
	leftContent := barTextStyle.Render(commands)

	var status string
	if m.vc.IsLive() {
		status = "● Live"
	} else {
		status = fmt.Sprintf("❚❚ %s", m.vc.Current().Format("Jan 2 3:04 PM"))
	}
	rightContent := barTextStyle.Render(status)

	// Calculate spacing to push right content to the right
	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(rightContent)
	spacingWidth := m.width - leftWidth - rightWidth
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := strings.Repeat(" ", spacingWidth)

	return barStyle.Render(leftContent + spacing + rightContent)
}

// spread lays left and right at the edges of a line of the given width.
func spread(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
