package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
)

var (
	colorAccent = lipgloss.Color("#7c3aed")
	colorMuted  = lipgloss.Color("#6b7280")
	colorToday  = lipgloss.Color("#10b981")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMuted)

	dayStyle = lipgloss.NewStyle().
			Width(9).
			Align(lipgloss.Right)

	otherMonthStyle = dayStyle.
			Foreground(colorMuted)

	todayStyle = dayStyle.
			Bold(true).
			Foreground(colorToday)

	busyStyle = dayStyle.
			Foreground(colorAccent)

	itemTitleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
)

// renderMonthGrid lays out a month projection as a seven-column grid with
// per-day item counts.
func renderMonthGrid(reference time.Time, days []time.Time, items []*domain.Item) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(reference.Format("January 2006")))
	b.WriteString("\n")

	var heads []string
	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		heads = append(heads, dayStyle.Render(headerStyle.Render(name)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, heads...))
	b.WriteString("\n")

	today := time.Now()
	for row := 0; row*7 < len(days); row++ {
		var cells []string
		for col := 0; col < 7 && row*7+col < len(days); col++ {
			day := days[row*7+col]
			dayItems := domain.ItemsForDate(items, day)

			cell := fmt.Sprintf("%d", day.Day())
			if n := len(dayItems); n > 0 {
				cell = fmt.Sprintf("%d (%d)", day.Day(), n)
			}

			style := dayStyle
			switch {
			case domain.SameDay(day, today):
				style = todayStyle
			case day.Month() != reference.Month():
				style = otherMonthStyle
			case len(dayItems) > 0:
				style = busyStyle
			}
			cells = append(cells, style.Render(cell))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	return b.String()
}

// renderDayList prints the items of a single day sorted by start time.
func renderDayList(date time.Time, items []*domain.Item) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(date.Format("Monday, January 2, 2006")))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(mutedStyle.Render("  no items"))
		b.WriteString("\n")
		return b.String()
	}

	sorted := make([]*domain.Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].AllDay != sorted[j].AllDay {
			return sorted[i].AllDay
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	for _, item := range sorted {
		b.WriteString("  ")
		b.WriteString(renderItemLine(item))
		b.WriteString("\n")
	}

	return b.String()
}

func renderItemLine(item *domain.Item) string {
	when := "all day"
	if !item.AllDay {
		when = item.Start.Format("15:04")
		if item.End != nil {
			when += "-" + item.End.Format("15:04")
		}
	}

	title := item.Title
	if item.Color != "" {
		title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(item.Color)).Render(title)
	} else {
		title = itemTitleStyle.Render(title)
	}

	return fmt.Sprintf("%s  %s %s", mutedStyle.Render(fmt.Sprintf("%-11s", when)), title, mutedStyle.Render("["+item.TypeKey+"]"))
}
