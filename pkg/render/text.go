package render

import (
	"fmt"
	"io"
	"time"

	"gitamctl/pkg/timetable"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

// MaxCellWidth is where long subjects and teacher names get wrapped
const MaxCellWidth = 30

// NoClassesText replaces the table when there is nothing scheduled
const NoClassesText = "No classes scheduled for today."

// DateLayout renders e.g. "Monday, January 02, 2006"
const DateLayout = "Monday, January 02, 2006"

var headers = []string{"Time", "Subject", "Room", "Teacher", "Day"}

// plain never emits escape sequences, whatever the terminal supports
var plain = newPlainRenderer()

func newPlainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

type textStyles struct {
	header lipgloss.Style
	cell   lipgloss.Style
	wrap   lipgloss.Style
	border lipgloss.Style
}

func stylesFor(r *lipgloss.Renderer) textStyles {
	return textStyles{
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1).Align(lipgloss.Left),
		wrap:   r.NewStyle().Width(MaxCellWidth),
		border: r.NewStyle(),
	}
}

// Title is the heading used above the plain text schedule
func Title(date time.Time) string {
	return fmt.Sprintf("Class Schedule for %s", date.Format(DateLayout))
}

// Text renders the schedule as a bordered, left aligned table for the terminal
func Text(entries []timetable.ScheduleEntry) string {
	return renderText(lipgloss.DefaultRenderer(), entries)
}

// PlainText is Text without any ANSI styling, for email bodies and files
func PlainText(entries []timetable.ScheduleEntry) string {
	return renderText(plain, entries)
}

func renderText(r *lipgloss.Renderer, entries []timetable.ScheduleEntry) string {
	if len(entries) == 0 {
		return NoClassesText
	}

	st := stylesFor(r)
	wrap := func(cell string) string {
		if lipgloss.Width(cell) <= MaxCellWidth {
			return cell
		}
		return st.wrap.Render(cell)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			wrap(e.Time),
			wrap(e.Subject),
			wrap(e.Room),
			wrap(e.Teacher),
			wrap(e.Day),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return st.cell
		})

	return t.String()
}
