package daily

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gitamctl/pkg/render"
	"gitamctl/pkg/timetable"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Subject is the subject line of the daily email
const Subject = "Your Daily Class Schedule"

// Source yields the two raw views of the timetable
type Source interface {
	FetchBasicLines(ctx context.Context) ([]string, error)
	FetchDetailedRows(ctx context.Context) ([][]string, error)
}

// Email is a rendered schedule ready for delivery
type Email struct {
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a rendered email
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// Report is everything one run collected about the day. Date is the
// calendar date of Day; zero means today.
type Report struct {
	Day      string
	Date     time.Time
	Basic    []timetable.BasicEntry
	Detailed []timetable.DetailedEntry
	Skipped  []timetable.RowResult
	Entries  []timetable.ScheduleEntry
}

// Matched counts the entries enriched from the detailed view
func (r *Report) Matched() int {
	n := 0
	for _, e := range r.Entries {
		if e.Matched {
			n++
		}
	}
	return n
}

// Today returns the weekday name to reconcile against. A non-empty override
// such as "tuesday" wins over the clock.
func Today(now time.Time, override string) string {
	override = strings.TrimSpace(override)
	if override == "" {
		return now.Weekday().String()
	}
	return cases.Title(language.English).String(strings.ToLower(override))
}

// DateOf returns the first date on or after now that falls on day. A day
// that names no weekday gives now.
func DateOf(now time.Time, day string) time.Time {
	for i := 0; i < 7; i++ {
		d := now.AddDate(0, 0, i)
		if timetable.SameDay(d.Weekday().String(), day) {
			return d
		}
	}
	return now
}

// Build fetches both views and reconciles them for day. The detailed view is
// only fetched when the day view lists at least one class.
func Build(ctx context.Context, src Source, day string, logger *log.Logger) (*Report, error) {
	report := &Report{Day: day, Entries: []timetable.ScheduleEntry{}}

	lines, err := src.FetchBasicLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect basic timetable: %w", err)
	}
	report.Basic = timetable.ParseBasicLines(lines)
	logger.Debug("collected basic timetable", "lines", len(lines), "entries", len(report.Basic))

	if len(report.Basic) == 0 {
		logger.Info("no classes listed for today", "day", day)
		return report, nil
	}

	rows, err := src.FetchDetailedRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect detailed timetable: %w", err)
	}

	results := timetable.ParseDetailedRows(rows)
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		report.Skipped = append(report.Skipped, r)
		if errors.Is(r.Err, timetable.ErrShortRow) {
			logger.Debug("skipping detailed row", "row", r.Index, "reason", r.Err)
		} else {
			logger.Warn("error processing row", "row", r.Index, "err", r.Err)
		}
	}
	report.Detailed = timetable.Entries(results)

	report.Entries = timetable.Reconcile(report.Basic, report.Detailed, day)
	logger.Info("reconciled timetable",
		"day", day,
		"classes", len(report.Entries),
		"matched", report.Matched(),
		"skipped_rows", len(report.Skipped),
	)

	return report, nil
}

// Compose renders the schedule into the daily email
func Compose(entries []timetable.ScheduleEntry, date time.Time) (Email, error) {
	html, err := render.HTML(entries, date)
	if err != nil {
		return Email{}, err
	}

	text := render.Title(date) + "\n\n" + render.PlainText(entries)
	return Email{Subject: Subject, HTML: html, Text: text}, nil
}

// Deliver emails the report. An empty schedule is not sent and reports false.
func Deliver(ctx context.Context, sender Sender, report *Report, date time.Time, logger *log.Logger) (bool, error) {
	if len(report.Entries) == 0 {
		logger.Info("no matching timetable entries found for today, skipping email")
		return false, nil
	}

	email, err := Compose(report.Entries, date)
	if err != nil {
		return false, err
	}

	if err := sender.Send(ctx, email); err != nil {
		return false, fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info("email sent", "classes", len(report.Entries))
	return true, nil
}
