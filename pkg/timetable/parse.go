package timetable

import (
	"fmt"
	"strings"
)

const basicSeparator = " : "

// slotColumn holds the "[start-end-day]" descriptor in the registered courses table
const slotColumn = 8

// IsCandidateLine reports whether a scraped line can hold a time slot at all
func IsCandidateLine(line string) bool {
	return strings.Contains(line, ":")
}

// ParseBasicLine splits "9:00-9:50 : Physics" into time and subject.
// Without the separator the whole line is used as both.
func ParseBasicLine(line string) BasicEntry {
	parts := strings.Split(strings.TrimSpace(line), basicSeparator)
	if len(parts) == 2 {
		return BasicEntry{
			Time:    strings.TrimSpace(parts[0]),
			Subject: strings.TrimSpace(parts[1]),
		}
	}

	slot := strings.TrimSpace(parts[0])
	return BasicEntry{Time: slot, Subject: slot}
}

// ParseBasicLines turns the day view into entries, dropping free periods
func ParseBasicLines(lines []string) []BasicEntry {
	var entries []BasicEntry
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !IsCandidateLine(line) {
			continue
		}

		entry := ParseBasicLine(line)
		if entry.Subject == FreePeriod {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// ParseDetailedRow reads subject, room and teacher from columns 1, 2 and 7,
// and time and day from the bracketed descriptor in column 8.
func ParseDetailedRow(cells []string) (DetailedEntry, error) {
	if len(cells) <= slotColumn {
		return DetailedEntry{}, ErrShortRow
	}

	slot, day := splitDescriptor(strings.TrimSpace(cells[slotColumn]))
	return DetailedEntry{
		Subject: strings.TrimSpace(cells[1]),
		Room:    strings.TrimSpace(cells[2]),
		Teacher: strings.TrimSpace(cells[7]),
		Time:    slot,
		Day:     day,
	}, nil
}

// splitDescriptor turns "[9:00-9:50-MON]" into ("9:00-9:50", "MON"). A
// descriptor holding both brackets loses its first and last character.
// Anything with fewer than three dash separated parts yields NA for both.
func splitDescriptor(descriptor string) (slot, day string) {
	if !strings.Contains(descriptor, "[") || !strings.Contains(descriptor, "]") {
		return NA, NA
	}

	r := []rune(descriptor)
	parts := strings.Split(string(r[1:len(r)-1]), "-")
	if len(parts) < 3 {
		return NA, NA
	}

	return parts[0] + "-" + parts[1], strings.TrimSpace(parts[2])
}

// ParseDetailedRows parses every row independently. A row that fails, or
// panics, is reported in its RowResult and does not stop the batch.
func ParseDetailedRows(rows [][]string) []RowResult {
	results := make([]RowResult, 0, len(rows))
	for i, cells := range rows {
		results = append(results, parseRow(i, cells))
	}
	return results
}

func parseRow(index int, cells []string) (result RowResult) {
	result.Index = index
	defer func() {
		if r := recover(); r != nil {
			result.Entry = DetailedEntry{}
			result.Err = fmt.Errorf("row %d: %v", index, r)
		}
	}()

	result.Entry, result.Err = ParseDetailedRow(cells)
	return result
}

// Entries returns the successfully parsed rows, in order
func Entries(results []RowResult) []DetailedEntry {
	var entries []DetailedEntry
	for _, r := range results {
		if r.Err == nil {
			entries = append(entries, r.Entry)
		}
	}
	return entries
}
