package timetable

import "errors"

// NA marks a field the source did not provide enough structure to extract.
// It is distinct from an empty string.
const NA = "N/A"

// FreePeriod is the subject the portal shows for an idle slot
const FreePeriod = "I"

// ErrShortRow is reported for registered-course rows without a slot column
var ErrShortRow = errors.New("row has fewer than 9 columns")

// BasicEntry is one line of the day view on the portal, e.g. "9:00-9:50 : Physics"
type BasicEntry struct {
	Time    string
	Subject string
}

// DetailedEntry is one row of the registered courses table
type DetailedEntry struct {
	Subject string
	Room    string
	Teacher string
	Time    string // "9:00-9:50", or NA
	Day     string // "MON", "Monday", or NA
}

// ScheduleEntry is a reconciled class for the current day
type ScheduleEntry struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Room    string `json:"room"`
	Teacher string `json:"teacher"`
	Day     string `json:"day"`

	// Matched is set when a detailed row contributed room and teacher
	Matched bool `json:"-"`
}

// RowResult is the outcome of parsing a single detailed row.
// A non-nil Err means the row was skipped.
type RowResult struct {
	Index int
	Entry DetailedEntry
	Err   error
}
