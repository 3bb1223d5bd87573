package timetable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicLine(t *testing.T) {
	assert.Equal(t, BasicEntry{Time: "9:00-9:50", Subject: "Physics"}, ParseBasicLine("9:00-9:50 : Physics"))
	assert.Equal(t, BasicEntry{Time: "9:00-9:50", Subject: "9:00-9:50"}, ParseBasicLine("9:00-9:50"))
	assert.Equal(t, BasicEntry{Time: "10:00-10:50", Subject: "Data Structures"}, ParseBasicLine("  10:00-10:50 :  Data Structures  "))

	// More than one separator falls back to the first part for both fields
	assert.Equal(t, BasicEntry{Time: "9:00-9:50", Subject: "9:00-9:50"}, ParseBasicLine("9:00-9:50 : A : B"))
}

func TestParseBasicLines(t *testing.T) {
	lines := []string{
		"9:00-9:50 : Physics",
		"Today",
		"",
		"10:00-10:50 : I",
		" 11:00-11:50 : Chemistry ",
		"12:00-12:50",
	}

	entries := ParseBasicLines(lines)

	require.Len(t, entries, 3)
	assert.Equal(t, BasicEntry{Time: "9:00-9:50", Subject: "Physics"}, entries[0])
	assert.Equal(t, BasicEntry{Time: "11:00-11:50", Subject: "Chemistry"}, entries[1])
	assert.Equal(t, BasicEntry{Time: "12:00-12:50", Subject: "12:00-12:50"}, entries[2])
}

func TestParseBasicLines_Empty(t *testing.T) {
	assert.Empty(t, ParseBasicLines(nil))
	assert.Empty(t, ParseBasicLines([]string{"no slots here", "10:00-10:50 : I"}))
}

func detailedRow(subject, room, teacher, slot string) []string {
	return []string{"1", subject, room, "CSE", "4", "L", "Core", teacher, slot}
}

func TestParseDetailedRow(t *testing.T) {
	tests := []struct {
		name     string
		cells    []string
		expected DetailedEntry
	}{
		{
			name:     "well formed",
			cells:    detailedRow(" Physics ", "ICT-101", " Dr. Rao ", "[9:00-9:50-MON]"),
			expected: DetailedEntry{Subject: "Physics", Room: "ICT-101", Teacher: "Dr. Rao", Time: "9:00-9:50", Day: "MON"},
		},
		{
			name:     "extra segments after day",
			cells:    detailedRow("Maths", "B-12", "Dr. Iyer", " [10:00-10:50-Tuesday-Lab] "),
			expected: DetailedEntry{Subject: "Maths", Room: "B-12", Teacher: "Dr. Iyer", Time: "10:00-10:50", Day: "Tuesday"},
		},
		{
			name:     "two segments",
			cells:    detailedRow("Maths", "B-12", "Dr. Iyer", "[10:00-10:50]"),
			expected: DetailedEntry{Subject: "Maths", Room: "B-12", Teacher: "Dr. Iyer", Time: NA, Day: NA},
		},
		{
			name:     "no brackets",
			cells:    detailedRow("Maths", "B-12", "Dr. Iyer", "10:00-10:50-MON"),
			expected: DetailedEntry{Subject: "Maths", Room: "B-12", Teacher: "Dr. Iyer", Time: NA, Day: NA},
		},
		{
			name:     "reversed brackets still stripped",
			cells:    detailedRow("Maths", "B-12", "Dr. Iyer", "]10:00-10:50-MON["),
			expected: DetailedEntry{Subject: "Maths", Room: "B-12", Teacher: "Dr. Iyer", Time: "10:00-10:50", Day: "MON"},
		},
		{
			name:     "only one bracket",
			cells:    detailedRow("Maths", "B-12", "Dr. Iyer", "[10:00-10:50-MON"),
			expected: DetailedEntry{Subject: "Maths", Room: "B-12", Teacher: "Dr. Iyer", Time: NA, Day: NA},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDetailedRow(tt.cells)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDetailedRow_Short(t *testing.T) {
	_, err := ParseDetailedRow([]string{"1", "Physics", "ICT-101", "", "", "", "", "Dr. Rao"})
	assert.True(t, errors.Is(err, ErrShortRow))

	_, err = ParseDetailedRow(nil)
	assert.ErrorIs(t, err, ErrShortRow)
}

func TestParseDetailedRows_KeepsGoingPastBadRows(t *testing.T) {
	rows := [][]string{
		{"header only"},
		detailedRow("Physics", "ICT-101", "Dr. Rao", "[9:00-9:50-MON]"),
		{},
		detailedRow("Maths", "B-12", "Dr. Iyer", "garbled"),
	}

	results := ParseDetailedRows(rows)
	require.Len(t, results, 4)

	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}
	assert.ErrorIs(t, results[0].Err, ErrShortRow)
	assert.NoError(t, results[1].Err)
	assert.ErrorIs(t, results[2].Err, ErrShortRow)
	assert.NoError(t, results[3].Err)

	entries := Entries(results)
	require.Len(t, entries, 2)
	assert.Equal(t, "Physics", entries[0].Subject)
	assert.Equal(t, NA, entries[1].Time)
}
