package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"gitamctl/pkg/timetable"
)

func TestGenerateICS(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skipf("timezone data not available: %v", err)
	}
	day := time.Date(2026, time.March, 2, 6, 30, 0, 0, loc)

	entries := []timetable.ScheduleEntry{
		{Time: "9:00-9:50", Subject: "Physics", Room: "ICT-101", Teacher: "Dr. Rao", Day: "Monday"},
		{Time: timetable.NA, Subject: "Unknown", Room: timetable.NA, Teacher: timetable.NA, Day: "Monday"},
	}

	var buf bytes.Buffer
	if err := GenerateICS(entries, day, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Physics") {
		t.Errorf("Expected ICS to contain class summary, got: \n%s", output)
	}
	if !strings.Contains(output, "LOCATION:ICT-101") {
		t.Errorf("Expected ICS to contain room location")
	}
	if strings.Contains(output, "SUMMARY:Unknown") {
		t.Errorf("Expected class without a readable slot to be skipped")
	}

	// 02-Mar-2026 09:00 IST is 03:30 UTC.
	if !strings.Contains(output, "DTSTART:20260302T033000Z") {
		t.Errorf("Expected start time string in ICS (should be UTC), got: \n%s", output)
	}
}

func TestGenerateICS_StableUIDs(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	entries := []timetable.ScheduleEntry{{Time: "9:00-9:50", Subject: "Physics"}}

	var first, second bytes.Buffer
	if err := GenerateICS(entries, day, &first); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	if err := GenerateICS(entries, day, &second); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	uid := func(s string) string {
		for _, line := range strings.Split(s, "\n") {
			if strings.HasPrefix(line, "UID:") {
				return strings.TrimSpace(line)
			}
		}
		return ""
	}

	if uid(first.String()) == "" || uid(first.String()) != uid(second.String()) {
		t.Errorf("expected identical non-empty UIDs, got %q and %q", uid(first.String()), uid(second.String()))
	}
}
