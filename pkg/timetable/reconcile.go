package timetable

import "strings"

// SameDay compares two weekday labels by their first three letters,
// ignoring case, so "MON", "Mon" and "Monday" are all the same day.
func SameDay(a, b string) bool {
	return dayPrefix(a) == dayPrefix(b)
}

func dayPrefix(day string) string {
	r := []rune(strings.ToUpper(day))
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

// Reconcile enriches each basic entry with room and teacher from the first
// detailed entry on currentDay that shares its normalized time slot. A match
// copies room and teacher as found, empty cells included; its subject is
// used only when non-empty.
//
// The basic list decides what exists today: the result has exactly one entry
// per basic entry, in the same order. Detailed entries without a basic
// counterpart are dropped.
func Reconcile(basic []BasicEntry, detailed []DetailedEntry, currentDay string) []ScheduleEntry {
	var today []DetailedEntry
	for _, d := range detailed {
		if SameDay(d.Day, currentDay) {
			today = append(today, d)
		}
	}

	schedule := make([]ScheduleEntry, 0, len(basic))
	for _, b := range basic {
		entry := ScheduleEntry{
			Time:    b.Time,
			Subject: b.Subject,
			Room:    NA,
			Teacher: NA,
			Day:     currentDay,
		}

		slot := NormalizeSlot(b.Time)
		for _, d := range today {
			if NormalizeSlot(d.Time) != slot {
				continue
			}
			entry.Room = d.Room
			entry.Teacher = d.Teacher
			if d.Subject != "" {
				entry.Subject = d.Subject
			}
			entry.Matched = true
			break
		}

		schedule = append(schedule, entry)
	}

	return schedule
}
