package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

// CanonicalSlot rewrites a "start-end" range so both hours have two digits,
// e.g. "9:00-9:50" -> "09:00-09:50". Minutes are kept as written.
// If the range does not parse, s is returned unchanged with ok=false.
func CanonicalSlot(s string) (canonical string, ok bool) {
	ends := strings.Split(s, "-")
	if len(ends) != 2 {
		return s, false
	}

	start, ok := padHour(ends[0])
	if !ok {
		return s, false
	}
	end, ok := padHour(ends[1])
	if !ok {
		return s, false
	}

	return start + "-" + end, true
}

// NormalizeSlot is CanonicalSlot without the flag. It never fails.
func NormalizeSlot(s string) string {
	canonical, _ := CanonicalSlot(s)
	return canonical
}

func padHour(endpoint string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(endpoint), ":")
	if len(parts) != 2 {
		return "", false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 {
		return "", false
	}

	return fmt.Sprintf("%02d:%s", hour, parts[1]), true
}
