package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gitamctl/pkg/timetable"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// eventNamespace seeds deterministic event UIDs so re-exporting a day
// updates the calendar instead of duplicating it
var eventNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/gitamctl/events"))

// GenerateICS writes one event per class on day's date. Classes whose slot
// cannot be read as a clock range (e.g. "N/A") are skipped.
func GenerateICS(entries []timetable.ScheduleEntry, day time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	date := day.Format("2006-01-02")
	now := time.Now()

	for _, e := range entries {
		start, end, ok := slotTimes(e.Time, day)
		if !ok {
			continue
		}

		uid := uuid.NewSHA1(eventNamespace, []byte(date+"|"+timetable.NormalizeSlot(e.Time)+"|"+e.Subject))
		event := cal.AddEvent(uid.String())
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(e.Subject)
		event.SetLocation(e.Room)
		event.SetDescription(fmt.Sprintf("Teacher: %s\nDay: %s", e.Teacher, e.Day))
	}

	return cal.SerializeTo(w)
}

func slotTimes(slot string, day time.Time) (time.Time, time.Time, bool) {
	canonical, ok := timetable.CanonicalSlot(slot)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	ends := strings.Split(canonical, "-")
	loc := day.Location()
	date := day.Format("2006-01-02")

	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+ends[0], loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", date+" "+ends[1], loc)
	if err != nil || !end.After(start) {
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}
