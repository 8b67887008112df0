// Package status derives what the board shows for a given instant.
package status

import (
	"fmt"
	"time"

	"classboard/models"
)

// DayNames are the weekday labels, Sunday first.
var DayNames = [7]string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}

// Resolve picks the first slot, in list order, whose inclusive [start, end]
// contains now's HH:MM, then looks up the subject for now's weekday.
// Overlapping slots are not an error; list order decides.
func Resolve(now time.Time, slots []models.TimeSlot, timetable models.TimetableData) models.Status {
	clock := ClockString(now)

	for _, slot := range slots {
		if !slot.Contains(clock) {
			continue
		}
		subject := timetable.Subject(int(now.Weekday()), slot.ID)
		if subject == "" || subject == models.FreePeriod {
			return models.Status{Name: slot.Name, Label: slot.Name, SlotID: slot.ID}
		}
		return models.Status{Name: slot.Name, Label: subject, IsClass: true, SlotID: slot.ID}
	}

	return models.Status{Name: models.OffHoursName, Label: models.OffHoursLabel}
}

// ClockString formats now at minute granularity.
func ClockString(now time.Time) string {
	return now.Format(models.ClockLayout)
}

// TimeString is the large clock on the board.
func TimeString(now time.Time) string {
	return now.Format("15:04:05")
}

// DateString renders the Republic-of-China calendar line, e.g. 民國113年10月17日 週四.
func DateString(now time.Time) string {
	return fmt.Sprintf("民國%d年%02d月%02d日 %s", now.Year()-1911, int(now.Month()), now.Day(), DayName(now.Weekday()))
}

// DayName returns the label for a weekday.
func DayName(d time.Weekday) string {
	return DayNames[int(d)%7]
}
