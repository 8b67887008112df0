package models

import "time"

// FreePeriod is the timetable sentinel for "no class in this slot".
const FreePeriod = "(空堂)"

// ClockLayout is the minute-granularity wall-clock format used by slots.
const ClockLayout = "15:04"

// TimeSlot is a named interval of the school day. Start and End are "HH:MM",
// compared lexicographically; a slot never wraps past midnight.
type TimeSlot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether clock falls inside [Start, End], both ends inclusive.
func (s TimeSlot) Contains(clock string) bool {
	return clock >= s.Start && clock <= s.End
}

// TimetableData maps weekday (0 = Sunday) to slot id to subject.
type TimetableData map[int]map[string]string

// Subject returns the cell for (day, slotID), or "" when absent.
func (t TimetableData) Subject(day int, slotID string) string {
	return t[day][slotID]
}

// Clone returns a deep copy.
func (t TimetableData) Clone() TimetableData {
	out := make(TimetableData, len(t))
	for day, row := range t {
		cp := make(map[string]string, len(row))
		for id, subject := range row {
			cp[id] = subject
		}
		out[day] = cp
	}
	return out
}

// IsClock reports whether s is a zero-padded 24h "HH:MM" value.
func IsClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// UpdateSlotTimeRequest is the PATCH body for a slot. Absent fields keep their value.
type UpdateSlotTimeRequest struct {
	Start *string `json:"start" binding:"omitempty,clock"`
	End   *string `json:"end" binding:"omitempty,clock"`
}

// TimetableEntryRequest writes one timetable cell; an empty subject means no class.
type TimetableEntryRequest struct {
	Subject string `json:"subject"`
}

// ResetRequest guards the destructive full reset.
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}
