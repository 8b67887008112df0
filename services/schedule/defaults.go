package schedule

import "classboard/models"

// DefaultSlots is the day shape seeded on first run and restored by a reset.
func DefaultSlots() []models.TimeSlot {
	return []models.TimeSlot{
		{ID: "morning", Name: "晨光時間", Start: "07:30", End: "08:40"},
		{ID: "1", Name: "第一節", Start: "08:45", End: "09:25"},
		{ID: "2", Name: "第二節", Start: "09:35", End: "10:15"},
		{ID: "3", Name: "第三節", Start: "10:30", End: "11:10"},
		{ID: "4", Name: "第四節", Start: "11:20", End: "12:00"},
		{ID: "lunch", Name: "午餐休息", Start: "12:00", End: "13:20"},
		{ID: "5", Name: "第五節", Start: "13:30", End: "14:10"},
		{ID: "6", Name: "第六節", Start: "14:20", End: "15:00"},
		{ID: "7", Name: "第七節", Start: "15:15", End: "15:55"},
		{ID: "8", Name: "第八節", Start: "16:05", End: "16:45"},
		{ID: "9", Name: "第九節", Start: "16:55", End: "17:35"},
		{ID: "10", Name: "第十節", Start: "17:45", End: "18:25"},
	}
}

// DefaultTimetable is empty: every cell means "no class".
func DefaultTimetable() models.TimetableData {
	return models.TimetableData{}
}
