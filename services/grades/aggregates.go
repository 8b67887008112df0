// File: services/grades/aggregates.go
package grades

import (
	"strings"

	"classboard/models"
)

// TotalCredits sums the credits of courses.
func TotalCredits(courses []models.Course) float64 {
	var total float64
	for _, c := range courses {
		total += c.Credits
	}
	return total
}

// WeightedAverage is sum(score*credits)/sum(credits), or 0 when there are no credits.
func WeightedAverage(courses []models.Course) float64 {
	total := TotalCredits(courses)
	if total <= 0 {
		return 0
	}
	var weighted float64
	for _, c := range courses {
		weighted += c.Score * c.Credits
	}
	return weighted / total
}

// GradePoint maps a score onto the 4.0 scale.
func GradePoint(score float64) float64 {
	switch {
	case score >= 80:
		return 4.0
	case score >= 70:
		return 3.0
	case score >= 60:
		return 2.0
	case score >= 50:
		return 1.0
	default:
		return 0.0
	}
}

// GPA is the credit-weighted mean grade point, or 0 when there are no credits.
func GPA(courses []models.Course) float64 {
	total := TotalCredits(courses)
	if total <= 0 {
		return 0
	}
	var weighted float64
	for _, c := range courses {
		weighted += GradePoint(c.Score) * c.Credits
	}
	return weighted / total
}

// CategoryDistribution counts courses per category, ordered by first occurrence.
func CategoryDistribution(courses []models.Course) []models.CategoryCount {
	out := []models.CategoryCount{}
	index := make(map[string]int)
	for _, c := range courses {
		i, ok := index[c.Category]
		if !ok {
			i = len(out)
			index[c.Category] = i
			out = append(out, models.CategoryCount{Name: c.Category})
		}
		out[i].Count++
	}
	return out
}

// Trend yields one weighted average per semester, in list order.
func Trend(semesters []models.Semester) []models.TrendPoint {
	out := make([]models.TrendPoint, 0, len(semesters))
	for _, s := range semesters {
		out = append(out, models.TrendPoint{
			SemesterID: s.ID,
			Label:      TrendLabel(s.Title),
			Average:    WeightedAverage(s.Courses),
		})
	}
	return out
}

// TrendLabel shortens "113 學年度 上學期" to "113 上學期". Titles with fewer
// than three words are used as-is.
func TrendLabel(title string) string {
	words := strings.Fields(title)
	if len(words) < 3 {
		return title
	}
	return words[0] + " " + words[2]
}

// RecentCourses returns the last n courses, newest first.
func RecentCourses(courses []models.Course, n int) []models.Course {
	if n > len(courses) {
		n = len(courses)
	}
	out := make([]models.Course, 0, n)
	for i := len(courses) - 1; i >= len(courses)-n; i-- {
		out = append(out, courses[i])
	}
	return out
}

// Flatten concatenates courses in semester order.
func Flatten(semesters []models.Semester) []models.Course {
	var out []models.Course
	for _, s := range semesters {
		out = append(out, s.Courses...)
	}
	return out
}

// Summarize computes the overview dashboard.
func Summarize(semesters []models.Semester) models.LedgerSummary {
	all := Flatten(semesters)
	return models.LedgerSummary{
		CourseCount:  len(all),
		TotalCredits: TotalCredits(all),
		Average:      WeightedAverage(all),
		GPA:          GPA(all),
		Categories:   CategoryDistribution(all),
		Trend:        Trend(semesters),
		Recent:       RecentCourses(all, recentCourseCount),
	}
}

// SummarizeSemester computes the calculator header for one semester.
func SummarizeSemester(s models.Semester) models.SemesterSummary {
	return models.SemesterSummary{
		SemesterID:   s.ID,
		Title:        s.Title,
		CourseCount:  len(s.Courses),
		TotalCredits: TotalCredits(s.Courses),
		Average:      WeightedAverage(s.Courses),
		GPA:          GPA(s.Courses),
	}
}

const recentCourseCount = 5
