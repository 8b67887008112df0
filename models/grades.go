package models

// Course is one scored, credit-weighted entry of a semester.
type Course struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Credits  float64 `json:"credits" bson:"credits"`
	Score    float64 `json:"score" bson:"score"`
	Category string  `json:"category" bson:"category"`
}

// Semester groups courses in insertion order.
type Semester struct {
	ID      string   `json:"id" bson:"id"`
	Title   string   `json:"title" bson:"title"`
	Courses []Course `json:"courses" bson:"courses"`
}

// NewCourse is a course before the ledger assigns it an id.
type NewCourse struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Credits  float64 `json:"credits" binding:"gte=0"`
	Score    float64 `json:"score" binding:"gte=0,lte=100"`
	Category string  `json:"category" binding:"max=20"`
}

// SemesterRequest creates a semester.
type SemesterRequest struct {
	Title string `json:"title" binding:"required,max=100"`
}

// CategoryCount is one slice of the category distribution.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"value"`
}

// TrendPoint is one semester's weighted average.
type TrendPoint struct {
	SemesterID string  `json:"semesterId"`
	Label      string  `json:"name"`
	Average    float64 `json:"score"`
}

// SemesterSummary is what the calculator shows for one semester.
type SemesterSummary struct {
	SemesterID   string  `json:"semesterId"`
	Title        string  `json:"title"`
	CourseCount  int     `json:"courseCount"`
	TotalCredits float64 `json:"totalCredits"`
	Average      float64 `json:"average"`
	GPA          float64 `json:"gpa"`
}

// LedgerSummary is what the overview dashboard shows across all semesters.
type LedgerSummary struct {
	CourseCount  int             `json:"courseCount"`
	TotalCredits float64         `json:"totalCredits"`
	Average      float64         `json:"average"`
	GPA          float64         `json:"gpa"`
	Categories   []CategoryCount `json:"categories"`
	Trend        []TrendPoint    `json:"trend"`
	Recent       []Course        `json:"recent"`
}
