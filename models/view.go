package models

// ViewKind tags the active surface.
type ViewKind string

const (
	ViewStatusDisplay ViewKind = "status-display"
	ViewGradeOverview ViewKind = "grade-overview"
	ViewGradeEditor   ViewKind = "grade-editor"
	ViewAdvisoryChat  ViewKind = "advisory-chat"
)

// Valid reports whether k is a known view.
func (k ViewKind) Valid() bool {
	switch k {
	case ViewStatusDisplay, ViewGradeOverview, ViewGradeEditor, ViewAdvisoryChat:
		return true
	}
	return false
}

// View is the active-view variant. SemesterID is the payload of grade-editor
// and is empty for every other kind.
type View struct {
	Kind       ViewKind `json:"kind" binding:"required"`
	SemesterID string   `json:"semesterId,omitempty"`
}
