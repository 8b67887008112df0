// File: services/grades/ledger.go
package grades

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ledgerRepo "classboard/database/repository/ledger"
	"classboard/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnknownSemester = errors.New("semester not found")

// Categories offered by the course editor. Other strings are accepted too.
var Categories = []string{"必修", "選修", "通識", "體育", "其他"}

// DefaultSemesters is the seed ledger.
func DefaultSemesters() []models.Semester {
	return []models.Semester{
		{ID: "sem-113-1", Title: "113 學年度 上學期", Courses: []models.Course{}},
		{ID: "sem-113-2", Title: "113 學年度 下學期", Courses: []models.Course{}},
	}
}

// Ledger owns the semesters. Aggregates are never stored; callers pass a
// snapshot to the pure functions in aggregates.go.
type Ledger struct {
	repo   ledgerRepo.LedgerRepository
	logger *zap.Logger

	mu        sync.RWMutex
	semesters []models.Semester
}

func NewLedger(repo ledgerRepo.LedgerRepository, logger *zap.Logger) *Ledger {
	return &Ledger{repo: repo, logger: logger, semesters: DefaultSemesters()}
}

// Load restores the ledger from the repository. A failing repository leaves
// the seed in place; an empty one is seeded.
func (l *Ledger) Load(ctx context.Context) {
	stored, err := l.repo.List(ctx)
	if err != nil {
		l.logger.Warn("grades: loading ledger failed, using seed", zap.Error(err))
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(stored) == 0 {
		// write the seed through so later per-semester saves land next to it
		for i := range l.semesters {
			l.save(ctx, i)
		}
		return
	}
	l.semesters = stored
}

// Semesters returns a deep copy in list order.
func (l *Ledger) Semesters() []models.Semester {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Semester, len(l.semesters))
	for i, s := range l.semesters {
		out[i] = cloneSemester(s)
	}
	return out
}

// Semester returns one semester by id.
func (l *Ledger) Semester(id string) (models.Semester, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx := l.indexOf(id)
	if idx < 0 {
		return models.Semester{}, fmt.Errorf("%w: %s", ErrUnknownSemester, id)
	}
	return cloneSemester(l.semesters[idx]), nil
}

// AllCourses returns every course, semester order then insertion order.
func (l *Ledger) AllCourses() []models.Course {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Flatten(l.semesters)
}

// AddSemester appends an empty semester.
func (l *Ledger) AddSemester(ctx context.Context, title string) models.Semester {
	sem := models.Semester{ID: uuid.New().String(), Title: title, Courses: []models.Course{}}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.semesters = append(l.semesters, sem)
	l.save(ctx, len(l.semesters)-1)
	return cloneSemester(sem)
}

// RemoveSemester deletes a semester; unknown ids are a no-op.
func (l *Ledger) RemoveSemester(ctx context.Context, id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.indexOf(id)
	if idx < 0 {
		return
	}
	l.semesters = append(l.semesters[:idx:idx], l.semesters[idx+1:]...)
	if err := l.repo.Delete(ctx, id); err != nil {
		l.logger.Warn("grades: deleting semester failed", zap.String("semesterID", id), zap.Error(err))
	}
	// later semesters moved up one position
	for i := idx; i < len(l.semesters); i++ {
		l.save(ctx, i)
	}
}

// AddCourse appends a course with a fresh id. It fails without touching any
// semester when semesterID is unknown.
func (l *Ledger) AddCourse(ctx context.Context, semesterID string, in models.NewCourse) (models.Course, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.indexOf(semesterID)
	if idx < 0 {
		return models.Course{}, fmt.Errorf("%w: %s", ErrUnknownSemester, semesterID)
	}

	course := models.Course{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Credits:  in.Credits,
		Score:    in.Score,
		Category: in.Category,
	}
	sem := &l.semesters[idx]
	sem.Courses = append(sem.Courses[:len(sem.Courses):len(sem.Courses)], course)
	l.save(ctx, idx)
	return course, nil
}

// RemoveCourse deletes a course by id. Unknown semester or course ids are a no-op.
func (l *Ledger) RemoveCourse(ctx context.Context, semesterID, courseID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.indexOf(semesterID)
	if idx < 0 {
		return
	}
	sem := &l.semesters[idx]
	for i, c := range sem.Courses {
		if c.ID == courseID {
			sem.Courses = append(sem.Courses[:i:i], sem.Courses[i+1:]...)
			l.save(ctx, idx)
			return
		}
	}
}

// Reset replaces the durable copy with the seed.
func (l *Ledger) Reset(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.repo.Clear(ctx); err != nil {
		l.logger.Warn("grades: clearing ledger failed", zap.Error(err))
	}
	l.semesters = DefaultSemesters()
	for i := range l.semesters {
		l.save(ctx, i)
	}
}

// save must be called with l.mu held.
func (l *Ledger) save(ctx context.Context, idx int) {
	sem := l.semesters[idx]
	if err := l.repo.Save(ctx, idx, cloneSemester(sem)); err != nil {
		l.logger.Warn("grades: saving semester failed", zap.String("semesterID", sem.ID), zap.Error(err))
	}
}

// indexOf must be called with l.mu held.
func (l *Ledger) indexOf(id string) int {
	for i, s := range l.semesters {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func cloneSemester(s models.Semester) models.Semester {
	courses := make([]models.Course, len(s.Courses))
	copy(courses, s.Courses)
	s.Courses = courses
	return s
}
