// File: database/repository/ledger/memory.go
package ledgerRepo

import (
	"context"
	"sort"
	"sync"

	"classboard/models"
)

type memoryEntry struct {
	position int
	semester models.Semester
}

// MemoryRepository keeps the ledger for the process lifetime only.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]memoryEntry)}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Semester, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]memoryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].position < entries[j].position })

	out := make([]models.Semester, len(entries))
	for i, e := range entries {
		out[i] = cloneSemester(e.semester)
	}
	return out, nil
}

func (r *MemoryRepository) Save(_ context.Context, position int, semester models.Semester) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[semester.ID] = memoryEntry{position: position, semester: cloneSemester(semester)}
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, semesterID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, semesterID)
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]memoryEntry)
	return nil
}

func cloneSemester(s models.Semester) models.Semester {
	courses := make([]models.Course, len(s.Courses))
	copy(courses, s.Courses)
	s.Courses = courses
	return s
}
