// File: services/schedule/service.go
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	settingsRepo "classboard/database/repository/settings"
	"classboard/models"

	"go.uber.org/zap"
)

// Keys of the two independently persisted blobs.
const (
	SlotsKey     = "schooltool_slots"
	TimetableKey = "schooltool_timetable"
)

var (
	ErrSlotNotFound     = errors.New("time slot not found")
	ErrInvalidTimeRange = errors.New("slot start must not be after its end")
	ErrInvalidClock     = errors.New("time must be formatted as HH:MM")
)

// Service owns the slot list and the weekly timetable. Every mutation is
// mirrored to the settings store; store failures are logged, never returned.
type Service struct {
	store  settingsRepo.Store
	logger *zap.Logger

	mu        sync.RWMutex
	slots     []models.TimeSlot
	timetable models.TimetableData
}

// NewService returns a service holding the defaults until Load is called.
func NewService(store settingsRepo.Store, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		logger:    logger,
		slots:     DefaultSlots(),
		timetable: DefaultTimetable(),
	}
}

// Load restores both blobs, falling back to the defaults for each one that is
// absent or unparsable.
func (s *Service) Load(ctx context.Context) {
	slots := s.loadSlots(ctx)
	timetable := s.loadTimetable(ctx)

	s.mu.Lock()
	s.slots = slots
	s.timetable = timetable
	s.mu.Unlock()
}

func (s *Service) loadSlots(ctx context.Context) []models.TimeSlot {
	raw, err := s.store.Get(ctx, SlotsKey)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrNotFound) {
			s.logger.Warn("schedule: reading slots failed, using defaults", zap.Error(err))
		}
		return DefaultSlots()
	}
	var slots []models.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil || slots == nil {
		s.logger.Warn("schedule: stored slots unparsable, using defaults", zap.Error(err))
		return DefaultSlots()
	}
	for _, slot := range slots {
		if !models.IsClock(slot.Start) || !models.IsClock(slot.End) || slot.Start > slot.End {
			s.logger.Warn("schedule: stored slot invalid, using defaults",
				zap.String("slot", slot.ID), zap.String("start", slot.Start), zap.String("end", slot.End))
			return DefaultSlots()
		}
	}
	return slots
}

func (s *Service) loadTimetable(ctx context.Context) models.TimetableData {
	raw, err := s.store.Get(ctx, TimetableKey)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrNotFound) {
			s.logger.Warn("schedule: reading timetable failed, using defaults", zap.Error(err))
		}
		return DefaultTimetable()
	}
	var tt models.TimetableData
	if err := json.Unmarshal(raw, &tt); err != nil {
		s.logger.Warn("schedule: stored timetable unparsable, using defaults", zap.Error(err))
		return DefaultTimetable()
	}
	if tt == nil {
		tt = DefaultTimetable()
	}
	// a null day row decodes to a nil map
	for day, row := range tt {
		if row == nil {
			tt[day] = map[string]string{}
		}
	}
	return tt
}

// ListSlots returns the slots in list order.
func (s *Service) ListSlots() []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TimeSlot(nil), s.slots...)
}

// Timetable returns a deep copy of the timetable.
func (s *Service) Timetable() models.TimetableData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timetable.Clone()
}

// Snapshot returns slots and timetable taken under the same lock.
func (s *Service) Snapshot() ([]models.TimeSlot, models.TimetableData) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TimeSlot(nil), s.slots...), s.timetable.Clone()
}

// SetSlotTime moves one or both boundaries of a slot. A nil boundary keeps its
// current value. The edit is refused, leaving state untouched, when the
// resulting start is after the end.
func (s *Service) SetSlotTime(ctx context.Context, id string, start, end *string) (models.TimeSlot, error) {
	for _, v := range []*string{start, end} {
		if v != nil && !models.IsClock(*v) {
			return models.TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidClock, *v)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, slot := range s.slots {
		if slot.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.TimeSlot{}, fmt.Errorf("%w: %s", ErrSlotNotFound, id)
	}

	updated := s.slots[idx]
	if start != nil {
		updated.Start = *start
	}
	if end != nil {
		updated.End = *end
	}
	if updated.Start > updated.End {
		return models.TimeSlot{}, fmt.Errorf("%w: %s > %s", ErrInvalidTimeRange, updated.Start, updated.End)
	}

	s.slots[idx] = updated
	s.persist(ctx, SlotsKey, s.slots)
	return updated, nil
}

// SetTimetableEntry writes one cell. Any string is accepted; "" means no class.
// The day is not range-checked here.
func (s *Service) SetTimetableEntry(ctx context.Context, day int, slotID, subject string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.timetable[day]
	if row == nil {
		row = make(map[string]string)
		s.timetable[day] = row
	}
	row[slotID] = subject
	s.persist(ctx, TimetableKey, s.timetable)
}

// Reset clears both persisted blobs and restores the defaults.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, SlotsKey, TimetableKey); err != nil {
		s.logger.Warn("schedule: clearing persisted settings failed", zap.Error(err))
	}
	s.slots = DefaultSlots()
	s.timetable = DefaultTimetable()
}

// persist must be called with s.mu held.
func (s *Service) persist(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("schedule: encoding settings failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		s.logger.Warn("schedule: saving settings failed", zap.String("key", key), zap.Error(err))
	}
}
