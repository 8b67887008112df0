// File: services/board/board.go
package board

import (
	"context"
	"errors"
	"sync"
	"time"

	"classboard/models"
	"classboard/services/broadcast"
	"classboard/services/grades"
	ai "classboard/services/intelligence"
	"classboard/services/schedule"
	"classboard/services/status"

	"go.uber.org/zap"
)

var (
	ErrUnknownView       = errors.New("unknown view")
	ErrResetNotConfirmed = errors.New("reset requires confirmation")
)

// subscriberBuffer is how many frames a slow subscriber may lag before frames are dropped.
const subscriberBuffer = 4

// Board is the application aggregate: it owns every service, the active view
// and the clock.
type Board struct {
	Schedule  *schedule.Service
	Broadcast *broadcast.Controller
	Ledger    *grades.Ledger
	Advisor   *ai.Advisor

	loc    *time.Location
	logger *zap.Logger

	mu   sync.RWMutex
	now  time.Time
	view models.View

	subMu  sync.Mutex
	nextID int
	subs   map[int]chan models.DisplayFrame
}

func New(sched *schedule.Service, bc *broadcast.Controller, ledger *grades.Ledger, advisor *ai.Advisor, loc *time.Location, logger *zap.Logger) *Board {
	if loc == nil {
		loc = time.Local
	}
	return &Board{
		Schedule:  sched,
		Broadcast: bc,
		Ledger:    ledger,
		Advisor:   advisor,
		loc:       loc,
		logger:    logger,
		now:       time.Now().In(loc),
		view:      models.View{Kind: models.ViewStatusDisplay},
		subs:      make(map[int]chan models.DisplayFrame),
	}
}

// Frame builds the display for now. An active broadcast replaces the status.
func (b *Board) Frame(now time.Time) models.DisplayFrame {
	now = now.In(b.loc)
	frame := models.DisplayFrame{
		Mode: models.DisplayModeStatus,
		Time: status.TimeString(now),
		Date: status.DateString(now),
	}
	if active := b.Broadcast.Active(); active != nil {
		frame.Mode = models.DisplayModeBroadcast
		frame.Broadcast = active
		return frame
	}
	slots, timetable := b.Schedule.Snapshot()
	st := status.Resolve(now, slots, timetable)
	frame.Status = &st
	return frame
}

// Now is the instant of the last tick.
func (b *Board) Now() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.now
}

// Current is the frame at the last tick instant.
func (b *Board) Current() models.DisplayFrame {
	return b.Frame(b.Now())
}

// Status resolves the schedule at the last tick instant, ignoring broadcasts.
func (b *Board) Status() models.Status {
	slots, timetable := b.Schedule.Snapshot()
	return status.Resolve(b.Now(), slots, timetable)
}

// Run drives the clock until ctx is done. It is the only ticker in the process.
func (b *Board) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	b.logger.Info("Board clock started", zap.Duration("interval", interval), zap.String("location", b.loc.String()))
	for {
		select {
		case <-ctx.Done():
			b.closeSubscribers()
			b.logger.Info("Board clock stopped")
			return
		case t := <-ticker.C:
			b.tick(t)
		}
	}
}

func (b *Board) tick(t time.Time) {
	t = t.In(b.loc)
	b.mu.Lock()
	b.now = t
	b.mu.Unlock()

	frame := b.Frame(t)

	b.subMu.Lock()
	defer b.subMu.Unlock()
	for id, ch := range b.subs {
		select {
		case ch <- frame:
		default:
			b.logger.Debug("Dropping frame for slow subscriber", zap.Int("subscriber", id))
		}
	}
}

// Subscribe registers for per-tick frames. The returned func unsubscribes
// and closes the channel; the channel is also closed when Run returns.
func (b *Board) Subscribe() (<-chan models.DisplayFrame, func()) {
	ch := make(chan models.DisplayFrame, subscriberBuffer)

	b.subMu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.subMu.Unlock()

	return ch, func() {
		b.subMu.Lock()
		defer b.subMu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
}

// closeSubscribers ends every stream once the clock stops.
func (b *Board) closeSubscribers() {
	b.subMu.Lock()
	defer b.subMu.Unlock()
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

// View returns the active view.
func (b *Board) View() models.View {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.view
}

// SetView switches the active view. Only grade-editor carries a semester id;
// when it is empty the first semester is used.
func (b *Board) SetView(v models.View) (models.View, error) {
	if !v.Kind.Valid() {
		return models.View{}, ErrUnknownView
	}
	if v.Kind != models.ViewGradeEditor {
		v.SemesterID = ""
	} else {
		if v.SemesterID == "" {
			semesters := b.Ledger.Semesters()
			if len(semesters) == 0 {
				return models.View{}, grades.ErrUnknownSemester
			}
			v.SemesterID = semesters[0].ID
		}
		if _, err := b.Ledger.Semester(v.SemesterID); err != nil {
			return models.View{}, err
		}
	}

	b.mu.Lock()
	b.view = v
	b.mu.Unlock()
	return v, nil
}

// RemoveSemester deletes a semester from the ledger. An editor view pointing
// at it falls back to the overview.
func (b *Board) RemoveSemester(ctx context.Context, id string) {
	b.Ledger.RemoveSemester(ctx, id)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.view.Kind == models.ViewGradeEditor && b.view.SemesterID == id {
		b.view = models.View{Kind: models.ViewGradeOverview}
	}
}

// Reset restores every default. Nothing happens unless confirm is true.
func (b *Board) Reset(ctx context.Context, confirm bool) error {
	if !confirm {
		return ErrResetNotConfirmed
	}
	b.Schedule.Reset(ctx)
	b.Broadcast.Reset()
	b.Ledger.Reset(ctx)
	b.Advisor.Reset()

	b.mu.Lock()
	b.view = models.View{Kind: models.ViewStatusDisplay}
	b.mu.Unlock()

	b.logger.Info("Board reset to defaults")
	return nil
}
