package schedule

import (
	"context"
	"errors"
	"testing"

	settingsRepo "classboard/database/repository/settings"
	"classboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct {
	getErr error
	setErr error
}

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.getErr }
func (f failingStore) Set(context.Context, string, []byte) error   { return f.setErr }
func (f failingStore) Delete(context.Context, ...string) error      { return f.setErr }

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) (*Service, *settingsRepo.MemoryStore) {
	t.Helper()
	store := settingsRepo.NewMemoryStore()
	svc := NewService(store, zap.NewNop())
	svc.Load(context.Background())
	return svc, store
}

func TestLoad_DefaultsWhenAbsent(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, DefaultSlots(), svc.ListSlots())
	assert.Empty(t, svc.Timetable())
}

func TestLoad_DefaultsWhenUnparsable(t *testing.T) {
	ctx := context.Background()
	store := settingsRepo.NewMemoryStore()
	require.NoError(t, store.Set(ctx, SlotsKey, []byte("{not json")))
	require.NoError(t, store.Set(ctx, TimetableKey, []byte(`{"1":{"1":"國語"}}`)))

	svc := NewService(store, zap.NewNop())
	svc.Load(ctx)

	assert.Equal(t, DefaultSlots(), svc.ListSlots())
	assert.Equal(t, "國語", svc.Timetable().Subject(1, "1"), "each blob falls back independently")
}

func TestLoad_DefaultsWhenStoreFails(t *testing.T) {
	svc := NewService(failingStore{getErr: errors.New("connection refused")}, zap.NewNop())
	svc.Load(context.Background())
	assert.Equal(t, DefaultSlots(), svc.ListSlots())
}

func TestLoad_NullDayRowStaysEditable(t *testing.T) {
	ctx := context.Background()
	store := settingsRepo.NewMemoryStore()
	require.NoError(t, store.Set(ctx, TimetableKey, []byte(`{"4":null,"1":{"1":"國語"}}`)))

	svc := NewService(store, zap.NewNop())
	svc.Load(ctx)

	require.NotPanics(t, func() { svc.SetTimetableEntry(ctx, 4, "1", "數學") })
	assert.Equal(t, "數學", svc.Timetable().Subject(4, "1"))
	assert.Equal(t, "國語", svc.Timetable().Subject(1, "1"))
}

func TestLoad_DefaultsWhenStoredSlotInvalid(t *testing.T) {
	cases := map[string]string{
		"inverted range":  `[{"id":"1","name":"第一節","start":"09:25","end":"08:45"}]`,
		"malformed clock": `[{"id":"1","name":"第一節","start":"8:45","end":"09:25"}]`,
	}
	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := settingsRepo.NewMemoryStore()
			require.NoError(t, store.Set(ctx, SlotsKey, []byte(blob)))

			svc := NewService(store, zap.NewNop())
			svc.Load(ctx)
			assert.Equal(t, DefaultSlots(), svc.ListSlots())
		})
	}
}

func TestSetSlotTime(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	slot, err := svc.SetSlotTime(ctx, "1", strPtr("08:50"), nil)
	require.NoError(t, err)
	assert.Equal(t, "08:50", slot.Start)
	assert.Equal(t, "09:25", slot.End)

	slot, err = svc.SetSlotTime(ctx, "1", nil, strPtr("08:50"))
	require.NoError(t, err, "start == end is allowed")
	assert.Equal(t, "08:50", slot.End)
}

func TestSetSlotTime_RejectsInvertedRange(t *testing.T) {
	svc, _ := newTestService(t)
	before := svc.ListSlots()

	_, err := svc.SetSlotTime(context.Background(), "1", strPtr("09:30"), nil)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
	assert.Equal(t, before, svc.ListSlots())
}

func TestSetSlotTime_RejectsUnknownSlotAndBadClock(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SetSlotTime(context.Background(), "nope", strPtr("08:00"), nil)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = svc.SetSlotTime(context.Background(), "1", strPtr("8:00"), nil)
	assert.ErrorIs(t, err, ErrInvalidClock)
}

func TestSetTimetableEntry(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.SetTimetableEntry(ctx, 1, "1", "數學")
	svc.SetTimetableEntry(ctx, 1, "2", "")
	svc.SetTimetableEntry(ctx, 9, "ghost", "stale")

	tt := svc.Timetable()
	assert.Equal(t, "數學", tt.Subject(1, "1"))
	assert.Equal(t, "", tt.Subject(1, "2"))
	assert.Equal(t, "stale", tt.Subject(9, "ghost"), "the model does not validate day or slot id")
}

func TestTimetableIsCopiedOnRead(t *testing.T) {
	svc, _ := newTestService(t)
	svc.SetTimetableEntry(context.Background(), 2, "3", "英文")

	tt := svc.Timetable()
	tt[2]["3"] = "changed"
	assert.Equal(t, "英文", svc.Timetable().Subject(2, "3"))
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	_, err := svc.SetSlotTime(ctx, "morning", strPtr("07:40"), strPtr("08:35"))
	require.NoError(t, err)
	svc.SetTimetableEntry(ctx, 0, "1", "自然")
	svc.SetTimetableEntry(ctx, 6, "lunch", models.FreePeriod)

	reloaded := NewService(store, zap.NewNop())
	reloaded.Load(ctx)

	assert.Equal(t, svc.ListSlots(), reloaded.ListSlots())
	assert.Equal(t, svc.Timetable(), reloaded.Timetable())
}

func TestSaveFailureKeepsMutation(t *testing.T) {
	svc := NewService(failingStore{getErr: settingsRepo.ErrNotFound, setErr: errors.New("read only")}, zap.NewNop())
	svc.Load(context.Background())

	_, err := svc.SetSlotTime(context.Background(), "2", nil, strPtr("10:20"))
	require.NoError(t, err)
	svc.SetTimetableEntry(context.Background(), 3, "2", "音樂")

	assert.Equal(t, "10:20", svc.ListSlots()[2].End)
	assert.Equal(t, "音樂", svc.Timetable().Subject(3, "2"))
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	_, err := svc.SetSlotTime(ctx, "1", strPtr("08:50"), nil)
	require.NoError(t, err)
	svc.SetTimetableEntry(ctx, 1, "1", "數學")

	svc.Reset(ctx)

	assert.Equal(t, DefaultSlots(), svc.ListSlots())
	assert.Empty(t, svc.Timetable())
	_, err = store.Get(ctx, SlotsKey)
	assert.ErrorIs(t, err, settingsRepo.ErrNotFound)
	_, err = store.Get(ctx, TimetableKey)
	assert.ErrorIs(t, err, settingsRepo.ErrNotFound)
}
