package grades

import (
	"context"
	"errors"
	"testing"

	ledgerRepo "classboard/database/repository/ledger"
	"classboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type brokenRepo struct{ ledgerRepo.LedgerRepository }

func (brokenRepo) List(context.Context) ([]models.Semester, error) {
	return nil, errors.New("mongo down")
}
func (brokenRepo) Save(context.Context, int, models.Semester) error { return errors.New("mongo down") }
func (brokenRepo) Delete(context.Context, string) error             { return errors.New("mongo down") }
func (brokenRepo) Clear(context.Context) error                      { return errors.New("mongo down") }

func newTestLedger(t *testing.T) (*Ledger, *ledgerRepo.MemoryRepository) {
	t.Helper()
	repo := ledgerRepo.NewMemoryRepository()
	l := NewLedger(repo, zap.NewNop())
	l.Load(context.Background())
	return l, repo
}

func calculus() models.NewCourse {
	return models.NewCourse{Name: "微積分", Credits: 3, Score: 80, Category: "必修"}
}

func TestAddCourseAppendsWithFreshIDs(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	a, err := l.AddCourse(ctx, "sem-113-1", calculus())
	require.NoError(t, err)
	b, err := l.AddCourse(ctx, "sem-113-1", models.NewCourse{Name: "英文", Credits: 2, Score: 70, Category: "通識"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	sem, err := l.Semester("sem-113-1")
	require.NoError(t, err)
	require.Len(t, sem.Courses, 2)
	assert.Equal(t, "微積分", sem.Courses[0].Name)
	assert.Equal(t, "英文", sem.Courses[1].Name)
}

func TestAddCourseUnknownSemesterLeavesLedgerUntouched(t *testing.T) {
	l, _ := newTestLedger(t)
	before := l.Semesters()

	_, err := l.AddCourse(context.Background(), "nope", calculus())
	assert.ErrorIs(t, err, ErrUnknownSemester)
	assert.Equal(t, before, l.Semesters())
}

func TestRemoveCourse(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	a, _ := l.AddCourse(ctx, "sem-113-1", calculus())
	b, _ := l.AddCourse(ctx, "sem-113-1", calculus())

	before := l.Semesters()
	l.RemoveCourse(ctx, "sem-113-1", "missing")
	l.RemoveCourse(ctx, "missing", a.ID)
	assert.Equal(t, before, l.Semesters(), "unknown ids are a no-op")

	l.RemoveCourse(ctx, "sem-113-1", a.ID)
	sem, _ := l.Semester("sem-113-1")
	require.Len(t, sem.Courses, 1)
	assert.Equal(t, b.ID, sem.Courses[0].ID)
}

func TestSnapshotsDoNotAliasLedger(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	_, _ = l.AddCourse(ctx, "sem-113-1", calculus())

	snap := l.Semesters()
	snap[0].Courses[0].Score = 0
	_, _ = l.AddCourse(ctx, "sem-113-1", calculus())

	sem, _ := l.Semester("sem-113-1")
	assert.Equal(t, 80.0, sem.Courses[0].Score)
	assert.Len(t, snap[0].Courses, 1)
}

func TestAggregatesTrackMutations(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	a, _ := l.AddCourse(ctx, "sem-113-1", models.NewCourse{Name: "a", Credits: 1, Score: 100})
	assert.Equal(t, 100.0, WeightedAverage(l.AllCourses()))

	_, _ = l.AddCourse(ctx, "sem-113-2", models.NewCourse{Name: "b", Credits: 1, Score: 50})
	assert.Equal(t, 75.0, WeightedAverage(l.AllCourses()))

	l.RemoveCourse(ctx, "sem-113-1", a.ID)
	assert.Equal(t, 50.0, WeightedAverage(l.AllCourses()))
}

func TestSemesterAddRemove(t *testing.T) {
	l, repo := newTestLedger(t)
	ctx := context.Background()

	added := l.AddSemester(ctx, "114 學年度 上學期")
	require.Len(t, l.Semesters(), 3)

	l.RemoveSemester(ctx, "sem-113-1")
	l.RemoveSemester(ctx, "missing")

	sems := l.Semesters()
	require.Len(t, sems, 2)
	assert.Equal(t, "sem-113-2", sems[0].ID)
	assert.Equal(t, added.ID, sems[1].ID)

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, sems, stored, "repository order follows the ledger")
}

func TestLoadRestoresFromRepository(t *testing.T) {
	ctx := context.Background()
	l, repo := newTestLedger(t)
	c, _ := l.AddCourse(ctx, "sem-113-2", calculus())

	restored := NewLedger(repo, zap.NewNop())
	restored.Load(ctx)

	assert.Equal(t, l.Semesters(), restored.Semesters())
	sem, _ := restored.Semester("sem-113-2")
	assert.Equal(t, c, sem.Courses[0])
}

func TestRepositoryFailuresAreNotFatal(t *testing.T) {
	l := NewLedger(brokenRepo{}, zap.NewNop())
	ctx := context.Background()
	l.Load(ctx)

	assert.Equal(t, DefaultSemesters(), l.Semesters())
	_, err := l.AddCourse(ctx, "sem-113-1", calculus())
	require.NoError(t, err)
	l.Reset(ctx)
	assert.Equal(t, DefaultSemesters(), l.Semesters())
}

func TestReset(t *testing.T) {
	l, repo := newTestLedger(t)
	ctx := context.Background()
	_, _ = l.AddCourse(ctx, "sem-113-1", calculus())
	l.AddSemester(ctx, "extra")

	l.Reset(ctx)
	assert.Equal(t, DefaultSemesters(), l.Semesters())
	stored, _ := repo.List(ctx)
	assert.Equal(t, DefaultSemesters(), stored)
}
