package ai

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"classboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
	models  []string
	ctxErr  error
}

func (f *fakeGenerator) Generate(ctx context.Context, modelID, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.models = append(f.models, modelID)
	f.ctxErr = ctx.Err()
	return f.reply, f.err
}

func sampleCourses() []models.Course {
	return []models.Course{
		{ID: "c1", Name: "微積分", Credits: 3, Score: 85, Category: "必修"},
		{ID: "c2", Name: "英文", Credits: 2, Score: 92.5, Category: "通識"},
	}
}

func newTestAdvisor(gen Generator) *Advisor {
	return NewAdvisor(gen, "test-model", time.Second, zap.NewNop())
}

func TestRequestFullAnalysis_Success(t *testing.T) {
	gen := &fakeGenerator{reply: "表現優異"}
	a := newTestAdvisor(gen)

	got := a.RequestFullAnalysis(context.Background(), sampleCourses())
	assert.Equal(t, "表現優異", got)

	stored, ok := a.Analysis()
	assert.True(t, ok)
	assert.Equal(t, "表現優異", stored)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "微積分: 85分 (3學分, 類別: 必修)")
	assert.Contains(t, gen.prompts[0], "英文: 92.5分 (2學分, 類別: 通識)")
	assert.Equal(t, []string{"test-model"}, gen.models)
}

func TestRequestFullAnalysis_FallbackOnErrorAndEmpty(t *testing.T) {
	a := newTestAdvisor(&fakeGenerator{err: errors.New("boom")})
	assert.Equal(t, AnalysisFallback, a.RequestFullAnalysis(context.Background(), sampleCourses()))
	stored, ok := a.Analysis()
	assert.True(t, ok)
	assert.Equal(t, AnalysisFallback, stored)

	a = newTestAdvisor(&fakeGenerator{reply: "  \n"})
	assert.Equal(t, AnalysisFallback, a.RequestFullAnalysis(context.Background(), sampleCourses()))
}

func TestUnconfiguredGeneratorFallsBack(t *testing.T) {
	a := newTestAdvisor(UnconfiguredGenerator{})
	assert.Equal(t, AnalysisFallback, a.RequestFullAnalysis(context.Background(), nil))
	assert.Equal(t, ChatFallback, a.Chat(context.Background(), "hi", nil))
}

func TestClearAnalysis(t *testing.T) {
	a := newTestAdvisor(&fakeGenerator{reply: "ok"})
	a.RequestFullAnalysis(context.Background(), sampleCourses())
	a.ClearAnalysis()
	_, ok := a.Analysis()
	assert.False(t, ok)
}

func TestChat_AppendsUserThenBot(t *testing.T) {
	gen := &fakeGenerator{reply: "多做練習"}
	a := newTestAdvisor(gen)

	reply := a.Chat(context.Background(), "我該怎麼提升?", sampleCourses())
	assert.Equal(t, "多做練習", reply)

	transcript := a.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, models.RoleUser, transcript[0].Role)
	assert.Equal(t, "我該怎麼提升?", transcript[0].Text)
	assert.Equal(t, models.RoleBot, transcript[1].Role)
	assert.Equal(t, "多做練習", transcript[1].Text)

	require.Len(t, gen.prompts, 1)
	assert.Equal(t, "你是一個學術助手。用戶問題：我該怎麼提升?\n內容脈絡：當前成績背景：微積分:85,英文:92.5", gen.prompts[0])
}

func TestChat_FallbackIsRecorded(t *testing.T) {
	a := newTestAdvisor(&fakeGenerator{err: errors.New("down")})
	assert.Equal(t, ChatFallback, a.Chat(context.Background(), "hello", nil))

	transcript := a.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, ChatFallback, transcript[1].Text)
}

func TestGenerate_DetachedFromCallerCancellation(t *testing.T) {
	gen := &fakeGenerator{reply: "still here"}
	a := newTestAdvisor(gen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, "still here", a.RequestFullAnalysis(ctx, sampleCourses()))
	assert.NoError(t, gen.ctxErr)
}

func TestBeginGuards(t *testing.T) {
	a := newTestAdvisor(&fakeGenerator{})

	done, err := a.BeginAnalysis()
	require.NoError(t, err)

	_, err = a.BeginAnalysis()
	assert.ErrorIs(t, err, ErrBusy)

	// Chat is guarded independently.
	chatDone, err := a.BeginChat()
	require.NoError(t, err)
	_, err = a.BeginChat()
	assert.ErrorIs(t, err, ErrBusy)

	done()
	chatDone()

	done, err = a.BeginAnalysis()
	require.NoError(t, err)
	done()
}

func TestReset(t *testing.T) {
	a := newTestAdvisor(&fakeGenerator{reply: "ok"})
	a.RequestFullAnalysis(context.Background(), sampleCourses())
	a.Chat(context.Background(), "q", nil)

	a.Reset()
	_, ok := a.Analysis()
	assert.False(t, ok)
	assert.Empty(t, a.Transcript())
}
