// File: services/intelligence/advisor.go
package ai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"classboard/models"

	"go.uber.org/zap"
)

// ErrBusy is returned by the Begin* guards while the same operation is in flight.
var ErrBusy = errors.New("request already in progress")

// ErrNotConfigured is what the placeholder generator fails with.
var ErrNotConfigured = errors.New("text generation is not configured")

// Generator is the external text-generation boundary.
type Generator interface {
	Generate(ctx context.Context, modelID, prompt string) (string, error)
}

// UnconfiguredGenerator stands in when no API key is set; every call falls back.
type UnconfiguredGenerator struct{}

func (UnconfiguredGenerator) Generate(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

// Advisor builds prompts from grades, forwards them to the Generator and
// converts every failure into a fixed fallback text. Each call is a single
// stateless round-trip; the transcript is kept for display only and is never
// sent upstream.
type Advisor struct {
	gen     Generator
	modelID string
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time

	analysisBusy atomic.Bool
	chatBusy     atomic.Bool

	mu          sync.RWMutex
	analysis    string
	hasAnalysis bool
	transcript  []models.ChatMessage
}

func NewAdvisor(gen Generator, modelID string, timeout time.Duration, logger *zap.Logger) *Advisor {
	return &Advisor{
		gen:     gen,
		modelID: modelID,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// BeginAnalysis claims the analysis operation. The returned func releases it.
func (a *Advisor) BeginAnalysis() (func(), error) {
	return begin(&a.analysisBusy)
}

// BeginChat claims the chat operation. It is independent of BeginAnalysis.
func (a *Advisor) BeginChat() (func(), error) {
	return begin(&a.chatBusy)
}

func begin(flag *atomic.Bool) (func(), error) {
	if !flag.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	return func() { flag.Store(false) }, nil
}

// RequestFullAnalysis returns the generated report for courses, or
// AnalysisFallback. The result is also kept as the latest analysis.
func (a *Advisor) RequestFullAnalysis(ctx context.Context, courses []models.Course) string {
	text := a.generate(ctx, "analysis", AnalysisPrompt(courses), AnalysisFallback)

	a.mu.Lock()
	a.analysis = text
	a.hasAnalysis = true
	a.mu.Unlock()
	return text
}

// Chat answers query with a name:score context, or ChatFallback. Both the
// query and the reply are appended to the transcript.
func (a *Advisor) Chat(ctx context.Context, query string, courses []models.Course) string {
	a.appendMessage(models.RoleUser, query)
	reply := a.generate(ctx, "chat", ChatPrompt(query, courses), ChatFallback)
	a.appendMessage(models.RoleBot, reply)
	return reply
}

// Analysis returns the latest report, if any.
func (a *Advisor) Analysis() (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.analysis, a.hasAnalysis
}

// ClearAnalysis closes the report.
func (a *Advisor) ClearAnalysis() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.analysis = ""
	a.hasAnalysis = false
}

// Transcript returns the display transcript in order.
func (a *Advisor) Transcript() []models.ChatMessage {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.ChatMessage{}, a.transcript...)
}

// Reset clears the report and the transcript.
func (a *Advisor) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.analysis = ""
	a.hasAnalysis = false
	a.transcript = nil
}

func (a *Advisor) appendMessage(role, text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.transcript = append(a.transcript, models.ChatMessage{Role: role, Text: text, At: a.now()})
}

// generate runs one round-trip. It is detached from the caller's cancellation
// and bounded by the advisor timeout, so a request that was started always
// completes and lands in state.
func (a *Advisor) generate(ctx context.Context, op, prompt, fallback string) string {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
	defer cancel()

	started := time.Now()
	text, err := a.gen.Generate(ctx, a.modelID, prompt)
	if err != nil {
		a.logger.Warn("advisor: generation failed", zap.String("op", op), zap.Duration("took", time.Since(started)), zap.Error(err))
		return fallback
	}
	if strings.TrimSpace(text) == "" {
		a.logger.Warn("advisor: empty generation", zap.String("op", op), zap.Duration("took", time.Since(started)))
		return fallback
	}
	a.logger.Debug("advisor: generation ok", zap.String("op", op), zap.Int("chars", len(text)))
	return text
}
