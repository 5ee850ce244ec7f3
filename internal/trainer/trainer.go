package trainer

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/spellit/internal/inventory"
	"github.com/abhisek/spellit/internal/spelling"
	"github.com/abhisek/spellit/internal/store"
	"github.com/abhisek/spellit/internal/words"
)

// DefaultAdvanceDelay is how long a completed word stays on screen.
const DefaultAdvanceDelay = 800 * time.Millisecond

// CompletionRecorder receives an event for every finished word.
type CompletionRecorder interface {
	AppendCompletion(ctx context.Context, data store.CompletionEventData) error
}

// Trainer drives practice: it owns the inventory and the single active
// session and moves from one word to the next. All methods must be called
// from one goroutine.
type Trainer struct {
	inv         *inventory.Inventory
	session     *spelling.Session
	recorder    CompletionRecorder
	logger      *slog.Logger
	sessionOpts []spelling.Option
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithRecorder sets where completion events go.
func WithRecorder(r CompletionRecorder) Option {
	return func(t *Trainer) { t.recorder = r }
}

// WithLogger sets the diagnostics sink.
func WithLogger(l *slog.Logger) Option {
	return func(t *Trainer) { t.logger = l }
}

// WithSessionOptions are passed to every new spelling session.
func WithSessionOptions(opts ...spelling.Option) Option {
	return func(t *Trainer) { t.sessionOpts = append(t.sessionOpts, opts...) }
}

// New creates a Trainer around an already loaded inventory.
func New(inv *inventory.Inventory, opts ...Option) *Trainer {
	t := &Trainer{inv: inv}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t
}

// Start picks a word and opens a session for it. Session returns nil
// afterwards if no word remains.
func (t *Trainer) Start() {
	entry, ok := t.inv.PickNext()
	if !ok {
		t.session = nil
		return
	}
	t.session = spelling.New(entry, t.sessionOpts...)
	t.logger.Debug("session started", "session", t.session.ID(), "word", entry.Key)
}

// Session is the active session, or nil when nothing is left to practice.
func (t *Trainer) Session() *spelling.Session { return t.session }

// Inventory exposes the word lists.
func (t *Trainer) Inventory() *inventory.Inventory { return t.inv }

// Submit forwards one letter to the active session.
func (t *Trainer) Submit(ch rune, tileID string) spelling.Result {
	if t.session == nil {
		return spelling.Result{Rejection: spelling.RejectFull, Position: -1}
	}
	return t.session.Submit(ch, tileID)
}

// Advance finishes the completed word of session sessionID and starts the
// next one. It is meant to run after a delay; if the session has been
// replaced or is not complete by then the call does nothing and returns
// false.
func (t *Trainer) Advance(ctx context.Context, sessionID string) bool {
	s := t.session
	if s == nil || s.ID() != sessionID || !s.Complete() {
		t.logger.Debug("stale advance ignored", "session", sessionID)
		return false
	}

	t.record(ctx, s)
	t.inv.Finish(s.Target().Key)
	t.Start()
	return true
}

// AddWords merges new entries and restarts with a fresh pick.
func (t *Trainer) AddWords(ctx context.Context, entries []words.Entry) {
	entries = words.Normalized(entries)
	if len(entries) == 0 {
		return
	}
	t.inv.AddWords(ctx, entries)
	t.Start()
}

// RemoveWord deletes key; the session is replaced only if it was spelling
// that word.
func (t *Trainer) RemoveWord(ctx context.Context, key string) {
	t.inv.RemoveWord(ctx, key)
	if t.session != nil && t.session.Target().Key == words.Normalize(key) {
		t.Start()
	}
}

// RemoveAll deletes every word and drops the session.
func (t *Trainer) RemoveAll(ctx context.Context) {
	t.inv.RemoveAll(ctx)
	t.session = nil
}

// ResetPractice starts a new pass and a new session.
func (t *Trainer) ResetPractice(ctx context.Context) {
	t.inv.ResetPractice(ctx)
	t.Start()
}

// Progress returns how many words were spelled this pass out of the total.
func (t *Trainer) Progress() (done, total int) {
	total = t.inv.Len()
	return total - t.inv.RemainingLen(), total
}

func (t *Trainer) record(ctx context.Context, s *spelling.Session) {
	if t.recorder == nil {
		return
	}
	err := t.recorder.AppendCompletion(ctx, store.CompletionEventData{
		SessionID:  s.ID(),
		WordKey:    s.Target().Key,
		Mistakes:   s.Mistakes(),
		DurationMs: s.Elapsed().Milliseconds(),
	})
	if err != nil {
		t.logger.Warn("record completion", "error", err, "word", s.Target().Key)
	}
}
