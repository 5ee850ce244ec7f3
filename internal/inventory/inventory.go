package inventory

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/spellit/internal/words"
)

// Persister stores and loads the master word list.
type Persister interface {
	// Load returns the stored list, or nil if nothing was stored yet.
	Load(ctx context.Context) ([]words.Entry, error)

	// Save replaces the stored list.
	Save(ctx context.Context, entries []words.Entry) error
}

// Inventory owns the master word list and the subset still to practice in
// the current pass. Persistence failures are logged and otherwise ignored;
// the in-memory lists stay authoritative.
type Inventory struct {
	master    []words.Entry
	remaining []words.Entry
	defaults  []words.Entry
	persister Persister
	logger    *slog.Logger
	intN      func(int) int
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithPersister sets the storage collaborator. Without one the inventory
// lives in memory only.
func WithPersister(p Persister) Option {
	return func(inv *Inventory) { inv.persister = p }
}

// WithDefaults replaces the built-in default list.
func WithDefaults(entries []words.Entry) Option {
	return func(inv *Inventory) {
		if len(entries) > 0 {
			inv.defaults = words.Dedup(words.Normalized(entries))
		}
	}
}

// WithLogger sets the diagnostics sink.
func WithLogger(l *slog.Logger) Option {
	return func(inv *Inventory) { inv.logger = l }
}

// WithRand sets the random source for PickNext.
func WithRand(rng *rand.Rand) Option {
	return func(inv *Inventory) { inv.intN = rng.IntN }
}

// New creates an empty inventory. Call Load to populate it.
func New(opts ...Option) *Inventory {
	inv := &Inventory{
		defaults: words.Defaults(),
		intN:     rand.IntN,
	}
	for _, opt := range opts {
		opt(inv)
	}
	if inv.logger == nil {
		inv.logger = slog.Default()
	}
	return inv
}

// Load reads the stored list. A missing or empty list is replaced with the
// defaults, which are then persisted. An unreadable list falls back to the
// defaults in memory only so the stored copy is left untouched.
func (inv *Inventory) Load(ctx context.Context) {
	var stored []words.Entry
	if inv.persister != nil {
		var err error
		stored, err = inv.persister.Load(ctx)
		if err != nil {
			inv.logger.Warn("load word list, using defaults without saving", "error", err)
			inv.master = slices.Clone(inv.defaults)
			inv.remaining = slices.Clone(inv.defaults)
			return
		}
	}

	stored = words.Dedup(words.Normalized(stored))
	if len(stored) == 0 {
		inv.master = slices.Clone(inv.defaults)
		inv.remaining = slices.Clone(inv.defaults)
		inv.persist(ctx)
		return
	}

	inv.master = stored
	inv.remaining = slices.Clone(stored)
}

// AddWords merges entries into the master list. For a key that appears more
// than once across the old and new entries the first occurrence wins. The
// remaining set is reset to the whole updated list. Nothing changes when no
// entry is valid.
func (inv *Inventory) AddWords(ctx context.Context, entries []words.Entry) {
	entries = words.Normalized(entries)
	if len(entries) == 0 {
		return
	}
	combined := append(slices.Clone(inv.master), entries...)
	inv.master = words.Dedup(combined)
	inv.remaining = slices.Clone(inv.master)
	inv.persist(ctx)
}

// RemoveWord drops key from both lists. Unknown keys are ignored.
func (inv *Inventory) RemoveWord(ctx context.Context, key string) {
	key = words.Normalize(key)
	before := len(inv.master)
	inv.master = removeKey(inv.master, key)
	inv.remaining = removeKey(inv.remaining, key)
	if len(inv.master) != before {
		inv.persist(ctx)
	}
}

// RemoveAll empties both lists.
func (inv *Inventory) RemoveAll(ctx context.Context) {
	inv.master = nil
	inv.remaining = nil
	inv.persist(ctx)
}

// ResetPractice starts a fresh pass over the master list, restoring the
// defaults first when the master list is empty.
func (inv *Inventory) ResetPractice(ctx context.Context) {
	if len(inv.master) == 0 {
		inv.master = slices.Clone(inv.defaults)
		inv.remaining = slices.Clone(inv.defaults)
		inv.persist(ctx)
		return
	}
	inv.remaining = slices.Clone(inv.master)
}

// PickNext returns a uniformly random word from the remaining set. It
// returns false when nothing remains.
func (inv *Inventory) PickNext() (words.Entry, bool) {
	if len(inv.remaining) == 0 {
		return words.Entry{}, false
	}
	return inv.remaining[inv.intN(len(inv.remaining))], true
}

// Finish marks key as spelled for this pass.
func (inv *Inventory) Finish(key string) {
	inv.remaining = removeKey(inv.remaining, words.Normalize(key))
}

// Master returns a copy of the master list.
func (inv *Inventory) Master() []words.Entry { return slices.Clone(inv.master) }

// Remaining returns a copy of the words left in this pass.
func (inv *Inventory) Remaining() []words.Entry { return slices.Clone(inv.remaining) }

// Len is the size of the master list.
func (inv *Inventory) Len() int { return len(inv.master) }

// RemainingLen is the number of words left in this pass.
func (inv *Inventory) RemainingLen() int { return len(inv.remaining) }

// Contains reports whether key is in the master list.
func (inv *Inventory) Contains(key string) bool {
	return indexOf(inv.master, words.Normalize(key)) >= 0
}

// IsRemaining reports whether key is still to be practiced this pass.
func (inv *Inventory) IsRemaining(key string) bool {
	return indexOf(inv.remaining, words.Normalize(key)) >= 0
}

func (inv *Inventory) persist(ctx context.Context) {
	if inv.persister == nil {
		return
	}
	if err := inv.persister.Save(ctx, slices.Clone(inv.master)); err != nil {
		inv.logger.Warn("save word list", "error", err, "words", len(inv.master))
	}
}

func removeKey(entries []words.Entry, key string) []words.Entry {
	return slices.DeleteFunc(slices.Clone(entries), func(e words.Entry) bool {
		return e.Key == key
	})
}

func indexOf(entries []words.Entry, key string) int {
	return slices.IndexFunc(entries, func(e words.Entry) bool { return e.Key == key })
}
