package spelling

import (
	"maps"
	"math/rand/v2"
	"slices"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/abhisek/spellit/internal/words"
)

// Session is the state of one spelling attempt for one target word.
// It is not safe for concurrent use; the caller serializes events.
type Session struct {
	id        string
	target    words.Entry
	key       []rune
	tiles     []Tile
	typed     []rune
	errors    map[int]struct{}
	posTile   map[int]string
	tilePos   map[string]int
	mistakes  int
	startedAt time.Time
	now       func() time.Time
}

type options struct {
	rng   *rand.Rand
	now   func() time.Time
	newID func() string
}

// Option configures a Session.
type Option func(*options)

// WithRand sets the random source used to shuffle the tiles.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithClock overrides time.Now, used for elapsed-time accounting.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides the tile ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

// New starts a session for target with a freshly shuffled tile pool.
func New(target words.Entry, opts ...Option) *Session {
	o := options{now: time.Now, newID: newTileID}
	for _, opt := range opts {
		opt(&o)
	}

	key := []rune(target.Key)
	tiles := buildTiles(key, o.newID)
	shuffle(tiles, defaultIntN(o.rng))

	return &Session{
		id:        uuid.NewString(),
		target:    target,
		key:       key,
		tiles:     tiles,
		typed:     make([]rune, 0, len(key)),
		errors:    make(map[int]struct{}),
		posTile:   make(map[int]string),
		tilePos:   make(map[string]int),
		startedAt: o.now(),
		now:       o.now,
	}
}

// Submit applies one letter. tileID is set when the learner picked a
// specific tile; when empty, any unconsumed tile with the same character is
// used. Rejected input leaves the session untouched.
func (s *Session) Submit(ch rune, tileID string) Result {
	lower := unicode.ToLower(ch)

	if lower != ' ' && !slices.Contains(s.key, lower) {
		return rejected(RejectNotInWord)
	}

	var tile Tile
	if tileID != "" {
		t, ok := s.tile(tileID)
		if !ok || unicode.ToLower(t.Char) != lower {
			return rejected(RejectUnknownTile)
		}
		tile = t
	} else {
		t, ok := s.freeTile(lower)
		if !ok {
			return rejected(RejectNoTile)
		}
		tile = t
	}

	if s.Consumed(tile.ID) {
		return rejected(RejectConsumed)
	}

	pos := s.nextPosition()
	if pos >= len(s.key) {
		return rejected(RejectFull)
	}

	correct := s.key[pos] == lower
	s.write(pos, unicode.ToUpper(lower), tile.ID)
	if correct {
		delete(s.errors, pos)
	} else {
		s.errors[pos] = struct{}{}
		s.mistakes++
	}

	return Result{
		Accepted:  true,
		Position:  pos,
		TileID:    tile.ID,
		Correct:   correct,
		Completed: correct && s.Complete(),
	}
}

// write stores r at pos, releasing whatever tile held that position before.
func (s *Session) write(pos int, r rune, tileID string) {
	if pos == len(s.typed) {
		s.typed = append(s.typed, r)
	} else {
		s.typed[pos] = r
	}
	if old, ok := s.posTile[pos]; ok {
		delete(s.tilePos, old)
	}
	s.posTile[pos] = tileID
	s.tilePos[tileID] = pos
}

// nextPosition is the leftmost error if any, otherwise the end of the buffer.
func (s *Session) nextPosition() int {
	if len(s.errors) == 0 {
		return len(s.typed)
	}
	first := -1
	for p := range s.errors {
		if first < 0 || p < first {
			first = p
		}
	}
	return first
}

func (s *Session) tile(id string) (Tile, bool) {
	for _, t := range s.tiles {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}

func (s *Session) freeTile(lower rune) (Tile, bool) {
	for _, t := range s.tiles {
		if unicode.ToLower(t.Char) == lower && !s.Consumed(t.ID) {
			return t, true
		}
	}
	return Tile{}, false
}

// ID identifies this session; a new session always gets a new ID.
func (s *Session) ID() string { return s.id }

// Target returns the word being spelled.
func (s *Session) Target() words.Entry { return s.target }

// Len is the number of characters in the target key.
func (s *Session) Len() int { return len(s.key) }

// Tiles returns the shuffled pool in display order.
func (s *Session) Tiles() []Tile { return slices.Clone(s.tiles) }

// Typed returns the current reconstruction, upper-cased.
func (s *Session) Typed() string { return string(s.typed) }

// Filled is the number of positions written so far.
func (s *Session) Filled() int { return len(s.typed) }

// Errors returns the positions currently holding a wrong character, ascending.
func (s *Session) Errors() []int { return slices.Sorted(maps.Keys(s.errors)) }

// HasError reports whether position i holds a wrong character.
func (s *Session) HasError(i int) bool {
	_, ok := s.errors[i]
	return ok
}

// TileAt returns the tile ID that fills position i.
func (s *Session) TileAt(i int) (string, bool) {
	id, ok := s.posTile[i]
	return id, ok
}

// Consumed reports whether the tile currently fills some position.
func (s *Session) Consumed(tileID string) bool {
	_, ok := s.tilePos[tileID]
	return ok
}

// Complete is true once every position is filled and none is wrong.
func (s *Session) Complete() bool {
	return len(s.typed) == len(s.key) && len(s.errors) == 0
}

// Mistakes counts wrong submissions over the life of the session.
func (s *Session) Mistakes() int { return s.mistakes }

// Elapsed is the time since the session started.
func (s *Session) Elapsed() time.Duration { return s.now().Sub(s.startedAt) }

// Snapshot returns a copy of the mutable state.
func (s *Session) Snapshot() State {
	return State{
		Typed:     string(s.typed),
		Errors:    s.Errors(),
		TileByPos: maps.Clone(s.posTile),
	}
}

// State is a point-in-time copy of a session's mutable fields.
type State struct {
	Typed     string
	Errors    []int
	TileByPos map[int]string
}
