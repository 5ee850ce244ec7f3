package spelling

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/spellit/internal/words"
)

func seqIDs() Option {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("t%d", n)
	})
}

func newTestSession(t *testing.T, key string) *Session {
	t.Helper()
	return New(words.NewEntry(key, "x"), WithRand(rand.New(rand.NewPCG(1, 2))), seqIDs())
}

func tileFor(t *testing.T, s *Session, ch rune, skip ...string) Tile {
	t.Helper()
outer:
	for _, tl := range s.Tiles() {
		if tl.Char != ch {
			continue
		}
		for _, id := range skip {
			if tl.ID == id {
				continue outer
			}
		}
		return tl
	}
	t.Fatalf("no tile %q", ch)
	return Tile{}
}

func TestNewTilePoolIsPermutationOfKey(t *testing.T) {
	for _, key := range []string{"window", "telephone", "carry on", "aaa", "ёжик", "x"} {
		t.Run(key, func(t *testing.T) {
			s := New(words.NewEntry(key, "x"))
			tiles := s.Tiles()
			require.Len(t, tiles, len([]rune(key)))

			got := make([]rune, 0, len(tiles))
			ids := make(map[string]bool)
			for _, tl := range tiles {
				got = append(got, tl.Char)
				assert.False(t, ids[tl.ID], "duplicate tile id %s", tl.ID)
				ids[tl.ID] = true
			}
			want := []rune(key)
			sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
			sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
			assert.Equal(t, want, got)

			assert.Empty(t, s.Typed())
			assert.Empty(t, s.Errors())
			assert.False(t, s.Complete())
		})
	}
}

func TestShuffleIsRoughlyUniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	counts := make(map[string]int)
	const trials = 6000
	for i := 0; i < trials; i++ {
		s := New(words.NewEntry("abc", "x"), WithRand(rng))
		var perm []rune
		for _, tl := range s.Tiles() {
			perm = append(perm, tl.Char)
		}
		counts[string(perm)]++
	}
	require.Len(t, counts, 6)
	for perm, n := range counts {
		assert.InDelta(t, trials/6, n, 200, "permutation %s", perm)
	}
}

func TestSessionsGetFreshIDs(t *testing.T) {
	a := New(words.NewEntry("cat", "кот"))
	b := New(words.NewEntry("cat", "кот"))
	assert.NotEqual(t, a.ID(), b.ID())
	for _, ta := range a.Tiles() {
		for _, tb := range b.Tiles() {
			assert.NotEqual(t, ta.ID, tb.ID)
		}
	}
}

func TestSubmitRejectsLetterNotInWord(t *testing.T) {
	s := newTestSession(t, "window")
	s.Submit('w', "")
	s.Submit('o', "")
	before := s.Snapshot()
	require.Equal(t, []int{1}, before.Errors)

	for _, ch := range []rune{'z', 'Q', '1'} {
		res := s.Submit(ch, "")
		assert.False(t, res.Accepted)
		assert.Equal(t, RejectNotInWord, res.Rejection)
	}
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, 1, s.Mistakes())
}

func TestSubmitCompletesWindow(t *testing.T) {
	s := newTestSession(t, "window")

	var last Result
	var wTiles []string
	for _, ch := range "window" {
		last = s.Submit(ch, "")
		require.True(t, last.Accepted, "submit %q: %v", ch, last.Rejection)
		assert.True(t, last.Correct)
		if ch == 'w' {
			wTiles = append(wTiles, last.TileID)
		}
	}

	assert.True(t, last.Completed)
	assert.True(t, s.Complete())
	assert.Equal(t, "WINDOW", s.Typed())
	assert.Empty(t, s.Errors())
	require.Len(t, wTiles, 2)
	assert.NotEqual(t, wTiles[0], wTiles[1])
	for _, tl := range s.Tiles() {
		assert.True(t, s.Consumed(tl.ID))
	}

	res := s.Submit('w', "")
	assert.False(t, res.Accepted)
}

func TestSubmitUppercaseInputMatches(t *testing.T) {
	s := newTestSession(t, "cat")
	res := s.Submit('C', "")
	assert.True(t, res.Accepted)
	assert.True(t, res.Correct)
	assert.Equal(t, "C", s.Typed())
}

func TestSubmitMismatchMarksError(t *testing.T) {
	s := newTestSession(t, "cat")
	res := s.Submit('a', "")
	require.True(t, res.Accepted)
	assert.False(t, res.Correct)
	assert.False(t, res.Completed)
	assert.Equal(t, 0, res.Position)
	assert.Equal(t, "A", s.Typed())
	assert.Equal(t, []int{0}, s.Errors())
	assert.Equal(t, 1, s.Mistakes())
}

func TestErrorsAreRepairedBeforeAppending(t *testing.T) {
	s := newTestSession(t, "cat")
	s.Submit('t', "") // wrong at 0

	// Another wrong letter overwrites position 0 rather than appending.
	res := s.Submit('a', "")
	require.True(t, res.Accepted)
	assert.Equal(t, 0, res.Position)
	assert.Equal(t, "A", s.Typed())
	assert.Equal(t, []int{0}, s.Errors())

	res = s.Submit('c', "")
	require.True(t, res.Accepted)
	assert.Equal(t, 0, res.Position)
	assert.True(t, res.Correct)
	assert.Equal(t, "C", s.Typed())
	assert.Empty(t, s.Errors())
}

func TestLeftmostErrorIsRepairedFirst(t *testing.T) {
	s := newTestSession(t, "abcdefgh")

	// Build a six-character buffer with errors at 2 and 5: "ABHDEG".
	a := tileFor(t, s, 'a')
	b := tileFor(t, s, 'b')
	h := tileFor(t, s, 'h')
	d := tileFor(t, s, 'd')
	e := tileFor(t, s, 'e')
	g := tileFor(t, s, 'g')
	for pos, tl := range []Tile{a, b, h, d, e, g} {
		s.write(pos, unicode.ToUpper(tl.Char), tl.ID)
	}
	s.errors[2] = struct{}{}
	s.errors[5] = struct{}{}
	require.Equal(t, "ABHDEG", s.Typed())

	res := s.Submit('c', "")
	require.True(t, res.Accepted)
	assert.Equal(t, 2, res.Position)
	assert.True(t, res.Correct)
	assert.Equal(t, []int{5}, s.Errors())
	assert.False(t, s.Consumed(h.ID))
	assert.Equal(t, "ABCDEG", s.Typed())

	res = s.Submit('f', "")
	require.True(t, res.Accepted)
	assert.Equal(t, 5, res.Position)
	assert.Empty(t, s.Errors())
	assert.False(t, s.Consumed(g.ID))
	assert.Equal(t, 6, s.Filled())
}

func TestReleasedTileIsReusable(t *testing.T) {
	s := newTestSession(t, "cat")

	wrong := s.Submit('a', "")
	require.True(t, wrong.Accepted)
	require.False(t, wrong.Correct)
	aTile := wrong.TileID
	assert.True(t, s.Consumed(aTile))

	fix := s.Submit('c', "")
	require.True(t, fix.Accepted)
	assert.Equal(t, 0, fix.Position)
	assert.False(t, s.Consumed(aTile))
	id, ok := s.TileAt(0)
	require.True(t, ok)
	assert.Equal(t, fix.TileID, id)

	again := s.Submit('a', aTile)
	require.True(t, again.Accepted)
	assert.Equal(t, 1, again.Position)
	assert.True(t, again.Correct)
	id, _ = s.TileAt(0)
	assert.Equal(t, fix.TileID, id, "position 0 must keep its tile")
}

func TestSubmitByTileID(t *testing.T) {
	s := newTestSession(t, "window")
	w1 := tileFor(t, s, 'w')
	w2 := tileFor(t, s, 'w', w1.ID)

	res := s.Submit('w', w2.ID)
	require.True(t, res.Accepted)
	assert.Equal(t, w2.ID, res.TileID)

	res = s.Submit('w', w2.ID)
	assert.False(t, res.Accepted)
	assert.Equal(t, RejectConsumed, res.Rejection)

	res = s.Submit('w', "nope")
	assert.Equal(t, RejectUnknownTile, res.Rejection)

	res = s.Submit('i', w1.ID)
	assert.Equal(t, RejectUnknownTile, res.Rejection)
}

func TestTypedLetterNeedsFreeTile(t *testing.T) {
	s := newTestSession(t, "cat")
	require.True(t, s.Submit('c', "").Accepted)

	res := s.Submit('c', "")
	assert.False(t, res.Accepted)
	assert.Equal(t, RejectNoTile, res.Rejection)
	assert.Equal(t, "C", s.Typed())
	assert.Empty(t, s.Errors())
}

func TestSpaceBypassesContainmentCheck(t *testing.T) {
	s := newTestSession(t, "carry on")
	for _, ch := range "carry" {
		require.True(t, s.Submit(ch, "").Correct)
	}
	res := s.Submit(' ', "")
	require.True(t, res.Accepted)
	assert.True(t, res.Correct)
	assert.Equal(t, "CARRY ", s.Typed())

	single := newTestSession(t, "cat")
	res = single.Submit(' ', "")
	assert.False(t, res.Accepted)
	assert.Equal(t, RejectNoTile, res.Rejection)
}

func TestErrorSetMatchesBufferUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	keys := []string{"window", "telephone", "carry on", "banana", "abc"}

	for run := 0; run < 200; run++ {
		key := keys[rng.IntN(len(keys))]
		s := New(words.NewEntry(key, "x"), WithRand(rng))
		runes := []rune(key)
		alphabet := append([]rune("xyz "), runes...)

		for step := 0; step < 40 && !s.Complete(); step++ {
			var tileID string
			ch := alphabet[rng.IntN(len(alphabet))]
			if rng.IntN(2) == 0 {
				tiles := s.Tiles()
				tl := tiles[rng.IntN(len(tiles))]
				ch, tileID = tl.Char, tl.ID
			}
			s.Submit(ch, tileID)

			typed := []rune(s.Typed())
			var want []int
			for i, r := range typed {
				if r != unicode.ToUpper(runes[i]) {
					want = append(want, i)
				}
			}
			assert.Equal(t, want, s.Errors(), "key %q typed %q", key, s.Typed())

			seen := make(map[string]bool)
			for i := range typed {
				id, ok := s.TileAt(i)
				require.True(t, ok)
				require.False(t, seen[id], "tile %s used twice", id)
				seen[id] = true
			}
		}
	}
}

func TestRejectionString(t *testing.T) {
	assert.Equal(t, "consumed", RejectConsumed.String())
	assert.Equal(t, "not-in-word", RejectNotInWord.String())
}
