package trainer

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/spellit/internal/inventory"
	"github.com/abhisek/spellit/internal/spelling"
	"github.com/abhisek/spellit/internal/store"
	"github.com/abhisek/spellit/internal/words"
)

type mockRecorder struct {
	events []store.CompletionEventData
	err    error
}

func (m *mockRecorder) AppendCompletion(_ context.Context, data store.CompletionEventData) error {
	m.events = append(m.events, data)
	return m.err
}

func newTrainer(t *testing.T, entries []words.Entry, opts ...Option) *Trainer {
	t.Helper()
	inv := inventory.New(inventory.WithDefaults(entries), inventory.WithRand(rand.New(rand.NewPCG(4, 2))))
	inv.Load(context.Background())
	opts = append(opts, WithSessionOptions(spelling.WithRand(rand.New(rand.NewPCG(9, 9)))))
	tr := New(inv, opts...)
	tr.Start()
	return tr
}

func spell(t *testing.T, tr *Trainer) spelling.Result {
	t.Helper()
	var res spelling.Result
	for _, ch := range tr.Session().Target().Key {
		res = tr.Submit(ch, "")
		require.True(t, res.Accepted)
	}
	return res
}

func TestCompletionRemovesWordAfterAdvance(t *testing.T) {
	rec := &mockRecorder{}
	tr := newTrainer(t, []words.Entry{{Key: "window", Translation: "окно"}, {Key: "cat", Translation: "кот"}}, WithRecorder(rec))
	ctx := context.Background()

	for tr.Session().Target().Key != "window" {
		tr.Start()
	}
	s := tr.Session()

	res := spell(t, tr)
	require.True(t, res.Completed)
	assert.Equal(t, "WINDOW", s.Typed())
	assert.True(t, tr.Inventory().IsRemaining("window"), "removal waits for the advance")

	require.True(t, tr.Advance(ctx, s.ID()))
	assert.False(t, tr.Inventory().IsRemaining("window"))
	assert.True(t, tr.Inventory().Contains("window"))
	require.NotNil(t, tr.Session())
	assert.Equal(t, "cat", tr.Session().Target().Key)

	require.Len(t, rec.events, 1)
	assert.Equal(t, "window", rec.events[0].WordKey)
	assert.Equal(t, s.ID(), rec.events[0].SessionID)

	done, total := tr.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, total)
}

func TestLastWordLeavesNoSession(t *testing.T) {
	tr := newTrainer(t, []words.Entry{{Key: "cat", Translation: "кот"}})
	spell(t, tr)
	require.True(t, tr.Advance(context.Background(), tr.Session().ID()))
	assert.Nil(t, tr.Session())

	res := tr.Submit('c', "")
	assert.False(t, res.Accepted)
}

func TestStaleAdvanceIsIgnored(t *testing.T) {
	tr := newTrainer(t, []words.Entry{{Key: "cat", Translation: "кот"}, {Key: "dog", Translation: "пёс"}})
	ctx := context.Background()

	first := tr.Session()
	spell(t, tr)
	tr.ResetPractice(ctx)
	require.NotEqual(t, first.ID(), tr.Session().ID())

	assert.False(t, tr.Advance(ctx, first.ID()))
	assert.Equal(t, 2, tr.Inventory().RemainingLen())
}

func TestAdvanceBeforeCompletionIsIgnored(t *testing.T) {
	tr := newTrainer(t, []words.Entry{{Key: "cat", Translation: "кот"}})
	s := tr.Session()
	tr.Submit('c', "")

	assert.False(t, tr.Advance(context.Background(), s.ID()))
	assert.Same(t, s, tr.Session())
}

func TestAdvanceTwiceOnlyFinishesOnce(t *testing.T) {
	rec := &mockRecorder{}
	tr := newTrainer(t, []words.Entry{{Key: "cat", Translation: "кот"}, {Key: "dog", Translation: "пёс"}}, WithRecorder(rec))
	id := tr.Session().ID()
	spell(t, tr)

	assert.True(t, tr.Advance(context.Background(), id))
	assert.False(t, tr.Advance(context.Background(), id))
	assert.Len(t, rec.events, 1)
	assert.Equal(t, 1, tr.Inventory().RemainingLen())
}

func TestRecorderFailureIsNotFatal(t *testing.T) {
	rec := &mockRecorder{err: errors.New("db gone")}
	tr := newTrainer(t, []words.Entry{{Key: "cat", Translation: "кот"}}, WithRecorder(rec))
	spell(t, tr)
	assert.True(t, tr.Advance(context.Background(), tr.Session().ID()))
	assert.Zero(t, tr.Inventory().RemainingLen())
}

func TestRemoveWordReplacesOnlyAffectedSession(t *testing.T) {
	tr := newTrainer(t, []words.Entry{{Key: "cat", Translation: "кот"}, {Key: "dog", Translation: "пёс"}})
	ctx := context.Background()
	current := tr.Session()
	other := "cat"
	if current.Target().Key == "cat" {
		other = "dog"
	}

	tr.RemoveWord(ctx, other)
	assert.Same(t, current, tr.Session())

	tr.RemoveWord(ctx, current.Target().Key)
	assert.Nil(t, tr.Session())
}

func TestRemoveAllThenReset(t *testing.T) {
	tr := newTrainer(t, []words.Entry{{Key: "cat", Translation: "кот"}})
	ctx := context.Background()

	tr.RemoveAll(ctx)
	assert.Nil(t, tr.Session())
	assert.Zero(t, tr.Inventory().Len())

	tr.ResetPractice(ctx)
	require.NotNil(t, tr.Session())
	assert.Equal(t, 1, tr.Inventory().Len())
}

func TestAddWordsStartsNewSession(t *testing.T) {
	tr := newTrainer(t, []words.Entry{{Key: "cat", Translation: "кот"}})
	before := tr.Session()

	tr.AddWords(context.Background(), []words.Entry{{Key: "dog", Translation: "пёс"}})
	assert.NotSame(t, before, tr.Session())
	assert.Equal(t, 2, tr.Inventory().RemainingLen())

	same := tr.Session()
	tr.AddWords(context.Background(), nil)
	assert.Same(t, same, tr.Session())

	tr.AddWords(context.Background(), []words.Entry{{Key: " ", Translation: "пусто"}})
	assert.Same(t, same, tr.Session(), "invalid entries must not restart the session")
}
