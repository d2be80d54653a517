package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/game"
)

func newSession(t *testing.T) *game.Session {
	t.Helper()
	s := game.New(nil, func(string) bool { return true })
	require.NoError(t, s.StartWith("silkworm"))
	return s
}

func TestSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession(t)

	require.NoError(t, st.Save(ctx, s))
	assert.Equal(t, 1, st.Len())

	snap, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "silkworm", snap.Root)

	require.NoError(t, st.Delete(ctx, s.ID))
	_, err = st.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, st.Delete(ctx, "missing"))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession(t)
	require.NoError(t, st.Save(ctx, s))

	err := st.Update(ctx, s.ID, func(s *game.Session) error {
		_, err := s.Submit("silk")
		return err
	})
	require.NoError(t, err)

	snap, _ := st.Get(ctx, s.ID)
	assert.Equal(t, 4, snap.Score)

	boom := errors.New("boom")
	assert.ErrorIs(t, st.Update(ctx, s.ID, func(*game.Session) error { return boom }), boom)
	assert.ErrorIs(t, st.Update(ctx, "missing", func(*game.Session) error { return nil }), ErrNotFound)
}

func TestUpdateSerializes(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession(t)
	require.NoError(t, st.Save(ctx, s))

	words := []string{"silk", "worm", "milk", "slow", "owls", "roil", "soil", "skim"}
	var wg sync.WaitGroup
	for _, w := range words {
		wg.Add(1)
		go func(w string) {
			defer wg.Done()
			_ = st.Update(ctx, s.ID, func(s *game.Session) error {
				_, err := s.Submit(w)
				return err
			})
		}(w)
	}
	wg.Wait()

	snap, _ := st.Get(ctx, s.ID)
	assert.Len(t, snap.Used, len(words))
	assert.Equal(t, 4*len(words), snap.Score)
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	old := newSession(t)
	old.CreatedAt = time.Now().Add(-2 * time.Hour)
	fresh := newSession(t)
	require.NoError(t, st.Save(ctx, old))
	require.NoError(t, st.Save(ctx, fresh))

	assert.Equal(t, 1, st.Sweep(ctx, time.Now().Add(-time.Hour)))
	assert.Equal(t, 1, st.Len())
	_, err := st.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(ctx, fresh.ID)
	assert.NoError(t, err)

	assert.Equal(t, 0, st.Sweep(ctx, time.Now().Add(-time.Hour)))
}
