package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/scramble"
	"github.com/robalobadob/wordscramble/internal/words"
)

// fixedSource hands out roots in order, then fails.
type fixedSource struct {
	roots []string
	err   error
}

func (f *fixedSource) RandomRoot() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if len(f.roots) == 0 {
		return "", words.ErrDataUnavailable
	}
	r := f.roots[0]
	f.roots = f.roots[1:]
	return r, nil
}

func recognizeAll(string) bool { return true }

func TestSubmitBeforeStart(t *testing.T) {
	s := New(&fixedSource{}, recognizeAll)
	assert.Equal(t, Uninitialized, s.State())

	_, err := s.Submit("worm")
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestStartDrawsRoot(t *testing.T) {
	s := New(&fixedSource{roots: []string{"Silkworm"}}, recognizeAll)
	require.NoError(t, s.Start())
	assert.Equal(t, Active, s.State())
	assert.Equal(t, "silkworm", s.Root)
	assert.False(t, s.StartedAt.IsZero())
}

func TestStartFailureLeavesSessionUntouched(t *testing.T) {
	s := New(&fixedSource{}, recognizeAll)
	err := s.Start()
	require.ErrorIs(t, err, words.ErrDataUnavailable)
	assert.Equal(t, Uninitialized, s.State())

	// host falls back
	require.NoError(t, s.StartWith(words.FallbackRoot))
	assert.Equal(t, "silkworm", s.Root)
}

func TestStartWithoutSource(t *testing.T) {
	s := New(nil, recognizeAll)
	assert.ErrorIs(t, s.Start(), words.ErrDataUnavailable)
	assert.ErrorIs(t, s.StartWith("  "), ErrEmptyRoot)
}

func TestSubmitAcceptedUpdatesState(t *testing.T) {
	s := New(nil, recognizeAll)
	require.NoError(t, s.StartWith("silkworm"))

	res, err := s.Submit("silk")
	require.NoError(t, err)
	assert.Equal(t, scramble.Accepted, res.Outcome)

	res, err = s.Submit(" WORMS ")
	require.NoError(t, err)
	assert.Equal(t, scramble.Accepted, res.Outcome)

	assert.Equal(t, []string{"worms", "silk"}, s.Used)
	assert.Equal(t, 9, s.Score)
}

func TestSubmitRejectedOrIgnoredKeepsState(t *testing.T) {
	s := New(nil, recognizeAll)
	require.NoError(t, s.StartWith("silkworm"))
	_, err := s.Submit("silk")
	require.NoError(t, err)

	for _, in := range []string{"", "   ", "silk", "SILK", "silkworms", "silkworm", "ok"} {
		res, err := s.Submit(in)
		require.NoError(t, err)
		assert.NotEqual(t, scramble.Accepted, res.Outcome, in)
	}
	assert.Equal(t, []string{"silk"}, s.Used)
	assert.Equal(t, 4, s.Score)
}

func TestResetKeepRoot(t *testing.T) {
	s := New(nil, recognizeAll)
	require.NoError(t, s.StartWith("silkworm"))
	_, _ = s.Submit("silk")

	require.NoError(t, s.Reset(KeepRoot))
	assert.Empty(t, s.Used)
	assert.Zero(t, s.Score)
	assert.Equal(t, "silkworm", s.Root)

	// previously accepted word is original again
	res, err := s.Submit("silk")
	require.NoError(t, err)
	assert.Equal(t, scramble.Accepted, res.Outcome)
}

func TestResetRedrawRoot(t *testing.T) {
	src := &fixedSource{roots: []string{"silkworm", "listen"}}
	s := New(src, recognizeAll)
	require.NoError(t, s.Start())
	_, _ = s.Submit("silk")

	require.NoError(t, s.Reset(RedrawRoot))
	assert.Equal(t, "listen", s.Root)
	assert.Empty(t, s.Used)
	assert.Zero(t, s.Score)
}

func TestResetRedrawFailureStillClears(t *testing.T) {
	boom := errors.New("boom")
	s := New(&fixedSource{err: boom}, recognizeAll)
	require.NoError(t, s.StartWith("silkworm"))
	_, _ = s.Submit("silk")

	err := s.Reset(RedrawRoot)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "silkworm", s.Root)
	assert.Empty(t, s.Used)
	assert.Zero(t, s.Score)
}

func TestStartOnActiveKeepsProgress(t *testing.T) {
	s := New(&fixedSource{roots: []string{"listen"}}, recognizeAll)
	require.NoError(t, s.StartWith("silkworm"))
	_, _ = s.Submit("silk")

	require.NoError(t, s.Start())
	assert.Equal(t, "listen", s.Root)
	assert.Equal(t, []string{"silk"}, s.Used)
	assert.Equal(t, 4, s.Score)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(nil, recognizeAll)
	require.NoError(t, s.StartWith("silkworm"))
	_, _ = s.Submit("silk")

	snap := s.Snapshot()
	snap.Used[0] = "changed"
	assert.Equal(t, "silk", s.Used[0])
	assert.Equal(t, "active", snap.State)
	assert.Equal(t, s.ID, snap.ID)
	assert.Len(t, s.ID, 16)
}

func TestTimestampsTrackChanges(t *testing.T) {
	s := New(nil, recognizeAll)
	s.Locale = "en"
	assert.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)

	require.NoError(t, s.StartWith("silkworm"))
	started := s.UpdatedAt
	assert.False(t, started.Before(s.CreatedAt))

	_, _ = s.Submit("zzz")
	assert.Equal(t, started, s.UpdatedAt, "rejection leaves UpdatedAt alone")

	_, _ = s.Submit("silk")
	assert.False(t, s.UpdatedAt.Before(started))

	snap := s.Snapshot()
	assert.Equal(t, "en", snap.Locale)
	assert.Equal(t, s.UpdatedAt, snap.UpdatedAt)
}
