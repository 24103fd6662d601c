package ladder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

func TestStoreLoad(t *testing.T) {
	t.Run("MissingFileStartsFresh", func(t *testing.T) {
		store := ladder.NewStore(filepath.Join(t.TempDir(), "ladder.json"), zap.NewNop())

		st, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, st.Players)
		assert.Equal(t, ladder.RuleSwapOnly, st.Rule)
		assert.Equal(t, 0, st.Round)
	})

	t.Run("CorruptFileStartsFresh", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ladder.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		store := ladder.NewStore(path, zap.NewNop())

		st, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, st.Players)
	})

	t.Run("MissingRuleDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ladder.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"players":[{"name":"Alice"}]}`), 0o644))
		store := ladder.NewStore(path, zap.NewNop())

		st, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, ladder.RuleSwapOnly, st.Rule)
		require.Len(t, st.Players, 1)
	})
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "ladder.json")
	store := ladder.NewStore(path, zap.NewNop())

	st := ladder.NewState()
	st.AddPlayer("Alice", 42)
	st.AddPlayer("Bob", 0)
	st.Rule = ladder.RuleOneStepAlways
	st.GeneratePairings()
	_, err := st.ApplyResult(2, 1, "6-4 3-6 6-2", 7)
	require.NoError(t, err)

	require.NoError(t, store.Save(st))

	// The temporary file must not survive the rename.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, st.Players, loaded.Players)
	assert.Equal(t, st.Round, loaded.Round)
	assert.Equal(t, st.Rule, loaded.Rule)
	require.Len(t, loaded.History, 1)
	assert.Equal(t, st.History[0].ID, loaded.History[0].ID)
	assert.Equal(t, st.History[0].Winner, loaded.History[0].Winner)
}

func TestServicePersistsMutations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ladder.json")
	store := ladder.NewStore(path, zap.NewNop())

	svc, err := ladder.NewService(zap.NewNop(), store)
	require.NoError(t, err)

	rank, err := svc.AddPlayer("Alice", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	_, err = svc.AddPlayer("Bob", 0)
	require.NoError(t, err)

	require.NoError(t, svc.SetRule(ladder.RuleOneStepAlways))

	// A second service over the same file sees everything.
	svc2, err := ladder.NewService(zap.NewNop(), store)
	require.NoError(t, err)
	assert.Len(t, svc2.Players(), 2)
	assert.Equal(t, ladder.RuleOneStepAlways, svc2.Rule())
}

func TestServiceGeneratePairingsEmpty(t *testing.T) {
	store := ladder.NewStore(filepath.Join(t.TempDir(), "ladder.json"), zap.NewNop())
	svc, err := ladder.NewService(zap.NewNop(), store)
	require.NoError(t, err)

	_, _, err = svc.GeneratePairings()
	assert.ErrorIs(t, err, ladder.ErrEmptyLadder)
}
