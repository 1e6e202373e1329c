package results

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))
	assert.Nil(t, store.Init(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires a path", func(t *testing.T) {
		store := NewSQLiteStore("")

		assert.NotNil(t, store.Init(ctx))
	})

	t.Run("Requires initialization", func(t *testing.T) {
		store := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))

		err := store.SaveRun(ctx, sampleRun(NewRunID(), time.Now().UTC()))
		assert.NotNil(t, err)
	})

	t.Run("Save and get round trip", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		run := sampleRun(NewRunID(), time.Now().UTC().Truncate(time.Millisecond))
		assert.Nil(t, store.SaveRun(ctx, run))

		loaded, ok, err := store.GetRun(ctx, run.ID)
		assert.Nil(t, err)
		assert.True(t, ok)
		assert.Equal(t, run.Reflector, loaded.Reflector)
		assert.Equal(t, run.RotorPool, loaded.RotorPool)
		assert.Equal(t, run.CiphertextLength, loaded.CiphertextLength)
		assert.Equal(t, run.Configurations, loaded.Configurations)
		assert.True(t, run.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Missing run", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		_, ok, err := store.GetRun(ctx, "missing")
		assert.Nil(t, err)
		assert.False(t, ok)
	})

	t.Run("Saving twice overwrites", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		run := sampleRun("same-id", time.Now().UTC())
		assert.Nil(t, store.SaveRun(ctx, run))

		run.Configurations = run.Configurations[:1]
		assert.Nil(t, store.SaveRun(ctx, run))

		loaded, ok, err := store.GetRun(ctx, "same-id")
		assert.Nil(t, err)
		assert.True(t, ok)
		assert.Len(t, loaded.Configurations, 1)
	})

	t.Run("List is ordered by creation time", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		later := sampleRun("later", time.Now().UTC())
		earlier := sampleRun("earlier", later.CreatedAt.Add(-time.Hour))
		assert.Nil(t, store.SaveRun(ctx, later))
		assert.Nil(t, store.SaveRun(ctx, earlier))

		runs, err := store.ListRuns(ctx)
		assert.Nil(t, err)
		assert.Len(t, runs, 2)
		assert.Equal(t, "earlier", runs[0].ID)
		assert.Equal(t, "later", runs[1].ID)
	})
}
