package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizbank/internal/testutil"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(testutil.Context(t, 0), filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// TestRecordAndRecent verifies sessions come back newest first.
func TestRecordAndRecent(t *testing.T) {
	ctx := testutil.Context(t, 0)
	db := openTestDB(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, db.Record(ctx, Entry{ID: "a", Mode: "all", StartedAt: base, EndedAt: base.Add(time.Minute), Total: 5, Attempted: 4, Correct: 3, Failed: 1}))
	require.NoError(t, db.Record(ctx, Entry{ID: "b", Mode: "failed", StartedAt: base.Add(time.Hour), EndedAt: base.Add(time.Hour), Total: 2, Attempted: 0, Quit: true}))

	entries, err := db.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID)
	assert.True(t, entries[0].Quit)
	assert.Equal(t, 0.0, entries[0].Percent())
	assert.Equal(t, "a", entries[1].ID)
	assert.Equal(t, 75.0, entries[1].Percent())
	assert.True(t, entries[1].StartedAt.Equal(base))

	limited, err := db.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

// TestRecordReplacesSameID verifies a session id is stored once.
func TestRecordReplacesSameID(t *testing.T) {
	ctx := testutil.Context(t, 0)
	db := openTestDB(t)
	now := time.Now()

	require.NoError(t, db.Record(ctx, Entry{ID: "a", Mode: "all", StartedAt: now, EndedAt: now, Attempted: 1}))
	require.NoError(t, db.Record(ctx, Entry{ID: "a", Mode: "all", StartedAt: now, EndedAt: now, Attempted: 2, Correct: 2}))

	summary, err := db.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Sessions: 1, Attempted: 2, Correct: 2}, summary)
	assert.Equal(t, 100.0, summary.Percent())
}

// TestSummarizeEmpty verifies an empty database sums to zero.
func TestSummarizeEmpty(t *testing.T) {
	summary, err := openTestDB(t).Summarize(testutil.Context(t, 0))
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
}

// TestRecordRequiresID verifies entries without ids are rejected.
func TestRecordRequiresID(t *testing.T) {
	err := openTestDB(t).Record(testutil.Context(t, 0), Entry{Mode: "all"})
	assert.Error(t, err)
}

// TestReopenKeepsRows verifies the schema is idempotent across opens.
func TestReopenKeepsRows(t *testing.T) {
	ctx := testutil.Context(t, 0)
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Record(ctx, Entry{ID: "a", Mode: "all", StartedAt: time.Now(), EndedAt: time.Now()}))
	require.NoError(t, db.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()
	entries, err := reopened.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
