package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_RecordAndHistory(t *testing.T) {
	t.Parallel()

	led, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer led.Close()

	ctx := context.Background()

	require.NoError(t, led.Record(ctx, Entry{
		RunID:      "run-1",
		Collection: "travel",
		Status:     StatusOK,
		Documents:  7,
		Sections:   31,
		Duration:   1500 * time.Millisecond,
	}))
	require.NoError(t, led.Record(ctx, Entry{
		RunID:      "run-2",
		Collection: "travel",
		Status:     StatusFailed,
		Error:      "no sections extracted from documents",
	}))
	require.NoError(t, led.Record(ctx, Entry{
		RunID:      "run-2",
		Collection: "recipes",
		Status:     StatusOK,
	}))

	entries, err := led.History(ctx, "travel")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "run-2", entries[0].RunID, "newest entry first")
	assert.Equal(t, StatusFailed, entries[0].Status)
	assert.Equal(t, "no sections extracted from documents", entries[0].Error)

	assert.Equal(t, "run-1", entries[1].RunID)
	assert.Equal(t, 7, entries[1].Documents)
	assert.Equal(t, 31, entries[1].Sections)
	assert.Equal(t, 1500*time.Millisecond, entries[1].Duration)
}

func TestLedger_ReopenKeepsRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	led, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, led.Record(ctx, Entry{RunID: "run-1", Collection: "travel", Status: StatusOK}))
	require.NoError(t, led.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.History(ctx, "travel")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLedger_NilIsNoOp(t *testing.T) {
	t.Parallel()

	var led *Ledger
	ctx := context.Background()

	assert.NoError(t, led.Record(ctx, Entry{Collection: "x"}))
	entries, err := led.History(ctx, "x")
	assert.NoError(t, err)
	assert.Nil(t, entries)
	assert.NoError(t, led.Close())
}
