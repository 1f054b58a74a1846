package catalog_test

import (
	"sync"
	"testing"
	"time"

	"github.com/nerkartran297/english-center-api/internal/catalog"

	"github.com/stretchr/testify/require"
)

type commitRecorder struct {
	mu      sync.Mutex
	commits []catalog.FilterState
	keys    []catalog.SortKey
}

func (r *commitRecorder) record(f catalog.FilterState, key catalog.SortKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commits = append(r.commits, f)
	r.keys = append(r.keys, key)
}

func (r *commitRecorder) snapshot() []catalog.FilterState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]catalog.FilterState(nil), r.commits...)
}

func TestCommitter_RapidEditsCommitOnce(t *testing.T) {
	rec := &commitRecorder{}
	c := catalog.NewCommitterWithDelay(20*time.Millisecond, rec.record)
	defer c.Close()

	c.Edit(catalog.FilterState{TeacherName: "j"})
	c.Edit(catalog.FilterState{TeacherName: "jo"})
	c.Edit(catalog.FilterState{TeacherName: "john"})

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	commits := rec.snapshot()
	require.Equal(t, "john", commits[0].TeacherName)

	// No stray second commit after the window.
	time.Sleep(50 * time.Millisecond)
	require.Len(t, rec.snapshot(), 1)
}

func TestCommitter_SubmitWinsOverDebounce(t *testing.T) {
	rec := &commitRecorder{}
	c := catalog.NewCommitterWithDelay(time.Hour, rec.record)
	defer c.Close()

	c.Edit(catalog.FilterState{PriceFrom: "100"})
	c.Submit()

	commits := rec.snapshot()
	require.Len(t, commits, 1)
	require.Equal(t, "100", commits[0].PriceFrom)

	active, _ := c.Active()
	require.Equal(t, "100", active.PriceFrom)
}

func TestCommitter_ClearResetsStateAndSort(t *testing.T) {
	rec := &commitRecorder{}
	c := catalog.NewCommitterWithDelay(time.Hour, rec.record)
	defer c.Close()

	c.SetSort(catalog.SortPriceAsc)
	c.Edit(catalog.FilterState{MinRating: "4"})
	c.Submit()

	c.Clear()

	active, key := c.Active()
	require.True(t, active.IsZero())
	require.Equal(t, catalog.DefaultSort, key)
}

func TestCommitter_CloseCancelsPendingCommit(t *testing.T) {
	rec := &commitRecorder{}
	c := catalog.NewCommitterWithDelay(20*time.Millisecond, rec.record)

	c.Edit(catalog.FilterState{TeacherName: "stale"})
	c.Close()

	time.Sleep(60 * time.Millisecond)
	require.Empty(t, rec.snapshot())
}
