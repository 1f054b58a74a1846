package catalog

import (
	"sync"
	"time"
)

// DebounceDelay is how long filter input must be idle before uncommitted
// edits become active on their own.
const DebounceDelay = time.Second

// Committer is the two-stage filter state: edits accumulate in a draft and
// become the active (re-filtering) state either on explicit submit or after
// the input has been idle for the debounce delay, whichever comes first.
// Each commit fires onCommit exactly once with the final draft values.
//
// Safe for concurrent use; Close cancels any pending commit on teardown.
type Committer struct {
	mu       sync.Mutex
	draft    FilterState
	active   FilterState
	sortBy   SortKey
	delay    time.Duration
	timer    *time.Timer
	closed   bool
	onCommit func(FilterState, SortKey)
}

func NewCommitter(onCommit func(FilterState, SortKey)) *Committer {
	return &Committer{
		sortBy:   DefaultSort,
		delay:    DebounceDelay,
		onCommit: onCommit,
	}
}

// NewCommitterWithDelay exists for tests that cannot wait a full second.
func NewCommitterWithDelay(delay time.Duration, onCommit func(FilterState, SortKey)) *Committer {
	c := NewCommitter(onCommit)
	c.delay = delay
	return c
}

// Edit replaces the draft and restarts the debounce timer.
func (c *Committer) Edit(f FilterState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.draft = f
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, c.commitDeferred)
}

// SetSort changes the sort key; it takes effect on the next commit.
func (c *Committer) SetSort(key SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sortBy = key
}

// Submit commits the draft immediately and cancels any pending debounce.
func (c *Committer) Submit() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.stopTimerLocked()
	f, key := c.commitLocked()
	c.mu.Unlock()
	c.onCommit(f, key)
}

// Clear resets draft and active state to empty and the sort key to the
// default, then reports the reset downstream.
func (c *Committer) Clear() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.stopTimerLocked()
	c.draft = FilterState{}
	c.sortBy = DefaultSort
	f, key := c.commitLocked()
	c.mu.Unlock()
	c.onCommit(f, key)
}

// Active returns the committed filter state and sort key.
func (c *Committer) Active() (FilterState, SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active, c.sortBy
}

// Close cancels any pending debounced commit. Further calls are no-ops.
func (c *Committer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopTimerLocked()
}

func (c *Committer) commitDeferred() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	f, key := c.commitLocked()
	c.mu.Unlock()
	c.onCommit(f, key)
}

func (c *Committer) commitLocked() (FilterState, SortKey) {
	c.active = c.draft
	return c.active, c.sortBy
}

func (c *Committer) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
