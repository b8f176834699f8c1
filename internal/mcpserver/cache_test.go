package mcpserver

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/erraggy/oas2ir/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache_StoreAndLookup(t *testing.T) {
	c := newResultCache(4)
	r := &parser.Result{SourcePath: "a.json"}

	assert.Nil(t, c.lookup("a"))
	c.store("a", r, time.Minute)
	assert.Same(t, r, c.lookup("a"))
	assert.Equal(t, 1, c.len())

	replacement := &parser.Result{SourcePath: "a2.json"}
	c.store("a", replacement, time.Minute)
	assert.Same(t, replacement, c.lookup("a"))
	assert.Equal(t, 1, c.len())
}

func TestResultCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newResultCache(3)
	for i := range 3 {
		c.store(fmt.Sprintf("k%d", i), &parser.Result{}, time.Minute)
	}

	// Touch k0 so k1 becomes the eviction candidate.
	require.NotNil(t, c.lookup("k0"))
	c.store("k3", &parser.Result{}, time.Minute)

	assert.Equal(t, 3, c.len())
	assert.NotNil(t, c.lookup("k0"))
	assert.Nil(t, c.lookup("k1"))
	assert.NotNil(t, c.lookup("k2"))
	assert.NotNil(t, c.lookup("k3"))
}

func TestResultCache_ExpiredLookupDropsEntry(t *testing.T) {
	c := newResultCache(2)
	c.store("old", &parser.Result{}, -time.Second)

	assert.Nil(t, c.lookup("old"))
	assert.Equal(t, 0, c.len())
}

func TestResultCache_PurgeExpired(t *testing.T) {
	c := newResultCache(5)
	c.store("short", &parser.Result{}, time.Millisecond)
	c.store("long", &parser.Result{}, time.Hour)

	c.purgeExpired(time.Now().Add(time.Second))

	assert.Equal(t, 1, c.len())
	assert.NotNil(t, c.lookup("long"))
}

func TestResultCache_Clear(t *testing.T) {
	c := newResultCache(2)
	c.store("a", &parser.Result{}, time.Minute)
	c.clear()
	assert.Equal(t, 0, c.len())
	assert.Nil(t, c.lookup("a"))
}

func TestResultCache_SweeperStopsWithContext(t *testing.T) {
	c := newResultCache(2)
	c.store("a", &parser.Result{}, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	c.runSweeper(ctx, time.Millisecond)
	assert.True(t, c.sweeping.Load())

	assert.Eventually(t, func() bool { return c.len() == 0 }, time.Second, time.Millisecond)

	cancel()
	assert.Eventually(t, func() bool { return !c.sweeping.Load() }, time.Second, time.Millisecond)
}

func TestResultCache_SweeperIgnoresNonPositiveInterval(t *testing.T) {
	c := newResultCache(2)
	c.runSweeper(context.Background(), 0)
	assert.False(t, c.sweeping.Load())
}
