package cache

import (
	"errors"
	"sync"
	"testing"
)

func value[V any](v V) func() (V, error) {
	return func() (V, error) { return v, nil }
}

func mustLoad[K comparable, V any](t *testing.T, c *Cache[K, V], key K, v V) V {
	t.Helper()
	got, err := c.GetOrLoad(key, value(v))
	if err != nil {
		t.Fatalf("GetOrLoad(%v) error = %v", key, err)
	}
	return got
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	mustLoad(t, c, "a", 1)
	mustLoad(t, c, "b", 2)
	mustLoad(t, c, "a", 0) // hit, a becomes most recent
	mustLoad(t, c, "c", 3) // evicts b

	if got := mustLoad(t, c, "a", -1); got != 1 {
		t.Errorf("a = %d, want cached 1", got)
	}
	if got := mustLoad(t, c, "b", 20); got != 20 {
		t.Errorf("b = %d, want reloaded 20 after eviction", got)
	}

	s := c.Stats()
	if s.Len != 2 || s.Capacity != 2 {
		t.Errorf("Stats() Len, Capacity = %d, %d, want 2, 2", s.Len, s.Capacity)
	}
	if s.Evictions != 2 {
		t.Errorf("Evictions = %d, want 2", s.Evictions)
	}
}

func TestCacheGetOrLoad(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	load := func() (int, error) {
		calls++
		return 7, nil
	}
	for range 3 {
		v, err := c.GetOrLoad("k", load)
		if err != nil || v != 7 {
			t.Fatalf("GetOrLoad() = %d, %v, want 7, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}

	errBoom := errors.New("boom")
	if _, err := c.GetOrLoad("bad", func() (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Errorf("GetOrLoad() error = %v, want %v", err, errBoom)
	}
	if got := mustLoad(t, c, "bad", 3); got != 3 {
		t.Errorf("failed load was cached: got %d", got)
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 3 {
		t.Errorf("Stats() hits, misses = %d, %d, want 2, 3", s.Hits, s.Misses)
	}
}

func TestCacheClear(t *testing.T) {
	c := New[int, int](0)
	for i := range 5 {
		mustLoad(t, c, i, i*i)
	}
	c.Clear()
	s := c.Stats()
	if s.Len != 0 {
		t.Errorf("Len after Clear = %d, want 0", s.Len)
	}
	if s.Misses != 5 {
		t.Errorf("Misses after Clear = %d, want 5, counters are kept", s.Misses)
	}
	if got := mustLoad(t, c, 2, 40); got != 40 {
		t.Errorf("GetOrLoad(2) after Clear = %d, want reloaded 40", got)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](8)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				_, _ = c.GetOrLoad((g+i)%16, value(i))
			}
		}()
	}
	wg.Wait()
	if got := c.Stats().Len; got > 8 {
		t.Errorf("Len = %d, want at most 8", got)
	}
}
