package network

import "testing"

func TestPathCache_HitRateTracksGetCalls(t *testing.T) {
	c, err := newPathCache(100)
	if err != nil {
		t.Fatalf("newPathCache: %v", err)
	}

	if rate := c.hitRate(); rate != 0 {
		t.Errorf("empty cache hit rate = %f, want 0", rate)
	}

	if _, ok := c.get("a->b"); ok {
		t.Errorf("expected miss on empty cache")
	}

	c.set("a->b", pathCacheValue{pathDistance: 10, fromEdgeLength: 2})
	c.cache.Wait()

	if v, ok := c.get("a->b"); !ok || v.pathDistance != 10 {
		t.Errorf("expected hit with pathDistance 10, got %+v ok=%v", v, ok)
	}

	if rate := c.hitRate(); rate <= 0 || rate > 1 {
		t.Errorf("hit rate = %f, want in (0,1]", rate)
	}
}

func TestPathCache_ClearResetsCountersAndEntries(t *testing.T) {
	c, err := newPathCache(100)
	if err != nil {
		t.Fatalf("newPathCache: %v", err)
	}
	c.set("x", pathCacheValue{pathDistance: 1})
	c.cache.Wait()
	c.get("x")

	c.clear()
	c.cache.Wait()

	if rate := c.hitRate(); rate != 0 {
		t.Errorf("hit rate after clear = %f, want 0", rate)
	}
	if _, ok := c.get("x"); ok {
		t.Errorf("expected miss after clear")
	}
}
