package matching

import (
	"context"
	"testing"
)

func TestMatchBatch_PreservesInputOrder(t *testing.T) {
	net := squareLoopNetwork(t)
	base := squareLoopTrack()

	tracks := make([]Track, 20)
	for i := range tracks {
		tracks[i] = Track{ID: base.ID, Points: base.Points}
	}

	results, err := MatchBatch(context.Background(), tracks, net, Params{GPSSigma: 10, Beta: 5, SearchRadius: 50})
	if err != nil {
		t.Fatalf("MatchBatch: %v", err)
	}
	if len(results) != len(tracks) {
		t.Fatalf("got %d results, want %d", len(results), len(tracks))
	}

	sequential, ok := Match(base, net, Params{GPSSigma: 10, Beta: 5, SearchRadius: 50})
	if !ok {
		t.Fatalf("expected sequential match to succeed")
	}

	for i, r := range results {
		if !r.Found {
			t.Fatalf("result %d: expected a match", i)
		}
		if len(r.Result.PathIndices) != len(sequential.PathIndices) {
			t.Fatalf("result %d: path length mismatch", i)
		}
		for step, idx := range r.Result.PathIndices {
			if idx != sequential.PathIndices[step] {
				t.Errorf("result %d step %d: path index %d, want %d (sequential)", i, step, idx, sequential.PathIndices[step])
			}
		}
	}
}

func TestMatchBatch_EmptyTrackYieldsNotFoundWithoutFailingBatch(t *testing.T) {
	net := squareLoopNetwork(t)
	tracks := []Track{
		squareLoopTrack(),
		{ID: "empty"},
		squareLoopTrack(),
	}

	results, err := MatchBatch(context.Background(), tracks, net, Params{GPSSigma: 10, Beta: 5, SearchRadius: 50})
	if err != nil {
		t.Fatalf("MatchBatch: %v", err)
	}
	if results[1].Found {
		t.Errorf("expected empty track to produce no result")
	}
	if !results[0].Found || !results[2].Found {
		t.Errorf("expected the other tracks to still match")
	}
}

func TestMatchBatch_HighCacheHitRateOnRepeatedTracks(t *testing.T) {
	net := squareLoopNetwork(t)
	base := squareLoopTrack()
	tracks := make([]Track, 100)
	for i := range tracks {
		tracks[i] = Track{ID: base.ID, Points: base.Points}
	}

	_, err := MatchBatch(context.Background(), tracks, net, Params{GPSSigma: 10, Beta: 5, SearchRadius: 50})
	if err != nil {
		t.Fatalf("MatchBatch: %v", err)
	}
	if rate := net.CacheHitRate(); rate < 0.9 {
		t.Errorf("cache hit rate = %f after 100 identical tracks, want >= 0.9", rate)
	}
}
