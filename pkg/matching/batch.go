package matching

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"mapmatch/pkg/network"
)

// BatchResult pairs a track's id with its match outcome. Found is false when
// the track produced no result.
type BatchResult struct {
	TrackID string
	Result  *MatchResult
	Found   bool
}

// MatchBatch matches every track against the shared network concurrently,
// bounded by params.NumThreads workers (0 means one worker per hardware
// thread). Each track's match is independent; the only shared mutable state
// is the network's path cache, which is internally synchronized. Results
// preserve input order regardless of completion order.
func MatchBatch(ctx context.Context, tracks []Track, net *network.RoadNetwork, params Params) ([]BatchResult, error) {
	results := make([]BatchResult, len(tracks))

	workers := params.NumThreads
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sem := semaphore.NewWeighted(int64(workers))
	group, groupCtx := errgroup.WithContext(ctx)

	for i, track := range tracks {
		i, track := i, track
		if err := sem.Acquire(groupCtx, 1); err != nil {
			group.Go(func() error { return err })
			break
		}
		group.Go(func() error {
			defer sem.Release(1)
			result, found := Match(track, net, params)
			results[i] = BatchResult{TrackID: track.ID, Result: result, Found: found}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
