package boundary

import "mapmatch/pkg/matching"

// Output is the host-facing shape of a successful match: a (n, 2) array of
// matched points, their edge ids, the path's log-probability, and the
// per-step candidate index trace.
type Output struct {
	TrackID        string
	MatchedPoints  [][2]float64
	EdgeIDs        []string
	LogProbability float64
	PathIndices    []int
}

// MatchResultToOutput converts an internal MatchResult into its host-facing
// shape. Returns (Output{}, false) when result is nil, mirroring the "no
// result" outcome for a failed per-track match.
func MatchResultToOutput(trackID string, result *matching.MatchResult) (Output, bool) {
	if result == nil {
		return Output{}, false
	}

	matchedPoints := make([][2]float64, len(result.MatchedPoints))
	edgeIDs := make([]string, len(result.MatchedPoints))
	for i, mp := range result.MatchedPoints {
		matchedPoints[i] = [2]float64{mp.X, mp.Y}
		edgeIDs[i] = mp.EdgeID
	}

	return Output{
		TrackID:        trackID,
		MatchedPoints:  matchedPoints,
		EdgeIDs:        edgeIDs,
		LogProbability: result.LogProbability,
		PathIndices:    result.PathIndices,
	}, true
}
