package matching

import (
	"math"

	"mapmatch/pkg/network"
)

// MatchResult is the outcome of matching one track: the selected candidate
// per observation that has candidates (a step with none contributes no
// matched point, so MatchedPoints can be shorter than PathIndices), the joint
// log-probability of the chosen path, the index trace through the per-step
// candidate lists, and the full candidate lattice retained for inspection.
type MatchResult struct {
	MatchedPoints  []CandidatePoint
	LogProbability float64
	PathIndices    []int
	Candidates     [][]CandidatePoint
}

// Match runs the full pipeline for a single track: candidate generation,
// Viterbi forward, Viterbi backward. Returns (nil, false) when the track is
// empty, has no candidates at any step, or the forward pass cannot be
// initialized — none of these are errors, just "no result".
func Match(track Track, net *network.RoadNetwork, params Params) (*MatchResult, bool) {
	if len(track.Points) == 0 {
		return nil, false
	}

	candidates := GenerateCandidatesForTrack(track, net, params.SearchRadius, params.GPSSigma)

	anyCandidates := false
	for _, c := range candidates {
		if len(c) > 0 {
			anyCandidates = true
			break
		}
	}
	if !anyCandidates {
		return nil, false
	}

	state := viterbiForward(candidates, net, params.Beta)
	if state == nil {
		return nil, false
	}

	pathIndices := viterbiBackward(state)
	if len(pathIndices) == 0 {
		return nil, false
	}

	matchedPoints := make([]CandidatePoint, 0, len(pathIndices))
	for t, idx := range pathIndices {
		if len(candidates[t]) > 0 && idx < len(candidates[t]) {
			matchedPoints = append(matchedPoints, candidates[t][idx])
		}
	}

	nSteps := len(state.viterbiProb)
	logProbability := math.Inf(-1)
	if last := state.viterbiProb[nSteps-1]; len(last) > 0 {
		lastIdx := pathIndices[nSteps-1]
		if lastIdx < len(last) {
			logProbability = last[lastIdx]
		}
	}

	return &MatchResult{
		MatchedPoints:  matchedPoints,
		LogProbability: logProbability,
		PathIndices:    pathIndices,
		Candidates:     candidates,
	}, true
}
