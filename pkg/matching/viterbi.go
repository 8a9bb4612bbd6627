package matching

import (
	"math"

	"mapmatch/pkg/network"
)

// Params holds the tunable knobs of the matcher. The zero value is invalid;
// use DefaultParams.
type Params struct {
	GPSSigma     float64
	Beta         float64
	SearchRadius float64
	NumThreads   int
}

// DefaultParams returns the matcher's documented defaults.
func DefaultParams() Params {
	return Params{
		GPSSigma:     50.0,
		Beta:         5.0,
		SearchRadius: 100.0,
		NumThreads:   0,
	}
}

// viterbiState holds the forward DP tables: viterbiProb[t][i] is the best
// log-probability of any path ending at candidate (t, i); backpointer[t][i]
// is the index into candidates[t-1] of the predecessor achieving it.
type viterbiState struct {
	viterbiProb [][]float64
	backpointer [][]int
}

// viterbiForward runs the forward pass described in the matcher design:
// empty candidate steps are skipped over, and a step following an empty
// predecessor step restarts the chain rather than failing the whole track.
// Returns nil if there is no first step to initialize from.
func viterbiForward(candidates [][]CandidatePoint, net *network.RoadNetwork, beta float64) *viterbiState {
	if len(candidates) == 0 {
		return nil
	}
	if len(candidates[0]) == 0 {
		return nil
	}

	nSteps := len(candidates)
	viterbiProb := make([][]float64, nSteps)
	backpointer := make([][]int, nSteps)

	firstProbs := make([]float64, len(candidates[0]))
	for i, c := range candidates[0] {
		firstProbs[i] = c.ObservationProb
	}
	viterbiProb[0] = firstProbs
	backpointer[0] = make([]int, len(candidates[0]))

	for t := 1; t < nSteps; t++ {
		prev := candidates[t-1]
		curr := candidates[t]

		if len(curr) == 0 {
			viterbiProb[t] = nil
			backpointer[t] = nil
			continue
		}

		if len(prev) == 0 {
			probs := make([]float64, len(curr))
			for j, c := range curr {
				probs[j] = c.ObservationProb
			}
			viterbiProb[t] = probs
			backpointer[t] = make([]int, len(curr))
			continue
		}

		prevObs := prev[0]
		currObs := curr[0]
		transMatrix := computeTransitionMatrix(prev, curr, prevObs.ObservationX, prevObs.ObservationY, currObs.ObservationX, currObs.ObservationY, net, beta)

		prevProbs := viterbiProb[t-1]
		currProbs := make([]float64, len(curr))
		currBackpointer := make([]int, len(curr))

		for j, currCand := range curr {
			maxProb := math.Inf(-1)
			bestPrev := 0
			for i, prevProb := range prevProbs {
				prob := prevProb + transMatrix[i][j]
				if prob > maxProb {
					maxProb = prob
					bestPrev = i
				}
			}
			currProbs[j] = maxProb + currCand.ObservationProb
			currBackpointer[j] = bestPrev
		}

		viterbiProb[t] = currProbs
		backpointer[t] = currBackpointer
	}

	return &viterbiState{viterbiProb: viterbiProb, backpointer: backpointer}
}

// viterbiBackward traces the maximum-likelihood path through the lattice.
// When a step's backpointer row is empty (a dead step), it emits index 0 and
// continues, a soft degradation mirroring the forward restart rule rather
// than truncating the result.
func viterbiBackward(state *viterbiState) []int {
	nSteps := len(state.viterbiProb)
	if nSteps == 0 {
		return nil
	}

	lastProbs := state.viterbiProb[nSteps-1]
	if len(lastProbs) == 0 {
		return nil
	}

	path := make([]int, nSteps)

	bestLast := 0
	maxProb := math.Inf(-1)
	for i, prob := range lastProbs {
		if prob > maxProb {
			maxProb = prob
			bestLast = i
		}
	}
	path[nSteps-1] = bestLast

	for t := nSteps - 1; t >= 1; t-- {
		curr := path[t]
		if len(state.backpointer[t]) == 0 {
			path[t-1] = 0
		} else {
			path[t-1] = state.backpointer[t][curr]
		}
	}

	return path
}
