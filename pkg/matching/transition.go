package matching

import (
	"math"

	"mapmatch/pkg/geo"
	"mapmatch/pkg/network"
)

// computeTransitionProb returns the log-probability of a transition whose
// network route distance deviates from the apparent direct distance, under
// an exponential-deviation model with rate beta:
//
//	ln p = -ln(beta) - |route - direct| / beta
//
// When routeDistance is +Inf, the log-probability is -Inf.
func computeTransitionProb(routeDistance, directDistance, beta float64) float64 {
	if math.IsInf(routeDistance, 1) {
		return math.Inf(-1)
	}
	diff := math.Abs(routeDistance - directDistance)
	return -math.Log(beta) - diff/beta
}

// computeTransitionMatrix returns T[i][j], the log transition probability
// from the i-th previous candidate to the j-th current candidate, given the
// two raw observations the candidate sets were generated from.
func computeTransitionMatrix(prev, curr []CandidatePoint, prevX, prevY, currX, currY float64, net *network.RoadNetwork, beta float64) [][]float64 {
	directDistance := geo.SmartDistance(prevX, prevY, currX, currY)

	matrix := make([][]float64, len(prev))
	for i, prevCand := range prev {
		row := make([]float64, len(curr))
		for j, currCand := range curr {
			routeDistance := prevCand.distanceTo(currCand, net)
			row[j] = computeTransitionProb(routeDistance, directDistance, beta)
		}
		matrix[i] = row
	}
	return matrix
}
