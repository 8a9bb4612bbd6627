package matching

import (
	"math"

	"mapmatch/pkg/geo"
	"mapmatch/pkg/network"
)

// CandidatePoint is a projection of one observation onto one nearby edge,
// carrying its precomputed observation log-probability. It is one state of
// the Viterbi lattice.
type CandidatePoint struct {
	X, Y              float64
	Distance          float64
	DistanceAlongEdge float64
	EdgeID            string
	ObservationX      float64
	ObservationY      float64
	ObservationProb   float64
}

// computeObservationProb returns the log-probability of observing a point at
// perpendicular distance d from a candidate, under a zero-mean Gaussian with
// standard deviation sigma:
//
//	ln p = -ln(sigma*sqrt(2*pi)) - d^2 / (2*sigma^2)
func computeObservationProb(distance, sigma float64) float64 {
	logCoefficient := -math.Log(sigma * math.Sqrt(2*math.Pi))
	exponent := -(distance * distance) / (2 * sigma * sigma)
	return logCoefficient + exponent
}

// distanceTo computes the route distance from this candidate to other,
// using the fast in-edge arc-length difference when both candidates sit on
// the same edge, and the network's memoized shortest path otherwise.
func (c CandidatePoint) distanceTo(other CandidatePoint, net *network.RoadNetwork) float64 {
	if c.EdgeID == other.EdgeID {
		return math.Abs(other.DistanceAlongEdge - c.DistanceAlongEdge)
	}

	pathDistance, fromEdgeLength := net.ComputeEdgeShortestPath(c.EdgeID, other.EdgeID)
	if math.IsInf(pathDistance, 1) {
		return math.Inf(1)
	}

	fromToEnd := fromEdgeLength - c.DistanceAlongEdge
	return fromToEnd + pathDistance + other.DistanceAlongEdge
}

// GenerateCandidatesForPoint finds every edge within radius of the
// observation, projects the observation onto each, and drops projections
// whose perpendicular distance exceeds radius.
func GenerateCandidatesForPoint(point TrackPoint, net *network.RoadNetwork, radius, gpsSigma float64) []CandidatePoint {
	edges := net.FindCandidateEdges(point.X, point.Y, radius)

	candidates := make([]CandidatePoint, 0, len(edges))
	for _, edge := range edges {
		proj := geo.ProjectToPolyline(point.X, point.Y, edge.Geom)
		if proj.Distance > radius {
			continue
		}
		candidates = append(candidates, CandidatePoint{
			X:                 proj.X,
			Y:                 proj.Y,
			Distance:          proj.Distance,
			DistanceAlongEdge: proj.DistanceAlongEdge,
			EdgeID:            edge.ID,
			ObservationX:      point.X,
			ObservationY:      point.Y,
			ObservationProb:   computeObservationProb(proj.Distance, gpsSigma),
		})
	}
	return candidates
}

// GenerateCandidatesForTrack produces the per-observation candidate lists for
// a whole track, in order.
func GenerateCandidatesForTrack(track Track, net *network.RoadNetwork, radius, gpsSigma float64) [][]CandidatePoint {
	candidates := make([][]CandidatePoint, len(track.Points))
	for i, point := range track.Points {
		candidates[i] = GenerateCandidatesForPoint(point, net, radius, gpsSigma)
	}
	return candidates
}
