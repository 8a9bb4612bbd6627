// Package matching implements the HMM/Viterbi map-matching engine: candidate
// generation, the transition model, and the forward/backward matcher, plus a
// parallel batch driver over independent tracks.
package matching

// TrackPoint is a single timestamped observation. MatchedX/MatchedY and
// MatchedEdgeID are optional, populated by the caller after a match.
type TrackPoint struct {
	X, Y          float64
	Time          float64
	MatchedX      float64
	MatchedY      float64
	MatchedEdgeID string
}

// Track is an identified, ordered sequence of observations.
type Track struct {
	ID     string
	Points []TrackPoint
}
