package boundary

import (
	"testing"

	"mapmatch/pkg/matching"
)

func TestMatchResultToOutput_NilResultIsNotFound(t *testing.T) {
	_, ok := MatchResultToOutput("t1", nil)
	if ok {
		t.Errorf("expected not-found for nil result")
	}
}

func TestMatchResultToOutput_MapsFields(t *testing.T) {
	result := &matching.MatchResult{
		MatchedPoints: []matching.CandidatePoint{
			{X: 1, Y: 2, EdgeID: "e1"},
			{X: 3, Y: 4, EdgeID: "e2"},
		},
		LogProbability: -12.5,
		PathIndices:    []int{0, 1},
	}

	out, ok := MatchResultToOutput("t1", result)
	if !ok {
		t.Fatalf("expected found result")
	}
	if out.TrackID != "t1" {
		t.Errorf("TrackID = %q, want t1", out.TrackID)
	}
	if len(out.MatchedPoints) != 2 || out.MatchedPoints[1] != [2]float64{3, 4} {
		t.Errorf("unexpected matched points: %v", out.MatchedPoints)
	}
	if len(out.EdgeIDs) != 2 || out.EdgeIDs[0] != "e1" || out.EdgeIDs[1] != "e2" {
		t.Errorf("unexpected edge ids: %v", out.EdgeIDs)
	}
	if out.LogProbability != -12.5 {
		t.Errorf("LogProbability = %f, want -12.5", out.LogProbability)
	}
}
