package boundary

import (
	"errors"
	"testing"

	"mapmatch/pkg/network"
)

func squareLoopInput() map[string]any {
	return map[string]any{
		"nodes": []any{
			map[string]any{"id": "n1", "name": "N1", "x": 0.0, "y": 0.0},
			map[string]any{"id": "n2", "x": 100.0, "y": 0.0},
		},
		"edges": []any{
			map[string]any{
				"id": "e1", "length": 100.0,
				"start_node_id": "n1", "end_node_id": "n2",
				"geom": []any{[]any{0.0, 0.0}, []any{100.0, 0.0}},
			},
		},
	}
}

func TestBuildRoadNetwork_ValidInput(t *testing.T) {
	net, err := BuildRoadNetwork(squareLoopInput(), network.BuildOptions{})
	if err != nil {
		t.Fatalf("BuildRoadNetwork: %v", err)
	}
	if _, ok := net.Edge("e1"); !ok {
		t.Errorf("expected edge e1 to exist")
	}
}

func TestBuildRoadNetwork_MissingNameDefaultsToEmpty(t *testing.T) {
	net, err := BuildRoadNetwork(squareLoopInput(), network.BuildOptions{})
	if err != nil {
		t.Fatalf("BuildRoadNetwork: %v", err)
	}
	e, _ := net.Edge("e1")
	if e.Name != "" {
		t.Errorf("expected empty name for edge missing \"name\", got %q", e.Name)
	}
}

func TestBuildRoadNetwork_MissingNodesField(t *testing.T) {
	input := squareLoopInput()
	delete(input, "nodes")
	_, err := BuildRoadNetwork(input, network.BuildOptions{})
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField, got %v", err)
	}
}

func TestBuildRoadNetwork_NonNumericCoordinate(t *testing.T) {
	input := squareLoopInput()
	nodes := input["nodes"].([]any)
	bad := map[string]any{"id": "n3", "x": "not-a-number", "y": 0.0}
	input["nodes"] = append(nodes, bad)

	_, err := BuildRoadNetwork(input, network.BuildOptions{})
	if !errors.Is(err, ErrNonNumericField) {
		t.Errorf("expected ErrNonNumericField, got %v", err)
	}
}

func TestBuildRoadNetwork_WrongEdgeShape(t *testing.T) {
	input := squareLoopInput()
	input["edges"] = []any{"not-an-object"}
	_, err := BuildRoadNetwork(input, network.BuildOptions{})
	if !errors.Is(err, ErrWrongShape) {
		t.Errorf("expected ErrWrongShape, got %v", err)
	}
}

func TestBuildTrack_RowsBecomePoints(t *testing.T) {
	rows := [][3]float64{{1, 2, 0}, {3, 4, 1}}
	track := BuildTrack("t1", rows)
	if track.ID != "t1" || len(track.Points) != 2 {
		t.Fatalf("unexpected track: %+v", track)
	}
	if track.Points[1].X != 3 || track.Points[1].Y != 4 || track.Points[1].Time != 1 {
		t.Errorf("unexpected point 1: %+v", track.Points[1])
	}
}

func TestSynthesizeTrackID_ZeroPadded(t *testing.T) {
	if got := SynthesizeTrackID(7); got != "track_007" {
		t.Errorf("SynthesizeTrackID(7) = %q, want track_007", got)
	}
	if got := SynthesizeTrackID(123); got != "track_123" {
		t.Errorf("SynthesizeTrackID(123) = %q, want track_123", got)
	}
}
