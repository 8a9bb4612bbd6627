package matching

import (
	"math"
	"testing"

	"mapmatch/pkg/network"
)

func squareLoopNetwork(t *testing.T) *network.RoadNetwork {
	t.Helper()
	nodes := []network.Node{
		{ID: "n1", X: 0, Y: 0},
		{ID: "n2", X: 100, Y: 0},
		{ID: "n3", X: 100, Y: 100},
		{ID: "n4", X: 0, Y: 100},
	}
	edges := []network.Edge{
		{ID: "e1", Length: 100, StartNodeID: "n1", EndNodeID: "n2", Geom: [][2]float64{{0, 0}, {50, 0}, {100, 0}}},
		{ID: "e2", Length: 100, StartNodeID: "n2", EndNodeID: "n3", Geom: [][2]float64{{100, 0}, {100, 50}, {100, 100}}},
		{ID: "e3", Length: 100, StartNodeID: "n3", EndNodeID: "n4", Geom: [][2]float64{{100, 100}, {50, 100}, {0, 100}}},
		{ID: "e4", Length: 100, StartNodeID: "n4", EndNodeID: "n1", Geom: [][2]float64{{0, 100}, {0, 50}, {0, 0}}},
	}
	net, err := network.Build(nodes, edges, network.BuildOptions{})
	if err != nil {
		t.Fatalf("network.Build: %v", err)
	}
	return net
}

func TestComputeObservationProb_PeaksAtZeroDistance(t *testing.T) {
	atZero := computeObservationProb(0, 10)
	atTen := computeObservationProb(10, 10)
	if atZero <= atTen {
		t.Errorf("expected log-prob at distance 0 (%f) to exceed at distance 10 (%f)", atZero, atTen)
	}
}

func TestGenerateCandidatesForPoint_DropsBeyondRadius(t *testing.T) {
	net := squareLoopNetwork(t)
	point := TrackPoint{X: 5, Y: 2}
	candidates := GenerateCandidatesForPoint(point, net, 50, 10)

	if len(candidates) == 0 {
		t.Fatalf("expected at least one candidate near (5,2)")
	}
	for _, c := range candidates {
		if c.Distance > 50 {
			t.Errorf("candidate distance %f exceeds radius 50", c.Distance)
		}
	}
}

func TestGenerateCandidatesForPoint_FarObservationYieldsNone(t *testing.T) {
	net := squareLoopNetwork(t)
	point := TrackPoint{X: 500, Y: 500}
	candidates := GenerateCandidatesForPoint(point, net, 50, 10)
	if len(candidates) != 0 {
		t.Errorf("expected zero candidates far from every edge, got %d", len(candidates))
	}
}

func TestCandidatePoint_DistanceTo_SameEdge(t *testing.T) {
	a := CandidatePoint{EdgeID: "e1", DistanceAlongEdge: 10}
	b := CandidatePoint{EdgeID: "e1", DistanceAlongEdge: 40}
	net := squareLoopNetwork(t)
	if d := a.distanceTo(b, net); d != 30 {
		t.Errorf("same-edge distance = %f, want 30", d)
	}
}

func TestCandidatePoint_DistanceTo_DifferentEdges(t *testing.T) {
	net := squareLoopNetwork(t)
	a := CandidatePoint{EdgeID: "e1", DistanceAlongEdge: 90}
	b := CandidatePoint{EdgeID: "e2", DistanceAlongEdge: 10}
	d := a.distanceTo(b, net)
	if math.IsInf(d, 0) || d < 0 {
		t.Errorf("expected a finite nonnegative cross-edge distance, got %f", d)
	}
	// e1 ends exactly where e2 starts, so the walk is (100-90) + 0 + 10 = 20.
	if math.Abs(d-20) > 1e-9 {
		t.Errorf("cross-edge distance = %f, want 20", d)
	}
}
