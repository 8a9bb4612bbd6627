package boundary

import (
	"fmt"

	"mapmatch/pkg/matching"
	"mapmatch/pkg/network"
)

// BuildRoadNetwork converts a host dictionary of the shape
//
//	{ nodes: [ { id, name, x, y }, ... ],
//	  edges: [ { id, name, length, start_node_id, end_node_id, geom: [[x,y], ...] }, ... ] }
//
// into a RoadNetwork. A missing "name" is tolerated as an empty string;
// every other field is required and must be the expected type.
func BuildRoadNetwork(data map[string]any, opts network.BuildOptions) (*network.RoadNetwork, error) {
	rawNodes, ok := data["nodes"]
	if !ok {
		return nil, fmt.Errorf("%w: \"nodes\"", ErrMissingField)
	}
	nodeList, ok := rawNodes.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: \"nodes\" must be a list", ErrWrongShape)
	}

	rawEdges, ok := data["edges"]
	if !ok {
		return nil, fmt.Errorf("%w: \"edges\"", ErrMissingField)
	}
	edgeList, ok := rawEdges.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: \"edges\" must be a list", ErrWrongShape)
	}

	nodes := make([]network.Node, 0, len(nodeList))
	for i, raw := range nodeList {
		n, err := buildNode(raw)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		nodes = append(nodes, n)
	}

	edges := make([]network.Edge, 0, len(edgeList))
	for i, raw := range edgeList {
		e, err := buildEdge(raw)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		edges = append(edges, e)
	}

	return network.Build(nodes, edges, opts)
}

func buildNode(raw any) (network.Node, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return network.Node{}, fmt.Errorf("%w: node entry must be an object", ErrWrongShape)
	}

	id, err := requiredString(m, "id")
	if err != nil {
		return network.Node{}, err
	}
	name := optionalString(m, "name")
	x, err := requiredFloat(m, "x")
	if err != nil {
		return network.Node{}, err
	}
	y, err := requiredFloat(m, "y")
	if err != nil {
		return network.Node{}, err
	}

	return network.Node{ID: id, Name: name, X: x, Y: y}, nil
}

func buildEdge(raw any) (network.Edge, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return network.Edge{}, fmt.Errorf("%w: edge entry must be an object", ErrWrongShape)
	}

	id, err := requiredString(m, "id")
	if err != nil {
		return network.Edge{}, err
	}
	name := optionalString(m, "name")
	length, err := requiredFloat(m, "length")
	if err != nil {
		return network.Edge{}, err
	}
	startNodeID, err := requiredString(m, "start_node_id")
	if err != nil {
		return network.Edge{}, err
	}
	endNodeID, err := requiredString(m, "end_node_id")
	if err != nil {
		return network.Edge{}, err
	}

	rawGeom, ok := m["geom"]
	if !ok {
		return network.Edge{}, fmt.Errorf("%w: \"geom\"", ErrMissingField)
	}
	geomList, ok := rawGeom.([]any)
	if !ok {
		return network.Edge{}, fmt.Errorf("%w: \"geom\" must be a list of coordinate pairs", ErrWrongShape)
	}

	geom := make([][2]float64, 0, len(geomList))
	for i, rawCoord := range geomList {
		coord, ok := rawCoord.([]any)
		if !ok || len(coord) < 2 {
			return network.Edge{}, fmt.Errorf("%w: geom[%d] must have at least x, y", ErrWrongShape, i)
		}
		x, err := asFloat(coord[0])
		if err != nil {
			return network.Edge{}, fmt.Errorf("geom[%d][0]: %w", i, err)
		}
		y, err := asFloat(coord[1])
		if err != nil {
			return network.Edge{}, fmt.Errorf("geom[%d][1]: %w", i, err)
		}
		geom = append(geom, [2]float64{x, y})
	}

	return network.Edge{
		ID:          id,
		Name:        name,
		Length:      length,
		StartNodeID: startNodeID,
		EndNodeID:   endNodeID,
		Geom:        geom,
	}, nil
}

// BuildTrack converts a rectangular (n, 3) array of [x, y, t] rows into a
// Track. trackID is used verbatim; callers synthesize one with
// SynthesizeTrackID when the host supplied none.
func BuildTrack(trackID string, rows [][3]float64) matching.Track {
	points := make([]matching.TrackPoint, len(rows))
	for i, row := range rows {
		points[i] = matching.TrackPoint{X: row[0], Y: row[1], Time: row[2]}
	}
	return matching.Track{ID: trackID, Points: points}
}

// SynthesizeTrackID produces the default id for a track whose host input
// supplied none: "track_NNN" with a 3-digit zero-padded index.
func SynthesizeTrackID(index int) string {
	return fmt.Sprintf("track_%03d", index)
}

func requiredString(m map[string]any, key string) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string", ErrNonNumericField, key)
	}
	return s, nil
}

func optionalString(m map[string]any, key string) string {
	raw, ok := m[key]
	if !ok {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		return ""
	}
	return s
}

func requiredFloat(m map[string]any, key string) (float64, error) {
	raw, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	return asFloat(raw)
}

func asFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: expected a number, got %T", ErrNonNumericField, raw)
	}
}
