package api

// NodeJSON is a single node in a MatchRequest's network description.
type NodeJSON struct {
	ID   string  `json:"id"`
	Name string  `json:"name,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// EdgeJSON is a single edge in a MatchRequest's network description.
type EdgeJSON struct {
	ID          string       `json:"id"`
	Name        string       `json:"name,omitempty"`
	Length      float64      `json:"length"`
	StartNodeID string       `json:"start_node_id"`
	EndNodeID   string       `json:"end_node_id"`
	Geom        [][2]float64 `json:"geom"`
}

// NetworkJSON is the road-network description accepted at the boundary.
type NetworkJSON struct {
	Nodes []NodeJSON `json:"nodes"`
	Edges []EdgeJSON `json:"edges"`
}

// TrackJSON is one track: an id and a flat list of [x, y, t] rows.
type TrackJSON struct {
	ID     string       `json:"id,omitempty"`
	Points [][3]float64 `json:"points"`
}

// MatchRequest is the JSON body for POST /api/v1/match.
type MatchRequest struct {
	Network      NetworkJSON `json:"network"`
	Tracks       []TrackJSON `json:"tracks"`
	GPSSigma     float64     `json:"gps_sigma,omitempty"`
	Beta         float64     `json:"beta,omitempty"`
	SearchRadius float64     `json:"search_radius,omitempty"`
	NumThreads   int         `json:"num_threads,omitempty"`
}

// MatchResultJSON is the JSON shape of one track's match outcome. A track
// with no result (empty track, no candidates anywhere) is represented by
// its TrackID, Found == false, and the other fields omitted.
type MatchResultJSON struct {
	TrackID        string       `json:"track_id"`
	Found          bool         `json:"found"`
	MatchedPoints  [][2]float64 `json:"matched_points,omitempty"`
	EdgeIDs        []string     `json:"edge_ids,omitempty"`
	LogProbability float64      `json:"log_probability,omitempty"`
	PathIndices    []int        `json:"path_indices,omitempty"`
}

// MatchResponse is the JSON response for POST /api/v1/match, one result per
// input track, preserving order.
type MatchResponse struct {
	Results []MatchResultJSON `json:"results"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// StatsResponse is the JSON response for GET /api/v1/stats.
type StatsResponse struct {
	CacheHitRate float64 `json:"cache_hit_rate"`
	CacheSize    int64   `json:"cache_size"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
