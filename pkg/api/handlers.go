package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"sync/atomic"

	"mapmatch/pkg/boundary"
	"mapmatch/pkg/matching"
	"mapmatch/pkg/network"
)

// Handlers holds the HTTP handlers. Each /api/v1/match request builds and
// matches against its own network, per the boundary contract; lastNetwork
// tracks the most recently built one so /api/v1/stats has something to
// report.
type Handlers struct {
	lastNetwork atomic.Pointer[network.RoadNetwork]
}

// NewHandlers creates an empty Handlers ready to serve requests.
func NewHandlers() *Handlers {
	return &Handlers{}
}

// HandleMatch handles POST /api/v1/match.
func (h *Handlers) HandleMatch(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 10<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	netData := networkJSONToDict(req.Network)
	net, err := boundary.BuildRoadNetwork(netData, network.BuildOptions{})
	if err != nil {
		if errors.Is(err, boundary.ErrMissingField) || errors.Is(err, boundary.ErrWrongShape) || errors.Is(err, boundary.ErrNonNumericField) {
			writeError(w, http.StatusBadRequest, "invalid_network", "network")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	h.lastNetwork.Store(net)

	params := matching.DefaultParams()
	if req.GPSSigma > 0 {
		params.GPSSigma = req.GPSSigma
	}
	if req.Beta > 0 {
		params.Beta = req.Beta
	}
	if req.SearchRadius > 0 {
		params.SearchRadius = req.SearchRadius
	}
	params.NumThreads = req.NumThreads

	tracks := make([]matching.Track, len(req.Tracks))
	for i, t := range req.Tracks {
		id := t.ID
		if id == "" {
			id = boundary.SynthesizeTrackID(i)
		}
		tracks[i] = boundary.BuildTrack(id, t.Points)
	}

	batchResults, err := matching.MatchBatch(r.Context(), tracks, net, params)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "")
		return
	}

	resp := MatchResponse{Results: make([]MatchResultJSON, len(batchResults))}
	for i, br := range batchResults {
		out, found := boundary.MatchResultToOutput(br.TrackID, br.Result)
		if !found {
			resp.Results[i] = MatchResultJSON{TrackID: br.TrackID, Found: false}
			continue
		}
		resp.Results[i] = MatchResultJSON{
			TrackID:        out.TrackID,
			Found:          true,
			MatchedPoints:  out.MatchedPoints,
			EdgeIDs:        out.EdgeIDs,
			LogProbability: out.LogProbability,
			PathIndices:    out.PathIndices,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// HandleStats handles GET /api/v1/stats.
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	net := h.lastNetwork.Load()
	if net == nil {
		json.NewEncoder(w).Encode(StatsResponse{})
		return
	}
	json.NewEncoder(w).Encode(StatsResponse{
		CacheHitRate: net.CacheHitRate(),
		CacheSize:    net.CacheSize(),
	})
}

func networkJSONToDict(n NetworkJSON) map[string]any {
	nodes := make([]any, len(n.Nodes))
	for i, node := range n.Nodes {
		nodes[i] = map[string]any{"id": node.ID, "name": node.Name, "x": node.X, "y": node.Y}
	}
	edges := make([]any, len(n.Edges))
	for i, edge := range n.Edges {
		geom := make([]any, len(edge.Geom))
		for j, c := range edge.Geom {
			geom[j] = []any{c[0], c[1]}
		}
		edges[i] = map[string]any{
			"id": edge.ID, "name": edge.Name, "length": edge.Length,
			"start_node_id": edge.StartNodeID, "end_node_id": edge.EndNodeID,
			"geom": geom,
		}
	}
	dict := map[string]any{"nodes": nodes, "edges": edges}
	// An absent or null list stays absent, so BuildRoadNetwork reports it as
	// a missing field.
	if n.Nodes == nil {
		delete(dict, "nodes")
	}
	if n.Edges == nil {
		delete(dict, "edges")
	}
	return dict
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code, Field: field})
}
