// Package network owns the road network model: nodes, directed edges, a CSR
// routing graph, a spatial index over edge bounding boxes, and a bounded
// cache of inter-edge shortest-path results.
package network

import (
	"fmt"
	"math"

	"github.com/tidwall/rtree"

	"mapmatch/pkg/geo"
)

// DefaultBBoxEpsilon is the amount a degenerate (point or zero-width)
// bounding box is inflated by on its collapsed axes before insertion into
// the spatial index, so that a zero-area box still participates in range
// queries.
const DefaultBBoxEpsilon = 1e-6

// metersPerDegreeLat approximates the length of one degree of latitude, used
// to convert a metric search radius into a geographic bounding box.
const metersPerDegreeLat = 111_320.0

// RoadNetwork is the authoritative, built-once container for a road graph:
// nodes, edges, the directed routing graph, a spatial index over edge
// bounding boxes, and a concurrent memoization cache of inter-edge shortest
// paths. It is read-only after Build returns except for the cache.
type RoadNetwork struct {
	nodes      map[string]Node
	edges      map[string]Edge
	nodeVertex map[string]int32

	graph *directedGraph
	index rtree.RTreeG[string]

	cache *pathCache
}

// BuildOptions customizes RoadNetwork construction. The zero value uses
// DefaultCacheCapacity and DefaultBBoxEpsilon.
type BuildOptions struct {
	CacheCapacity int64
	BBoxEpsilon   float64
}

// Build constructs a RoadNetwork from a flat node and edge list. Edges whose
// start or end node id does not resolve are dropped, following the
// dangling-endpoint invariant.
func Build(nodes []Node, edges []Edge, opts BuildOptions) (*RoadNetwork, error) {
	if opts.CacheCapacity <= 0 {
		opts.CacheCapacity = DefaultCacheCapacity
	}
	if opts.BBoxEpsilon <= 0 {
		opts.BBoxEpsilon = DefaultBBoxEpsilon
	}

	nodeMap := make(map[string]Node, len(nodes))
	nodeVertex := make(map[string]int32, len(nodes))
	for _, n := range nodes {
		nodeMap[n.ID] = n
		if _, exists := nodeVertex[n.ID]; !exists {
			nodeVertex[n.ID] = int32(len(nodeVertex))
		}
	}

	edgeMap := make(map[string]Edge, len(edges))
	arcs := make([]arc, 0, len(edges))
	for _, e := range edges {
		startVertex, startOK := nodeVertex[e.StartNodeID]
		endVertex, endOK := nodeVertex[e.EndNodeID]
		if !startOK || !endOK {
			continue
		}
		edgeMap[e.ID] = e
		arcs = append(arcs, arc{from: startVertex, to: endVertex, weight: e.Length})
	}

	graph := buildDirectedGraph(int32(len(nodeVertex)), arcs)

	cache, err := newPathCache(opts.CacheCapacity)
	if err != nil {
		return nil, fmt.Errorf("network: building path cache: %w", err)
	}

	net := &RoadNetwork{
		nodes:      nodeMap,
		edges:      edgeMap,
		nodeVertex: nodeVertex,
		graph:      graph,
		cache:      cache,
	}

	for _, e := range edgeMap {
		min, max := edgeBBox(e, opts.BBoxEpsilon)
		net.index.Insert(min, max, e.ID)
	}

	return net, nil
}

// edgeBBox computes the axis-aligned bounding box of an edge's polyline,
// inflating it by epsilon on any axis where it collapses to zero width.
func edgeBBox(e Edge, epsilon float64) (min, max [2]float64) {
	if len(e.Geom) == 0 {
		return [2]float64{0, 0}, [2]float64{0, 0}
	}

	minX, minY := e.Geom[0][0], e.Geom[0][1]
	maxX, maxY := minX, minY
	for _, c := range e.Geom[1:] {
		minX = math.Min(minX, c[0])
		minY = math.Min(minY, c[1])
		maxX = math.Max(maxX, c[0])
		maxY = math.Max(maxY, c[1])
	}

	if maxX-minX < epsilon {
		minX -= epsilon
		maxX += epsilon
	}
	if maxY-minY < epsilon {
		minY -= epsilon
		maxY += epsilon
	}

	return [2]float64{minX, minY}, [2]float64{maxX, maxY}
}

// FindCandidateEdges returns every edge whose bounding box intersects a
// search box of the given radius (in meters) centered at (x, y). When (x, y)
// looks geographic, the radius is converted from meters to degree deltas;
// otherwise it applies directly on both axes. This is an over-approximation
// of the true metric radius by design; callers filter by exact perpendicular
// distance afterward.
func (n *RoadNetwork) FindCandidateEdges(x, y, radiusMeters float64) []Edge {
	var dx, dy float64
	if geo.IsGeographicWithRadius(x, y, radiusMeters) {
		dy = radiusMeters / metersPerDegreeLat
		cosLat := math.Cos(y * math.Pi / 180)
		if math.Abs(cosLat) < 1e-9 {
			cosLat = 1e-9
		}
		dx = radiusMeters / (metersPerDegreeLat * math.Abs(cosLat))
	} else {
		dx, dy = radiusMeters, radiusMeters
	}

	min := [2]float64{x - dx, y - dy}
	max := [2]float64{x + dx, y + dy}

	var results []Edge
	n.index.Search(min, max, func(_, _ [2]float64, edgeID string) bool {
		if e, ok := n.edges[edgeID]; ok {
			results = append(results, e)
		}
		return true
	})
	return results
}

// Edge looks up an edge by id.
func (n *RoadNetwork) Edge(id string) (Edge, bool) {
	e, ok := n.edges[id]
	return e, ok
}

// ComputeEdgeShortestPath returns the shortest-path distance from the end of
// edge fromID to the start of edge toID, plus the length of fromID, using
// and populating the path cache. Returns (0, 0) without touching the cache
// when fromID == toID.
func (n *RoadNetwork) ComputeEdgeShortestPath(fromID, toID string) (pathDistance, fromEdgeLength float64) {
	if fromID == toID {
		return 0, 0
	}

	key := fromID + ":" + toID
	if v, ok := n.cache.get(key); ok {
		return v.pathDistance, v.fromEdgeLength
	}

	from, fromOK := n.edges[fromID]
	to, toOK := n.edges[toID]

	var dist float64
	var fromLen float64
	if fromOK {
		fromLen = from.Length
	}
	if !fromOK || !toOK {
		dist = math.Inf(1)
	} else {
		sourceVertex, sourceOK := n.nodeVertex[from.EndNodeID]
		targetVertex, targetOK := n.nodeVertex[to.StartNodeID]
		if !sourceOK || !targetOK {
			dist = math.Inf(1)
		} else {
			dist = shortestPath(n.graph, sourceVertex, targetVertex)
		}
	}

	n.cache.set(key, pathCacheValue{pathDistance: dist, fromEdgeLength: fromLen})
	return dist, fromLen
}

// CacheHitRate reports the fraction of ComputeEdgeShortestPath lookups
// served from the cache over its lifetime.
func (n *RoadNetwork) CacheHitRate() float64 {
	return n.cache.hitRate()
}

// ClearCache invalidates every cached shortest-path entry and resets the
// hit/miss counters. It does not change any future computed result, only
// timings.
func (n *RoadNetwork) ClearCache() {
	n.cache.clear()
}

// CacheSize reports the approximate number of live entries in the path
// cache.
func (n *RoadNetwork) CacheSize() int64 {
	return n.cache.size()
}
