package network

import "math"

// minHeap is a concrete-typed min-heap for Dijkstra's priority queue. Avoids
// the interface boxing overhead of container/heap, following the teacher's
// pkg/routing/dijkstra.go.
type minHeap struct {
	items []pqItem
}

// pqItem is a priority queue entry.
type pqItem struct {
	node int32
	dist float64
}

func (h *minHeap) Len() int { return len(h.items) }

func (h *minHeap) Push(node int32, dist float64) {
	h.items = append(h.items, pqItem{node, dist})
	h.siftUp(len(h.items) - 1)
}

func (h *minHeap) Pop() pqItem {
	n := len(h.items)
	item := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return item
}

func (h *minHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].dist >= h.items[parent].dist {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *minHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.items[left].dist < h.items[smallest].dist {
			smallest = left
		}
		if right < n && h.items[right].dist < h.items[smallest].dist {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

// shortestPath runs a single-source Dijkstra from source, stopping as soon as
// target is popped off the queue. Returns +Inf if target is unreachable.
func shortestPath(g *directedGraph, source, target int32) float64 {
	if source == target {
		return 0
	}

	dist := make([]float64, g.numNodes)
	visited := make([]bool, g.numNodes)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	pq := minHeap{items: make([]pqItem, 0, 64)}
	pq.Push(source, 0)

	for pq.Len() > 0 {
		cur := pq.Pop()
		u := cur.node
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == target {
			return cur.dist
		}

		start, end := g.edgesFrom(u)
		for i := start; i < end; i++ {
			v := g.head[i]
			if visited[v] {
				continue
			}
			newDist := dist[u] + g.weight[i]
			if newDist < dist[v] {
				dist[v] = newDist
				pq.Push(v, newDist)
			}
		}
	}

	return math.Inf(1)
}
