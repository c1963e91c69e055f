// Package graph maintains the undirected weighted compatibility graph over
// catalog items. The graph is a value constructed at startup and shared by
// the service layer; it is never global state.
package graph

import (
	"sort"
	"sync"

	"github.com/lookkg/lookkg/internal/domain"
	"github.com/lookkg/lookkg/internal/scoring"
)

// Edge is one scored compatibility link.
type Edge struct {
	Weight    float64
	Rationale []scoring.Rationale
}

// Stats reports graph size after a mutation.
type Stats struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// Graph is an in-memory adjacency-map graph. Thread-safe via sync.RWMutex.
// Edges are stored once per direction so neighbor lookup is O(degree).
type Graph struct {
	mu    sync.RWMutex
	nodes map[string]domain.Item
	adj   map[string]map[string]Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]domain.Item),
		adj:   make(map[string]map[string]Edge),
	}
}

func (g *Graph) setEdge(a, b string, e Edge) {
	g.adj[a][b] = e
	g.adj[b][a] = e
}

func (g *Graph) removeEdge(a, b string) {
	delete(g.adj[a], b)
	delete(g.adj[b], a)
}

func (g *Graph) addNode(it domain.Item) {
	g.nodes[it.ItemID] = it
	if g.adj[it.ItemID] == nil {
		g.adj[it.ItemID] = make(map[string]Edge)
	}
}

func (g *Graph) statsLocked() Stats {
	edges := 0
	for _, nbrs := range g.adj {
		edges += len(nbrs)
	}
	return Stats{Nodes: len(g.nodes), Edges: edges / 2}
}

// Rebuild discards the graph and reconstructs it from the given items:
// one node per item, one edge per unordered pair with a positive score.
func (g *Graph) Rebuild(items []domain.Item) Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]domain.Item, len(items))
	g.adj = make(map[string]map[string]Edge, len(items))

	for _, it := range items {
		g.addNode(it)
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			s, rat := scoring.ScorePair(items[i], items[j])
			if s > 0 {
				g.setEdge(items[i].ItemID, items[j].ItemID, Edge{Weight: s, Rationale: rat})
			}
		}
	}
	return g.statsLocked()
}

// Upsert inserts or replaces one node and rescores its edges against the
// full catalog. An empty graph delegates to Rebuild so a fresh process
// converges on first write.
func (g *Graph) Upsert(item domain.Item, items []domain.Item) Stats {
	g.mu.Lock()
	if len(g.nodes) == 0 {
		g.mu.Unlock()
		return g.Rebuild(items)
	}
	defer g.mu.Unlock()

	g.addNode(item)
	for _, other := range items {
		if other.ItemID == item.ItemID {
			continue
		}
		if _, known := g.nodes[other.ItemID]; !known {
			g.addNode(other)
		}
		s, rat := scoring.ScorePair(item, other)
		if s > 0 {
			g.setEdge(item.ItemID, other.ItemID, Edge{Weight: s, Rationale: rat})
		} else {
			g.removeEdge(item.ItemID, other.ItemID)
		}
	}
	return g.statsLocked()
}

// Delete removes a node and all incident edges. Unknown ids are a no-op.
func (g *Graph) Delete(itemID string) Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[itemID]; ok {
		for nbr := range g.adj[itemID] {
			delete(g.adj[nbr], itemID)
		}
		delete(g.adj, itemID)
		delete(g.nodes, itemID)
	}
	return g.statsLocked()
}

// Node returns the stored item for an id.
func (g *Graph) Node(itemID string) (domain.Item, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	it, ok := g.nodes[itemID]
	return it, ok
}

// Neighbor is one adjacent item with its edge data.
type Neighbor struct {
	Item      domain.Item
	Weight    float64
	Rationale []scoring.Rationale
}

// Neighbors returns the adjacent items of a node sorted by descending
// weight, ties broken by item id.
func (g *Graph) Neighbors(itemID string) ([]Neighbor, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[itemID]; !ok {
		return nil, false
	}
	out := make([]Neighbor, 0, len(g.adj[itemID]))
	for nbr, e := range g.adj[itemID] {
		out = append(out, Neighbor{Item: g.nodes[nbr], Weight: e.Weight, Rationale: e.Rationale})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Item.ItemID < out[j].Item.ItemID
	})
	return out, true
}

// Degree returns the number of incident edges of a node.
func (g *Graph) Degree(itemID string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[itemID])
}

// Candidates enumerates all nodes not in exclude, sorted by item id so the
// recommender's stable sort is deterministic.
func (g *Graph) Candidates(exclude map[string]bool) []domain.Item {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]domain.Item, 0, len(g.nodes))
	for id, it := range g.nodes {
		if exclude[id] {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// Stats returns the current node and edge counts.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.statsLocked()
}
