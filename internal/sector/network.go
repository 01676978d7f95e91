package sector

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"

	"ssv/internal/hexgrid"
)

// RouteNetwork is the undirected graph of hexes joined by trade routes.
type RouteNetwork struct {
	g graph.Graph[string, hexgrid.Coord]
}

// CoordKey is the vertex key of c in a RouteNetwork.
func CoordKey(c hexgrid.Coord) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// RouteNetwork builds the trade network of the sector's routes.
func (s *Sector) RouteNetwork() (*RouteNetwork, error) {
	g := graph.New(CoordKey)
	for _, r := range s.routes.items {
		for _, c := range []hexgrid.Coord{r.Start, r.End} {
			if err := g.AddVertex(c); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
				return nil, fmt.Errorf("failed to add route vertex %v: %w", c, err)
			}
		}
		if r.Start == r.End {
			continue
		}
		err := g.AddEdge(CoordKey(r.Start), CoordKey(r.End))
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return nil, fmt.Errorf("failed to add route %v-%v: %w", r.Start, r.End, err)
		}
	}
	return &RouteNetwork{g: g}, nil
}

// Graph exposes the underlying graph to renderers.
func (n *RouteNetwork) Graph() graph.Graph[string, hexgrid.Coord] {
	return n.g
}

// Hexes lists every hex touched by a route, ordered by column then row.
func (n *RouteNetwork) Hexes() ([]hexgrid.Coord, error) {
	adj, err := n.g.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	out := make([]hexgrid.Coord, 0, len(adj))
	for key := range adj {
		c, err := n.g.Vertex(key)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sortCoords(out)
	return out, nil
}

// Reachable returns every hex connected to from by a chain of routes,
// including from itself.
func (n *RouteNetwork) Reachable(from hexgrid.Coord) ([]hexgrid.Coord, error) {
	var out []hexgrid.Coord
	err := graph.BFS(n.g, CoordKey(from), func(key string) bool {
		c, err := n.g.Vertex(key)
		if err == nil {
			out = append(out, c)
		}
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("no routes from %v: %w", from, err)
	}
	sortCoords(out)
	return out, nil
}

// Jumps returns the number of route hops on the shortest chain from a to b.
func (n *RouteNetwork) Jumps(a, b hexgrid.Coord) (int, error) {
	path, err := graph.ShortestPath(n.g, CoordKey(a), CoordKey(b))
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// Clusters groups the hexes into connected trade networks.
func (n *RouteNetwork) Clusters() ([][]hexgrid.Coord, error) {
	hexes, err := n.Hexes()
	if err != nil {
		return nil, err
	}
	seen := make(map[hexgrid.Coord]bool, len(hexes))
	var out [][]hexgrid.Coord
	for _, c := range hexes {
		if seen[c] {
			continue
		}
		group, err := n.Reachable(c)
		if err != nil {
			return nil, err
		}
		for _, m := range group {
			seen[m] = true
		}
		out = append(out, group)
	}
	return out, nil
}

func sortCoords(cs []hexgrid.Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].X != cs[j].X {
			return cs[i].X < cs[j].X
		}
		return cs[i].Y < cs[j].Y
	})
}
