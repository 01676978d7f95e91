package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"

	"ssv/internal/hexgrid"
	"ssv/internal/sector"
)

// DiagramFormats lists the output formats RouteDiagram accepts.
var DiagramFormats = []string{"dot", "svg", "png"}

// RouteDiagram lays out the sector's trade network with graphviz and writes
// it in the named format. Each hex touched by a route becomes a node labelled
// with its world, if one is known.
func RouteDiagram(ctx context.Context, w io.Writer, s *sector.Sector, format string) error {
	f, err := diagramFormat(format)
	if err != nil {
		return err
	}

	network, err := s.RouteNetwork()
	if err != nil {
		return err
	}
	adjacency, err := network.Graph().AdjacencyMap()
	if err != nil {
		return fmt.Errorf("failed to get adjacency map: %w", err)
	}
	hexes, err := network.Hexes()
	if err != nil {
		return err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	g, err := gv.Graph()
	if err != nil {
		return fmt.Errorf("failed to create graphviz graph: %w", err)
	}
	defer g.Close()

	g.SetLayout("neato")
	g.SetOverlap(false)
	g.SetSplines("true")
	if title := strings.TrimSpace(s.Title()); title != "" {
		g.SetLabel(title)
	}

	nodes := make(map[string]*graphviz.Node, len(hexes))
	for _, c := range hexes {
		node, err := g.CreateNodeByName(sector.CoordKey(c))
		if err != nil {
			return fmt.Errorf("failed to create node for %v: %w", c, err)
		}
		node.SetLabel(nodeLabel(s, c))
		node.SetShape("box")
		node.SetStyle("filled,rounded")
		if c.InGrid() {
			node.SetFillColor("lightblue")
		} else {
			node.SetFillColor("lightgray")
		}
		nodes[sector.CoordKey(c)] = node
	}

	seen := make(map[[2]string]bool)
	for from, targets := range adjacency {
		for to := range targets {
			pair := [2]string{from, to}
			if to < from {
				pair = [2]string{to, from}
			}
			if seen[pair] {
				continue
			}
			seen[pair] = true

			a, b := nodes[from], nodes[to]
			if a == nil || b == nil {
				continue
			}
			edge, err := g.CreateEdgeByName("", a, b)
			if err != nil {
				return fmt.Errorf("failed to create edge %s-%s: %w", from, to, err)
			}
			edge.SetDir("none")
			edge.SetPenWidth(2)
		}
	}

	if err := gv.Render(ctx, g, f, w); err != nil {
		return fmt.Errorf("failed to render route diagram: %w", err)
	}
	return nil
}

func diagramFormat(name string) (graphviz.Format, error) {
	switch strings.ToLower(name) {
	case "", "dot":
		return graphviz.XDOT, nil
	case "svg":
		return graphviz.SVG, nil
	case "png":
		return graphviz.PNG, nil
	default:
		return "", fmt.Errorf("unknown diagram format %q (want one of %s)", name, strings.Join(DiagramFormats, ", "))
	}
}

func nodeLabel(s *sector.Sector, c hexgrid.Coord) string {
	hex := hexgrid.HexAddress{Col: c.X + 1, Row: c.Y + 1}
	if w, ok := s.WorldAt(c); ok {
		return fmt.Sprintf("%s\\n%s", w.Name, hex)
	}
	return hex.String()
}
