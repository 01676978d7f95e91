package sector

import (
	"fmt"
	"io"
)

// WriteSummary prints the routes and worlds of s in the legacy dump format.
func WriteSummary(w io.Writer, s *Sector) error {
	routes := s.Routes()
	if _, err := fmt.Fprintf(w, "Total trade-routes read = %d\n", len(routes)); err != nil {
		return err
	}
	for _, r := range routes {
		if _, err := fmt.Fprintf(w, "Route: [%d,%d] - [%d,%d]\n", r.Start.X, r.Start.Y, r.End.X, r.End.Y); err != nil {
			return err
		}
	}

	worlds := s.Worlds()
	if _, err := fmt.Fprintf(w, "Total worlds read = %d\n", len(worlds)); err != nil {
		return err
	}
	for _, wd := range worlds {
		line := fmt.Sprintf("World: %-20q [%d,%d]  STARPORT:%s %s(%s)",
			wd.Name, wd.Coord.X, wd.Coord.Y, wd.Starport, wd.Type, wd.Allegiance)
		if wd.GasGiants > 0 {
			line += fmt.Sprintf("  #GasGiants:%d", wd.GasGiants)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
