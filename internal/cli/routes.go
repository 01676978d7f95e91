package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"ssv/internal/hexgrid"
	"ssv/internal/log"
	"ssv/internal/render"
	"ssv/internal/sector"
)

func routesCmd(envFile *string) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "routes datafile",
		Short: "List trade networks or draw them with graphviz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(*envFile)
			if err != nil {
				return err
			}
			defer log.Close()

			s, err := loadSector(cfg, args[0], cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			if format == "text" {
				return writeNetworks(out, s)
			}
			if !slices.Contains(render.DiagramFormats, format) {
				return fmt.Errorf("unknown routes format %q", format)
			}
			return render.RouteDiagram(context.Background(), out, s, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, dot, svg or png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

// writeNetworks prints each connected trade network on one line.
func writeNetworks(w io.Writer, s *sector.Sector) error {
	network, err := s.RouteNetwork()
	if err != nil {
		return err
	}
	clusters, err := network.Clusters()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d trade network(s)\n", len(clusters))
	for i, group := range clusters {
		fmt.Fprintf(w, "%d:", i+1)
		for _, c := range group {
			fmt.Fprintf(w, " %s", hexLabel(s, c))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func hexLabel(s *sector.Sector, c hexgrid.Coord) string {
	if w, ok := s.WorldAt(c); ok {
		return fmt.Sprintf("%s(%s)", w.Name, w.Hex)
	}
	return fmt.Sprintf("[%d,%d]", c.X, c.Y)
}
