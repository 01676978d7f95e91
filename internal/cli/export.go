package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ssv/internal/hexgrid"
	"ssv/internal/log"
	"ssv/internal/sector"
)

// exportDoc is the YAML form of a sector.
type exportDoc struct {
	Title   string              `yaml:"title"`
	Worlds  []sector.World      `yaml:"worlds"`
	Routes  []sector.TradeRoute `yaml:"routes"`
	Borders []hexgrid.Segment   `yaml:"borders"`
}

func newExportDoc(s *sector.Sector) exportDoc {
	return exportDoc{
		Title:   s.Title(),
		Worlds:  s.Worlds(),
		Routes:  s.Routes(),
		Borders: s.Borders(),
	}
}

func exportCmd(envFile *string) *cobra.Command {
	var (
		format string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "export datafile",
		Short: "Export a sector as YAML or into the snapshot database",
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

			switch format {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(newExportDoc(s)); err != nil {
					return fmt.Errorf("failed to encode yaml: %w", err)
				}
				return enc.Close()
			case "sqlite":
				if name == "" {
					base := filepath.Base(args[0])
					name = strings.TrimSuffix(base, filepath.Ext(base))
				}
				return saveSnapshot(cfg, name, s, cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown export format %q", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or sqlite")
	cmd.Flags().StringVar(&name, "name", "", "Snapshot name for sqlite (default: data file name)")
	return cmd
}
