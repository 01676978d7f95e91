package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ssv/internal/log"
	"ssv/internal/sector"
)

func dumpCmd(envFile *string) *cobra.Command {
	var capacity bool

	cmd := &cobra.Command{
		Use:   "dump datafile",
		Short: "Print the routes and worlds read from a data file",
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
			if err := sector.WriteSummary(out, s); err != nil {
				return err
			}
			if capacity {
				for _, c := range s.Capacities() {
					fmt.Fprintf(out, "%-16s %3d/%-3d dropped %d\n", c.Name, c.Len, c.Limit, c.Dropped)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&capacity, "capacity", false, "Also print how full each list is")
	return cmd
}
