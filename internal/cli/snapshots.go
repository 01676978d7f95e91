package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ssv/internal/database"
	"ssv/internal/log"
)

func snapshotsCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshots",
		Short: "List the sectors saved in the snapshot database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(*envFile)
			if err != nil {
				return err
			}
			defer log.Close()

			store, err := database.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			snaps, err := store.ListSectors()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(snaps) == 0 {
				fmt.Fprintln(out, "no snapshots")
				return nil
			}
			for _, s := range snaps {
				fmt.Fprintf(out, "%-20s %-30q worlds %2d routes %2d borders %3d  %s\n",
					s.Name, s.Title, s.Worlds, s.Routes, s.Borders, s.SavedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
