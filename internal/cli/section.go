package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ssv/internal/log"
	"ssv/internal/splitter"
)

func sectionCmd(envFile *string) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "section sector_datafile",
		Short: "Split a full-sector file into subsector files sec_A to sec_P",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(*envFile); err != nil {
				return err
			}
			defer log.Close()

			res, err := splitter.SplitFile(args[0], dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, n := range res.Counts {
				fmt.Fprintf(out, "%s: %d world(s)\n", splitter.FileName(i), n)
			}
			if len(res.Rejected) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d line(s) outside the sector skipped: %v\n", len(res.Rejected), res.Rejected)
			}
			if len(res.TooLong) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d overlong line(s) skipped: %v\n", len(res.TooLong), res.TooLong)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory for the subsector files")
	return cmd
}
