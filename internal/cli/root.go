// Package cli wires the ssv commands together.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"ssv/internal/config"
	"ssv/internal/database"
	"ssv/internal/datafile"
	"ssv/internal/log"
	"ssv/internal/render"
	"ssv/internal/sector"
	"ssv/internal/tui"
)

// BuildInfo is set by the linker in main.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// isTerminal reports whether stdout can host the viewer.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runViewer starts the interactive viewer. Tests replace it.
var runViewer = func(s *sector.Sector, opts tui.Options) error {
	return tui.NewApplication(s, opts).Run()
}

type rootOptions struct {
	envFile    string
	printOnly  bool
	output     string
	sixel      bool
	sixelWidth int
	encoder    string
	snapshot   string
	save       string
}

// NewRootCmd builds the ssv command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "ssv [flags] datafile",
		Short: "Traveller subsector viewer",
		Long: `Draws a Traveller subsector map from a fixed-column data file.

With a terminal on stdout the interactive viewer starts; otherwise the
sector is dumped as text. -p writes the map image and exits.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (--env-file, or .env in the current directory)
  3. SSV_* environment variables
  4. Command line flags`,
		Args:          cobra.RangeArgs(0, 1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().BoolVarP(&opts.printOnly, "print", "p", false, "Write the map image and exit")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Map image path (default: SSV_PRINT_PATH)")
	cmd.Flags().BoolVar(&opts.sixel, "sixel", false, "Write the map to the terminal as sixel graphics and exit")
	cmd.Flags().IntVar(&opts.sixelWidth, "sixel-width", 0, "Scale the sixel image to at most this many pixels wide")
	cmd.Flags().StringVar(&opts.encoder, "sixel-encoder", "rasterm", "Sixel encoder: rasterm or go")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "Load a saved snapshot instead of a data file")
	cmd.Flags().StringVar(&opts.save, "save", "", "Save the sector, with drawn borders, under this snapshot name on exit")

	cmd.AddCommand(dumpCmd(&opts.envFile))
	cmd.AddCommand(exportCmd(&opts.envFile))
	cmd.AddCommand(routesCmd(&opts.envFile))
	cmd.AddCommand(sectionCmd(&opts.envFile))
	cmd.AddCommand(snapshotsCmd(&opts.envFile))
	cmd.AddCommand(versionCmd(info))

	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute(info BuildInfo, args []string) int {
	cmd := NewRootCmd(info)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ssv:", err)
		return 1
	}
	return 0
}

// setup loads the configuration and applies its logging settings.
func setup(envFile string) (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ApplyLogging(); err != nil {
		return config.Config{}, fmt.Errorf("configure logging: %w", err)
	}
	return cfg, nil
}

// loadSector reads path and reports skipped lines on errOut.
func loadSector(cfg config.Config, path string, errOut io.Writer) (*sector.Sector, error) {
	s, report, err := datafile.Load(path, cfg.LoadOptions())
	if err != nil {
		return nil, err
	}
	if !report.Clean() {
		fmt.Fprint(errOut, report.Summary())
	}
	return s, nil
}

func runRoot(cmd *cobra.Command, args []string, opts rootOptions) error {
	cfg, err := setup(opts.envFile)
	if err != nil {
		return err
	}
	defer log.Close()

	var s *sector.Sector
	source := opts.snapshot
	switch {
	case opts.snapshot != "" && len(args) > 0:
		return fmt.Errorf("give either a data file or --snapshot, not both")
	case opts.snapshot != "":
		s, err = loadSnapshot(cfg, opts.snapshot)
	case len(args) == 1:
		source = args[0]
		s, err = loadSector(cfg, args[0], cmd.ErrOrStderr())
	default:
		return fmt.Errorf("a data file is required")
	}
	if err != nil {
		return err
	}

	printPath := cfg.PrintPath
	if opts.output != "" {
		printPath = opts.output
	}

	switch {
	case opts.printOnly:
		if err := render.PrintMap(printPath, s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Map written to %s\n", printPath)
		return nil
	case opts.sixel:
		return writeSixel(cmd.OutOrStdout(), s, opts)
	case !isTerminal():
		log.Info("stdout is not a terminal, dumping sector")
		return sector.WriteSummary(cmd.OutOrStdout(), s)
	}

	if err := runViewer(s, tui.Options{Source: source, PrintPath: printPath}); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	if opts.save != "" {
		return saveSnapshot(cfg, opts.save, s, cmd.OutOrStdout())
	}
	return nil
}

func writeSixel(w io.Writer, s *sector.Sector, opts rootOptions) error {
	var enc render.SixelEncoder
	switch opts.encoder {
	case "rasterm", "":
		enc = render.SixelRasterm
	case "go":
		enc = render.SixelGo
	default:
		return fmt.Errorf("unknown sixel encoder %q", opts.encoder)
	}
	img := render.Scale(render.Map(s, render.Options{}), opts.sixelWidth, 0)
	return render.WriteSixel(w, img, enc)
}

func loadSnapshot(cfg config.Config, name string) (*sector.Sector, error) {
	store, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.LoadSector(name, cfg.Limits())
}

func saveSnapshot(cfg config.Config, name string, s *sector.Sector, out io.Writer) error {
	store, err := database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.SaveSector(name, s); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved snapshot %q to %s\n", name, cfg.DBPath)
	return nil
}
