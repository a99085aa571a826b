package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavefc/config"
)

// globals holds the flags shared by every subcommand.
type globals struct {
	out      string
	show     bool
	verbose  bool
	parallel int
}

func (g *globals) logger() *slog.Logger {
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "wfc",
		Short:         "Generate images that locally resemble a sample",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&g.out, "out", "o", "output", "directory for generated images")
	pf.BoolVar(&g.show, "show", false, "preview each result in the terminal")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log solver events")
	pf.IntVar(&g.parallel, "parallel", runtime.NumCPU(), "attempts solved concurrently")

	root.AddCommand(newOverlapCmd(g), newTiledCmd(g), newBatchCmd(g))
	return root
}

// jobFlags binds the flags common to overlap and tiled onto job.
func jobFlags(cmd *cobra.Command, job *config.Job) {
	f := cmd.Flags()
	f.StringVar(&job.Name, "name", "", "output file prefix (default: input base name)")
	f.IntVar(&job.Size, "size", job.Size, "output width and height in cells")
	f.IntVar(&job.Width, "width", 0, "output width in cells (overrides --size)")
	f.IntVar(&job.Height, "height", 0, "output height in cells (overrides --size)")
	f.BoolVar(&job.Periodic, "periodic", job.Periodic, "wrap the output at its edges")
	f.StringVar(&job.HeuristicName, "heuristic", job.HeuristicName, "entropy, mrv or scanline")
	f.IntVar(&job.Limit, "limit", job.Limit, "maximum observations per attempt (negative: unbounded)")
	f.IntVar(&job.Attempts, "attempts", job.Attempts, "seeds tried before giving up")
	f.IntVar(&job.Screenshots, "screenshots", job.Screenshots, "images generated")
	f.IntVar(&job.Scale, "scale", job.Scale, "integer upscaling of the written image")
	f.Int64Var(&job.Seed, "seed", 0, "first seed (0: derived from the clock)")
}

func newOverlapCmd(g *globals) *cobra.Command {
	job := config.DefaultJob()
	job.Kind = config.Overlapping
	cmd := &cobra.Command{
		Use:   "overlap SAMPLE",
		Short: "Learn N×N patterns from a sample image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job.Sample = args[0]
			if err := job.Validate(); err != nil {
				return err
			}
			return newGenerator(g).run(cmd.Context(), job)
		},
	}
	jobFlags(cmd, &job)
	f := cmd.Flags()
	f.IntVar(&job.N, "n", job.N, "pattern size")
	f.BoolVar(&job.PeriodicInput, "periodic-input", job.PeriodicInput, "treat the sample as a torus")
	f.IntVar(&job.Symmetry, "symmetry", job.Symmetry, "dihedral variants kept per window (1..8)")
	f.BoolVar(&job.Ground, "ground", job.Ground, "pin the last pattern to the bottom row")
	return cmd
}

func newTiledCmd(g *globals) *cobra.Command {
	job := config.DefaultJob()
	job.Kind = config.Tiled
	cmd := &cobra.Command{
		Use:   "tiled TILESET",
		Short: "Expand a declared tile set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job.TileSet = args[0]
			if err := job.Validate(); err != nil {
				return err
			}
			return newGenerator(g).run(cmd.Context(), job)
		},
	}
	jobFlags(cmd, &job)
	f := cmd.Flags()
	f.StringVar(&job.Subset, "subset", "", "restrict to a named subset of tiles")
	f.BoolVar(&job.BlackBackground, "black-background", false, "draw undecided cells black")
	return cmd
}

func newBatchCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "batch CONFIG",
		Short: "Run every job of a YAML batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if c.OutputDir != "" && !cmd.Flags().Changed("out") {
				g.out = c.OutputDir
			}
			gen := newGenerator(g)
			for _, job := range c.Jobs {
				if err := gen.run(cmd.Context(), job); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
