// Command wfcview steps a solver interactively and shows the preview of the
// wave after every step.
//
//	SPACE  one observation
//	ENTER  run continuously
//	ESC    stop running
//	R      clear the wave and reseed
//
// The input is a sample image, or a tile-set document (.yaml, .yml, .json).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavefc/config"
	"github.com/katalvlaran/wavefc/internal/job"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wfcview:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	j := config.DefaultJob()
	var (
		zoom  int
		speed int
	)
	cmd := &cobra.Command{
		Use:          "wfcview INPUT",
		Short:        "Watch Wave Function Collapse step by step",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".yaml", ".yml", ".json":
				j.Kind = config.Tiled
				j.TileSet = args[0]
			default:
				j.Kind = config.Overlapping
				j.Sample = args[0]
			}
			if err := j.Validate(); err != nil {
				return err
			}
			if j.Seed == 0 {
				j.Seed = time.Now().UnixNano()
			}
			m, err := job.Load(j)
			if err != nil {
				return err
			}
			v, err := newViewer(m, j, speed)
			if err != nil {
				return err
			}

			w, h := v.Layout(0, 0)
			ebiten.SetWindowTitle("wfcview: " + j.Label())
			ebiten.SetWindowSize(w*zoom, h*zoom)
			return ebiten.RunGame(v)
		},
	}
	f := cmd.Flags()
	f.IntVar(&j.N, "n", j.N, "pattern size")
	f.IntVar(&j.Size, "size", j.Size, "output width and height in cells")
	f.BoolVar(&j.Periodic, "periodic", j.Periodic, "wrap the output at its edges")
	f.BoolVar(&j.PeriodicInput, "periodic-input", j.PeriodicInput, "treat the sample as a torus")
	f.IntVar(&j.Symmetry, "symmetry", j.Symmetry, "dihedral variants kept per window (1..8)")
	f.BoolVar(&j.Ground, "ground", j.Ground, "pin the last pattern to the bottom row")
	f.StringVar(&j.HeuristicName, "heuristic", j.HeuristicName, "entropy, mrv or scanline")
	f.StringVar(&j.Subset, "subset", "", "tile subset")
	f.BoolVar(&j.BlackBackground, "black-background", false, "draw undecided tiles black")
	f.Int64Var(&j.Seed, "seed", 0, "initial seed (0: derived from the clock)")
	f.IntVar(&zoom, "zoom", 4, "window pixels per output pixel")
	f.IntVar(&speed, "speed", 1, "observations per frame while running")
	return cmd
}
