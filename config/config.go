package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wavefc/overlap"
	"github.com/katalvlaran/wavefc/wave"
)

// Kind selects the model of a job.
type Kind string

const (
	// Overlapping learns N×N patterns from a sample image.
	Overlapping Kind = "overlapping"
	// Tiled expands a declared tile set.
	Tiled Kind = "tiled"
)

// Config is a batch of jobs.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	Jobs      []Job  `yaml:"jobs"`
}

// Job describes one generation task.
type Job struct {
	Name    string `yaml:"name"`
	Kind    Kind   `yaml:"kind"`
	Sample  string `yaml:"sample"`
	TileSet string `yaml:"tileset"`
	Subset  string `yaml:"subset"`

	N             int  `yaml:"n"`
	Size          int  `yaml:"size"`
	Width         int  `yaml:"width"`
	Height        int  `yaml:"height"`
	PeriodicInput bool `yaml:"periodic_input"`
	Periodic      bool `yaml:"periodic"`
	Symmetry      int  `yaml:"symmetry"`
	Ground        bool `yaml:"ground"`

	HeuristicName   string `yaml:"heuristic"`
	Limit           int    `yaml:"limit"`
	Attempts        int    `yaml:"attempts"`
	Screenshots     int    `yaml:"screenshots"`
	Scale           int    `yaml:"scale"`
	BlackBackground bool   `yaml:"black_background"`
	Seed            int64  `yaml:"seed"`
}

// DefaultJob returns the values every decoded job starts from.
func DefaultJob() Job {
	return Job{
		Kind:          Overlapping,
		N:             3,
		Size:          48,
		PeriodicInput: true,
		Symmetry:      8,
		HeuristicName: wave.Entropy.String(),
		Limit:         -1,
		Attempts:      10,
		Screenshots:   1,
		Scale:         1,
	}
}

// UnmarshalYAML decodes a job on top of DefaultJob.
func (j *Job) UnmarshalYAML(node *yaml.Node) error {
	type plain Job
	p := plain(DefaultJob())
	if err := node.Decode(&p); err != nil {
		return err
	}
	*j = Job(p)
	return nil
}

// Dimensions returns the output size in cells; Width and Height fall back to Size.
func (j Job) Dimensions() (width, height int) {
	width, height = j.Width, j.Height
	if width == 0 {
		width = j.Size
	}
	if height == 0 {
		height = j.Size
	}
	return width, height
}

// Heuristic parses HeuristicName.
func (j Job) Heuristic() (wave.Heuristic, error) {
	h, err := wave.ParseHeuristic(j.HeuristicName)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadHeuristic, j.HeuristicName)
	}
	return h, nil
}

// OverlapOptions returns the builder options of an overlapping job.
func (j Job) OverlapOptions() overlap.Options {
	return overlap.Options{N: j.N, PeriodicInput: j.PeriodicInput, Symmetry: j.Symmetry, Ground: j.Ground}
}

// SolverOptions returns the wave options the job itself controls. Model
// options (footprint, ground) come from the built model.
func (j Job) SolverOptions() ([]wave.Option, error) {
	h, err := j.Heuristic()
	if err != nil {
		return nil, err
	}
	return []wave.Option{wave.WithPeriodic(j.Periodic), wave.WithHeuristic(h)}, nil
}

// Label returns Name, or the base name of the input file without extension.
func (j Job) Label() string {
	if j.Name != "" {
		return j.Name
	}
	src := j.Sample
	if j.Kind == Tiled {
		src = j.TileSet
	}
	return strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
}

// Validate checks one job.
func (j Job) Validate() error {
	switch j.Kind {
	case Overlapping:
		if j.Sample == "" {
			return ErrMissingSample
		}
		if j.N < 1 {
			return fmt.Errorf("%w: n=%d", ErrBadSize, j.N)
		}
	case Tiled:
		if j.TileSet == "" {
			return ErrMissingTileSet
		}
	default:
		return fmt.Errorf("%w: got %q", ErrBadKind, j.Kind)
	}
	w, h := j.Dimensions()
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
	}
	if j.Attempts < 1 || j.Screenshots < 1 || j.Scale < 1 {
		return fmt.Errorf("%w: attempts=%d screenshots=%d scale=%d", ErrBadSize, j.Attempts, j.Screenshots, j.Scale)
	}
	_, err := j.Heuristic()
	return err
}

// Validate checks every job and reports all problems at once.
func (c *Config) Validate() error {
	if len(c.Jobs) == 0 {
		return ErrNoJobs
	}
	var errs []error
	for i, j := range c.Jobs {
		if err := j.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("job %d (%s): %w", i, j.Label(), err))
		}
	}
	return errors.Join(errs...)
}

// Decode reads and validates a configuration.
func Decode(r io.Reader) (*Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads path with Decode and resolves relative input paths against
// the directory of path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range c.Jobs {
		c.Jobs[i].Sample = resolve(dir, c.Jobs[i].Sample)
		c.Jobs[i].TileSet = resolve(dir, c.Jobs[i].TileSet)
	}
	return c, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
