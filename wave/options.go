// SPDX-License-Identifier: MIT
// Package: wavefc/wave
//
// options.go - functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs; the
//     solver itself never panics on user data.
//   • Later options override earlier ones.

package wave

import (
	"fmt"
	"log/slog"
)

// Option customizes a Solver at construction time.
type Option func(*config)

type config struct {
	heuristic Heuristic
	periodic  bool
	footprint int
	ground    bool
	logger    *slog.Logger
}

// Deterministic defaults.
const (
	defaultHeuristic = Entropy
	defaultFootprint = 1
)

func newConfig(opts ...Option) config {
	cfg := config{
		heuristic: defaultHeuristic,
		footprint: defaultFootprint,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithHeuristic selects the cell-selection heuristic. Panics on unknown values.
func WithHeuristic(h Heuristic) Option {
	if h < Entropy || h > Scanline {
		panic(fmt.Sprintf("wave: WithHeuristic(%d)", int(h)))
	}
	return func(c *config) {
		c.heuristic = h
	}
}

// WithPeriodic makes the output grid wrap around at its edges.
func WithPeriodic(periodic bool) Option {
	return func(c *config) {
		c.periodic = periodic
	}
}

// WithFootprint sets the pattern footprint N. In non-periodic mode only cells
// whose N×N footprint fits inside the grid are observed and propagated into.
// Panics if n < 1.
func WithFootprint(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("wave: WithFootprint(%d)", n))
	}
	return func(c *config) {
		c.footprint = n
	}
}

// WithGround pins the last catalog pattern to the bottom row and bans it
// everywhere else before generation starts.
func WithGround(ground bool) Option {
	return func(c *config) {
		c.ground = ground
	}
}

// WithLogger routes debug events (run start, contradiction, completion) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("wave: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
