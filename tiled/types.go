package tiled

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/wavefc/catalog"
	"github.com/katalvlaran/wavefc/wave"
)

// Tile declares one named tile.
type Tile struct {
	Name     string
	Symmetry Class
	// Weight is the relative frequency of every orientation. Zero stands for
	// an unset weight and means 1; Decode rejects an explicit weight: 0.
	Weight float64
}

// Ref names one orientation of a tile.
type Ref struct {
	Name        string
	Orientation int
}

// ParseRef parses "name" or "name k".
func ParseRef(s string) (Ref, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		return Ref{Name: fields[0]}, nil
	case 2:
		k, err := strconv.Atoi(fields[1])
		if err != nil || k < 0 {
			return Ref{}, fmt.Errorf("%w: %q", ErrBadOrientation, s)
		}
		return Ref{Name: fields[0], Orientation: k}, nil
	}
	return Ref{}, fmt.Errorf("%w: reference %q", ErrBadDocument, s)
}

// String formats the reference as "name k".
func (r Ref) String() string { return fmt.Sprintf("%s %d", r.Name, r.Orientation) }

// Neighbor declares that Right may sit directly to the right of Left.
type Neighbor struct {
	Left, Right Ref
}

// Subset restricts Build to the named tiles.
type Subset struct {
	Name  string
	Tiles []string
}

// TileSet is a decoded tile-set declaration.
type TileSet struct {
	Tiles     []Tile
	Neighbors []Neighbor
	Subsets   []Subset
	// Unique means every orientation has its own image instead of being
	// derived from orientation 0.
	Unique bool
}

// Model is the result of Build. It is immutable.
type Model struct {
	Catalog *catalog.Catalog
	// Tiles are the declared tiles that survived subset filtering, in order.
	Tiles []Tile
	// Names[t] is "name k" for pattern t.
	Names []string
	// Base[t] indexes Tiles; Orientation[t] is k.
	Base        []int
	Orientation []int
	// Action[t][g] is the pattern reached from t by group element g
	// (e, a, a², a³, b, ba, ba², ba³).
	Action [][8]int
	Unique bool

	first map[string]int
}

// Index returns the pattern of orientation k of the named tile.
func (m *Model) Index(name string, k int) (int, error) {
	t, ok := m.first[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownTile, name)
	}
	if k < 0 || k >= m.Tiles[m.Base[t]].Symmetry.Cardinality() {
		return -1, fmt.Errorf("%w: %q has no orientation %d", ErrBadOrientation, name, k)
	}
	return t + k, nil
}

// SolverOptions returns the wave options this model implies: a footprint of one cell.
func (m *Model) SolverOptions() []wave.Option {
	return []wave.Option{wave.WithFootprint(1)}
}
