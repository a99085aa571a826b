package tiled

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/wavefc/catalog"
)

// Build expands ts into a catalog. A non-empty subset keeps only the tiles
// it lists, and only the neighbor pairs whose tiles both survive.
func Build(ts TileSet, subset string) (*Model, error) {
	declared := make(map[string]bool, len(ts.Tiles))
	for _, tile := range ts.Tiles {
		if declared[tile.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTile, tile.Name)
		}
		declared[tile.Name] = true
	}

	tiles, err := selectTiles(ts, subset, declared)
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, ErrEmptyTileSet
	}

	m := &Model{Tiles: tiles, Unique: ts.Unique, first: make(map[string]int, len(tiles))}
	var weights []float64
	for i, tile := range tiles {
		w := tile.Weight
		if w == 0 {
			w = 1
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: %q has weight %v", ErrBadWeight, tile.Name, tile.Weight)
		}
		if tile.Symmetry < ClassX || tile.Symmetry > ClassF {
			return nil, fmt.Errorf("%w: %q has class %d", ErrUnknownSymmetry, tile.Name, int(tile.Symmetry))
		}

		offset := len(m.Action)
		m.first[tile.Name] = offset
		for k := 0; k < tile.Symmetry.Cardinality(); k++ {
			orbit := tile.Symmetry.Orbit(k)
			for g := range orbit {
				orbit[g] += offset
			}
			m.Action = append(m.Action, orbit)
			m.Names = append(m.Names, Ref{Name: tile.Name, Orientation: k}.String())
			m.Base = append(m.Base, i)
			m.Orientation = append(m.Orientation, k)
			weights = append(weights, w)
		}
	}

	dense, err := m.denseTable(ts.Neighbors, declared)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.FromDense(weights, dense, m.Names)
	if err != nil {
		return nil, err
	}
	if gaps := cat.Isolated(); len(gaps) > 0 {
		errs := make([]error, 0, len(gaps))
		for _, g := range gaps {
			errs = append(errs, fmt.Errorf("%w: %q in direction %s", ErrIsolatedTile, m.Names[g.Pattern], g.Direction))
		}
		return nil, errors.Join(errs...)
	}
	m.Catalog = cat
	return m, nil
}

// selectTiles applies the subset filter, keeping declaration order.
func selectTiles(ts TileSet, subset string, declared map[string]bool) ([]Tile, error) {
	if subset == "" {
		return ts.Tiles, nil
	}
	sub, ok := lo.Find(ts.Subsets, func(s Subset) bool { return s.Name == subset })
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubset, subset)
	}
	if missing, found := lo.Find(sub.Tiles, func(name string) bool { return !declared[name] }); found {
		return nil, fmt.Errorf("%w: %q in subset %q", ErrUnknownTile, missing, subset)
	}
	return lo.Filter(ts.Tiles, func(t Tile, _ int) bool { return lo.Contains(sub.Tiles, t.Name) }), nil
}

// resolve maps a reference to a pattern index. ok is false for declared
// tiles that were filtered out by the subset.
func (m *Model) resolve(r Ref, declared map[string]bool) (int, bool, error) {
	if _, kept := m.first[r.Name]; !kept {
		if declared[r.Name] {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownTile, r.Name)
	}
	t, err := m.Index(r.Name, r.Orientation)
	if err != nil {
		return 0, false, err
	}
	return t, true, nil
}

// denseTable marks every neighbor pair with its symmetric images and
// transposes left/down into right/up.
func (m *Model) denseTable(neighbors []Neighbor, declared map[string]bool) ([catalog.DirectionCount][][]bool, error) {
	t := len(m.Action)
	var dense [catalog.DirectionCount][][]bool
	for d := range dense {
		dense[d] = make([][]bool, t)
		for i := range dense[d] {
			dense[d][i] = make([]bool, t)
		}
	}

	left, down := dense[catalog.Left], dense[catalog.Down]
	act := m.Action
	for _, nb := range neighbors {
		l, okL, err := m.resolve(nb.Left, declared)
		if err != nil {
			return dense, err
		}
		r, okR, err := m.resolve(nb.Right, declared)
		if err != nil {
			return dense, err
		}
		if !okL || !okR {
			continue
		}
		d, u := act[l][1], act[r][1]

		left[r][l] = true
		left[act[r][6]][act[l][6]] = true
		left[act[l][4]][act[r][4]] = true
		left[act[l][2]][act[r][2]] = true

		down[u][d] = true
		down[act[d][6]][act[u][6]] = true
		down[act[u][4]][act[d][4]] = true
		down[act[d][2]][act[u][2]] = true
	}

	for t2 := 0; t2 < t; t2++ {
		for t1 := 0; t1 < t; t1++ {
			dense[catalog.Right][t2][t1] = left[t1][t2]
			dense[catalog.Up][t2][t1] = down[t1][t2]
		}
	}
	return dense, nil
}
