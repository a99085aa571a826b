package tiled

import (
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// document mirrors the tile-set file:
//
//	set:
//	  unique: false
//	  tiles:     {tile: [{name, symmetry, weight}]}
//	  neighbors: {neighbor: [{left: "a 1", right: "b"}]}
//	  subsets:   {subset: [{name, tile: [{name}]}]}
type document struct {
	Set struct {
		Unique bool `yaml:"unique"`
		Tiles  struct {
			Tile list[tileDoc] `yaml:"tile"`
		} `yaml:"tiles"`
		Neighbors struct {
			Neighbor list[neighborDoc] `yaml:"neighbor"`
		} `yaml:"neighbors"`
		Subsets struct {
			Subset list[subsetDoc] `yaml:"subset"`
		} `yaml:"subsets"`
	} `yaml:"set"`
}

type tileDoc struct {
	Name     string   `yaml:"name"`
	Symmetry string   `yaml:"symmetry"`
	Weight   *float64 `yaml:"weight"`
}

type neighborDoc struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

type subsetDoc struct {
	Name string           `yaml:"name"`
	Tile list[subsetTile] `yaml:"tile"`
}

type subsetTile struct {
	Name string `yaml:"name"`
}

// list decodes either a sequence or a single mapping, since documents
// converted from XML collapse one-element lists into a bare object.
type list[T any] []T

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *list[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var items []T
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var item T
	if err := node.Decode(&item); err != nil {
		return err
	}
	*l = list[T]{item}
	return nil
}

// Decode reads a tile-set document in YAML or JSON form.
func Decode(r io.Reader) (TileSet, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return TileSet{}, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	ts := TileSet{Unique: doc.Set.Unique}
	for _, td := range doc.Set.Tiles.Tile {
		if td.Name == "" {
			return TileSet{}, fmt.Errorf("%w: tile without a name", ErrBadDocument)
		}
		class, err := ParseClass(td.Symmetry)
		if err != nil {
			return TileSet{}, fmt.Errorf("tile %q: %w", td.Name, err)
		}
		tile := Tile{Name: td.Name, Symmetry: class}
		if td.Weight != nil {
			if !(*td.Weight > 0) {
				return TileSet{}, fmt.Errorf("%w: %q has weight %v", ErrBadWeight, td.Name, *td.Weight)
			}
			tile.Weight = *td.Weight
		}
		ts.Tiles = append(ts.Tiles, tile)
	}
	for _, nd := range doc.Set.Neighbors.Neighbor {
		left, err := ParseRef(nd.Left)
		if err != nil {
			return TileSet{}, err
		}
		right, err := ParseRef(nd.Right)
		if err != nil {
			return TileSet{}, err
		}
		ts.Neighbors = append(ts.Neighbors, Neighbor{Left: left, Right: right})
	}
	ts.Subsets = lo.Map(doc.Set.Subsets.Subset, func(sd subsetDoc, _ int) Subset {
		return Subset{
			Name:  sd.Name,
			Tiles: lo.Map(sd.Tile, func(t subsetTile, _ int) string { return t.Name }),
		}
	})
	return ts, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (TileSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return TileSet{}, err
	}
	defer f.Close()
	return Decode(f)
}
