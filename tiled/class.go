package tiled

import "fmt"

// Class is the symmetry class of a tile.
type Class int

const (
	// ClassX is invariant under every rotation and reflection.
	ClassX Class = iota
	// ClassL has four rotations; each reflection equals another rotation.
	ClassL
	// ClassT has four rotations and a vertical mirror axis.
	ClassT
	// ClassI has two rotations and is invariant under reflection.
	ClassI
	// ClassDiagonal ("\") has two rotations; reflection swaps them.
	ClassDiagonal
	// ClassF has no symmetry: four rotations of it and of its mirror image.
	ClassF
)

// ParseClass maps a symmetry letter to its Class. An empty string means X.
func ParseClass(s string) (Class, error) {
	switch s {
	case "", "X":
		return ClassX, nil
	case "L":
		return ClassL, nil
	case "T":
		return ClassT, nil
	case "I":
		return ClassI, nil
	case `\`:
		return ClassDiagonal, nil
	case "F":
		return ClassF, nil
	}
	return ClassX, fmt.Errorf("%w: %q", ErrUnknownSymmetry, s)
}

// String returns the symmetry letter.
func (c Class) String() string {
	switch c {
	case ClassX:
		return "X"
	case ClassL:
		return "L"
	case ClassT:
		return "T"
	case ClassI:
		return "I"
	case ClassDiagonal:
		return `\`
	case ClassF:
		return "F"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Cardinality is the number of distinct orientations.
func (c Class) Cardinality() int {
	switch c {
	case ClassL, ClassT:
		return 4
	case ClassI, ClassDiagonal:
		return 2
	case ClassF:
		return 8
	default:
		return 1
	}
}

// Rotate returns the orientation reached from i by a quarter turn.
func (c Class) Rotate(i int) int {
	switch c {
	case ClassL, ClassT:
		return (i + 1) % 4
	case ClassI, ClassDiagonal:
		return 1 - i
	case ClassF:
		if i < 4 {
			return (i + 1) % 4
		}
		return 4 + (i-1)%4
	default:
		return i
	}
}

// Reflect returns the orientation reached from i by a horizontal reflection.
func (c Class) Reflect(i int) int {
	switch c {
	case ClassL:
		if i%2 == 0 {
			return i + 1
		}
		return i - 1
	case ClassT:
		if i%2 == 0 {
			return i
		}
		return 4 - i
	case ClassDiagonal:
		return 1 - i
	case ClassF:
		if i < 4 {
			return i + 4
		}
		return i - 4
	default:
		return i
	}
}

// Orbit returns the image of orientation i under the eight group elements
// e, a, a², a³, b, ba, ba², ba³ (a = Rotate, b = Reflect).
func (c Class) Orbit(i int) [8]int {
	a1 := c.Rotate(i)
	a2 := c.Rotate(a1)
	a3 := c.Rotate(a2)
	return [8]int{i, a1, a2, a3, c.Reflect(i), c.Reflect(a1), c.Reflect(a2), c.Reflect(a3)}
}
