package catalog

// Direction is one of the four cardinal neighbor directions.
type Direction int

const (
	// Left is the neighbor at dx=-1.
	Left Direction = iota
	// Down is the neighbor at dy=+1.
	Down
	// Right is the neighbor at dx=+1.
	Right
	// Up is the neighbor at dy=-1.
	Up
)

// DirectionCount is the number of cardinal directions.
const DirectionCount = 4

// Directions lists all directions in index order.
var Directions = [DirectionCount]Direction{Left, Down, Right, Up}

var (
	dx = [DirectionCount]int{-1, 0, 1, 0}
	dy = [DirectionCount]int{0, 1, 0, -1}
)

// DX returns the horizontal unit offset of d.
func (d Direction) DX() int { return dx[d] }

// DY returns the vertical unit offset of d.
func (d Direction) DY() int { return dy[d] }

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction { return (d + 2) % DirectionCount }

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "direction(?)"
	}
}
