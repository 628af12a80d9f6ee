package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Step returns the unit offset for this direction (North is -Y)
func (d Direction) Step() Point {
	return d.Axes().Step()
}

// Axes splits the direction into its horizontal and vertical components
func (d Direction) Axes() Axes {
	switch d {
	case North:
		return Axes{X: XNone, Y: Up}
	case East:
		return Axes{X: Right, Y: YNone}
	case South:
		return Axes{X: XNone, Y: Down}
	case West:
		return Axes{X: Left, Y: YNone}
	default:
		return Axes{}
	}
}

// DirectionX is the horizontal component of a direction
type DirectionX int

const (
	XNone DirectionX = iota
	Left
	Right
)

// Step converts the direction to its signed unit step
func (d DirectionX) Step() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}

func (d DirectionX) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "None"
	}
}

// DirectionY is the vertical component of a direction
type DirectionY int

const (
	YNone DirectionY = iota
	Up
	Down
)

// Step converts the direction to its signed unit step. Up is -1.
func (d DirectionY) Step() int {
	switch d {
	case Up:
		return -1
	case Down:
		return 1
	default:
		return 0
	}
}

func (d DirectionY) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "None"
	}
}

// Axes pairs a horizontal and a vertical direction
type Axes struct {
	X DirectionX
	Y DirectionY
}

// Step returns the combined unit offset
func (a Axes) Step() Point {
	return Point{X: a.X.Step(), Y: a.Y.Step()}
}

// IsNone returns true if neither axis is set
func (a Axes) IsNone() bool {
	return a.X == XNone && a.Y == YNone
}

// AxesOf converts a step (only the signs are used) into axis directions
func AxesOf(step Point) Axes {
	var a Axes
	switch sign(step.X) {
	case -1:
		a.X = Left
	case 1:
		a.X = Right
	}
	switch sign(step.Y) {
	case -1:
		a.Y = Up
	case 1:
		a.Y = Down
	}
	return a
}
