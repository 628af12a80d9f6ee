package world

import "fmt"

// Point is an integer grid coordinate. X grows to the right, Y grows downward.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Compare orders points row-major: by Y first, then by X.
// It returns -1, 0 or 1.
func Compare(a, b Point) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	default:
		return 0
	}
}

// Less reports whether a sorts before b in row-major order
func Less(a, b Point) bool {
	return Compare(a, b) < 0
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by k on both axes
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Sign returns the componentwise sign of p, each axis in {-1, 0, 1}
func (p Point) Sign() Point {
	return Point{X: sign(p.X), Y: sign(p.Y)}
}

// Perpendicular returns p rotated a quarter turn: (Y, -X)
func (p Point) Perpendicular() Point {
	return Point{X: p.Y, Y: -p.X}
}

// IsZero returns true for the origin
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns the absolute value of an integer
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
