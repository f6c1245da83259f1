package core

// Direction is one of the four axis-aligned headings
type Direction uint8

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// Step returns the unit vector for the direction in screen space (y grows downward)
func (d Direction) Step() (dx, dy float64) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 1
	}
}

// Rect is an axis-aligned box in world units
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Intersects reports strict overlap; boxes sharing only an edge do not intersect
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Center returns the box midpoint
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
