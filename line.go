package cartesian

import (
	"fmt"
	"math"
)

// Point is a position on the plane, either in logical units or in pixels
// depending on who produced it.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polar returns the cartesian point for radius r at angle theta (radians).
func Polar(r, theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{X: r * cos, Y: r * sin}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// IsFinite is false if either coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis aligned rectangle, X,Y being the top left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Empty is true for rectangles without a positive area.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Line is a segment between two Points.
type Line struct {
	Start, End Point
}

// Vector returns End-Start.
func (l Line) Vector() Point {
	return l.End.Sub(l.Start)
}

// Length is the euclidean length of the segment.
func (l Line) Length() float64 {
	v := l.Vector()
	return math.Hypot(v.X, v.Y)
}

// Vertical is true when both end points share the same X.
func (l Line) Vertical() bool {
	return l.Start.X == l.End.X
}

// Horizontal is true when both end points share the same Y.
func (l Line) Horizontal() bool {
	return l.Start.Y == l.End.Y
}

// Crosses returns true if the other line crosses line.
// Basically, line intersection but looking at end points.
func (l Line) Crosses(other Line) bool {
	return Crosses(l.Start, l.End, other.Start, other.End)
}

// Code borrowed from C++ and https://bit.ly/3jyKGah
func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// To find orientation of ordered triplet (p, q, r).
// The function returns following values
// 0 --> p, q and r are colinear
// 1 --> Clockwise
// 2 --> Counterclockwise
func orientation(p, q, r Point) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if val == 0 {
		return 0 // colinear
	}
	if val > 0 {
		return 1 // clockwise
	}
	return 2 // counterclock wise
}

// Crosses returns true if line segment `p1`,  `q1` and `p2`, `q2` crosses.
// Touching end points count as crossing.
func Crosses(p1, q1, p2, q2 Point) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	// General case
	if o1 != o2 && o3 != o4 {
		return true
	}
	// p1, q1 and p2 are colinear and p2 lies on segment p1q1
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	// p1, q1 and q2 are colinear and q2 lies on segment p1q1
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	// p2, q2 and p1 are colinear and p1 lies on segment p2q2
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	// p2, q2 and q1 are colinear and q1 lies on segment p2q2
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}
