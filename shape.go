package cartesian

// Shape is what a surface draws at each plotted point. The set of shapes is
// closed: Dot, Square and Segment.
type Shape interface {
	isShape()
}

// Dot is a filled circle centered on the point.
type Dot struct {
	Radius float64
}

// Square is a filled square centered on the point.
type Square struct {
	Side float64
}

// Segment is a stroked line from the point to point+(DX, DY).
type Segment struct {
	DX, DY float64
}

func (Dot) isShape()     {}
func (Square) isShape()  {}
func (Segment) isShape() {}
