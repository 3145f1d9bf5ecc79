package model

// Scene primitives. A Scene is an ordered list of primitives in one
// coordinate frame; it is built fresh per render and never mutated after.

const (
	KindSegment    = "segment"
	KindPolygon    = "polygon"
	KindCurve      = "curve"
	KindAnnotation = "annotation"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Primitive is one drawable element. Points holds the two endpoints of a
// segment, the ordered boundary of a polygon, or the samples of a curve.
// Annotations anchor at At and may point an arrow at Arrow.
type Primitive struct {
	Kind   string  `json:"kind"`
	Points []Point `json:"points,omitempty"`
	At     Point   `json:"at"`
	Text   string  `json:"text,omitempty"`
	Arrow  *Point  `json:"arrow,omitempty"`
}

type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

type Scene struct {
	Primitives []Primitive `json:"primitives"`
	Bounds     Rect        `json:"bounds"`
}

func NewSegment(from, to Point) Primitive {
	return Primitive{Kind: KindSegment, Points: []Point{from, to}}
}

func NewPolygon(points []Point) Primitive {
	return Primitive{Kind: KindPolygon, Points: points}
}

func NewCurve(points []Point) Primitive {
	return Primitive{Kind: KindCurve, Points: points}
}

func NewAnnotation(at Point, text string) Primitive {
	return Primitive{Kind: KindAnnotation, At: at, Text: text}
}

func NewArrow(at Point, tip Point, text string) Primitive {
	return Primitive{Kind: KindAnnotation, At: at, Text: text, Arrow: &tip}
}
