package state

// Point is a position in surface coordinates, not screen pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ToSurface maps a position inside a rendered element of size elemW x elemH
// onto a surface of resolution surfW x surfH.
func ToSurface(screen Point, elemW, elemH, surfW, surfH float64) Point {
	if elemW <= 0 || elemH <= 0 {
		return screen
	}
	return Point{
		X: screen.X * surfW / elemW,
		Y: screen.Y * surfH / elemH,
	}
}

// Surface is anything the pad can render onto. Implementations own their own
// scale; commands always pass resolution-independent coordinates.
type Surface interface {
	Clear()
	// StrokePolyline draws one connected path with round caps and joins.
	StrokePolyline(pts []Point, width float64)
	StrokeCircle(center Point, radius, width float64)
	// DrawGlyph draws glyph centered horizontally and vertically on at.
	DrawGlyph(glyph string, at Point, size, alpha float64)
}

// Displayable renders itself onto a surface. Display must be idempotent and
// depend only on the receiver's own state.
type Displayable interface {
	Display(s Surface)
}

type Kind string

const (
	KindStroke  Kind = "stroke"
	KindSticker Kind = "sticker"
)

// Command is a committed, replayable unit of drawn content.
type Command interface {
	Displayable
	ID() string
	Kind() Kind
	// Drag feeds a pointer move to the command while it is being drawn.
	Drag(p Point)
}
