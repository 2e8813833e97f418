package plot

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidColor reports a color outside the plotter's fixed set.
var ErrInvalidColor = errors.New("invalid color")

// Color is the ink the carriage draws with. The set is closed: the
// device has exactly three ink slots.
type Color int

const (
	Black Color = iota
	Red
	Green
)

// String returns the canonical color name.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// Valid reports whether c is one of the defined colors.
func (c Color) Valid() bool {
	return c == Black || c == Red || c == Green
}

// ParseColor maps a canonical color name to its Color.
func ParseColor(name string) (Color, error) {
	switch name {
	case "black":
		return Black, nil
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, name)
	}
}

// PenState tells whether the carriage draws while moving.
type PenState int

const (
	Up   PenState = iota // repositions without drawing
	Down                 // draws a line on every move
)

func (p PenState) String() string {
	if p == Down {
		return "down"
	}
	return "up"
}

// Position is a point on the plotter bed, in whole units.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// State is one snapshot of the plotter: where the carriage is, which
// way it points, which ink it holds and whether the pen touches the
// bed. It is a value; operations return a fresh snapshot and never
// touch the old one.
type State struct {
	Pos     Position
	Heading float64 // degrees, always in [0, 360)
	Color   Color
	Pen     PenState
}

// NewState builds a snapshot from an explicit starting configuration.
// The heading is normalized into [0, 360).
func NewState(pos Position, heading float64, color Color, pen PenState) State {
	return State{Pos: pos, Heading: normalizeHeading(heading), Color: color, Pen: pen}
}

// DefaultState is the power-on configuration: origin, heading 0,
// black ink, pen up.
func DefaultState() State {
	return State{}
}

// normalizeHeading wraps degrees into [0, 360) with a floored modulo,
// so negative angles wrap upward: 10 - 30 gives 340, not -20. Values
// already in range come back unchanged.
func normalizeHeading(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	if m == 0 || m >= 360 {
		// math.Mod keeps the dividend's sign, and adding 360 to a
		// tiny negative residue rounds up to exactly 360; both edges
		// fold to 0
		return 0
	}
	return m
}

// roundCoord rounds a computed coordinate to the nearest whole unit,
// ties to even (banker's rounding). Values beyond the int range
// saturate at the nearest boundary; the bare conversion is
// implementation-defined there.
func roundCoord(v float64) int {
	r := math.RoundToEven(v)
	if r >= math.MaxInt {
		return math.MaxInt
	}
	if r <= math.MinInt {
		return math.MinInt
	}
	return int(r)
}
