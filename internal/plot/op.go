package plot

import (
	"fmt"
	"math"
)

// OpKind tags the operation variants.
type OpKind int

const (
	OpMove OpKind = iota
	OpTurn
	OpPenUp
	OpPenDown
	OpSetColor
	OpSetPosition
)

func (k OpKind) String() string {
	switch k {
	case OpMove:
		return "move"
	case OpTurn:
		return "turn"
	case OpPenUp:
		return "pen up"
	case OpPenDown:
		return "pen down"
	case OpSetColor:
		return "set color"
	case OpSetPosition:
		return "set position"
	default:
		return fmt.Sprintf("opkind(%d)", int(k))
	}
}

// Op is one plotter command. Kind selects which parameter fields are
// meaningful; the rest stay zero. A program is plain data, a []Op that
// can be stored and inspected before running.
type Op struct {
	Kind     OpKind
	Distance float64  // OpMove
	Delta    float64  // OpTurn
	Color    Color    // OpSetColor
	To       Position // OpSetPosition
}

// Move travels distance units along the current heading. Negative
// distances move backward; zero is a valid degenerate move. A
// destination beyond the int coordinate range saturates at the range
// boundary.
func Move(distance float64) Op { return Op{Kind: OpMove, Distance: distance} }

// Turn rotates the heading by delta degrees, counterclockwise positive.
func Turn(delta float64) Op { return Op{Kind: OpTurn, Delta: delta} }

// PenUp raises the pen so that subsequent moves only reposition.
func PenUp() Op { return Op{Kind: OpPenUp} }

// PenDown lowers the pen so that subsequent moves draw.
func PenDown() Op { return Op{Kind: OpPenDown} }

// SetColor switches the carriage ink. The color is checked when the
// operation is applied, not here.
func SetColor(c Color) Op { return Op{Kind: OpSetColor, Color: c} }

// SetPosition jumps the carriage to a point without drawing.
func SetPosition(to Position) Op { return Op{Kind: OpSetPosition, To: to} }

// Apply runs a single operation against a snapshot and returns the
// next snapshot plus the one event describing what happened. On error
// the input state comes back unchanged and the event is nil.
func Apply(op Op, s State) (State, Event, error) {
	switch op.Kind {
	case OpMove:
		rad := s.Heading * math.Pi / 180
		from := s.Pos
		s.Pos = Position{
			X: roundCoord(float64(from.X) + op.Distance*math.Cos(rad)),
			Y: roundCoord(float64(from.Y) + op.Distance*math.Sin(rad)),
		}
		if s.Pen == Down {
			return s, LineDrawn{From: from, To: s.Pos, Color: s.Color}, nil
		}
		return s, Moved{From: from, To: s.Pos, Distance: op.Distance}, nil

	case OpTurn:
		s.Heading = normalizeHeading(s.Heading + op.Delta)
		return s, Turned{By: op.Delta, To: s.Heading}, nil

	case OpPenUp:
		s.Pen = Up
		return s, PenChanged{To: Up}, nil

	case OpPenDown:
		s.Pen = Down
		return s, PenChanged{To: Down}, nil

	case OpSetColor:
		if !op.Color.Valid() {
			return s, nil, fmt.Errorf("set color: %w: %s", ErrInvalidColor, op.Color)
		}
		s.Color = op.Color
		return s, ColorChanged{To: op.Color}, nil

	case OpSetPosition:
		s.Pos = op.To
		return s, PositionSet{To: op.To}, nil

	default:
		return s, nil, fmt.Errorf("unknown operation: %s", op.Kind)
	}
}
