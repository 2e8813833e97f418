package plot

// Event is one record of something the plotter did. Every successful
// operation produces exactly one event, and the executor collects them
// into a single ordered log. Consumers switch on the concrete type.
//
// The marker method keeps the set closed: only this package can add
// event kinds.
type Event interface {
	event()
}

// LineDrawn records a move made with the pen down. The ink is the
// carriage color at the moment of the move.
type LineDrawn struct {
	From, To Position
	Color    Color
}

func (LineDrawn) event() {}

// Moved records a move made with the pen up: the carriage repositioned
// without drawing. Distance is the commanded distance, not the rounded
// displacement.
type Moved struct {
	From, To Position
	Distance float64
}

func (Moved) event() {}

// Turned records a heading change of By degrees ending at To.
type Turned struct {
	By, To float64
}

func (Turned) event() {}

// PenChanged records the pen being raised or lowered. It is emitted
// even when the pen was already in the requested position.
type PenChanged struct {
	To PenState
}

func (PenChanged) event() {}

// ColorChanged records an ink switch.
type ColorChanged struct {
	To Color
}

func (ColorChanged) event() {}

// PositionSet records a direct jump of the carriage. No line is drawn,
// whatever the pen state.
type PositionSet struct {
	To Position
}

func (PositionSet) event() {}
