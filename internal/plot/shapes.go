package plot

// Repeat concatenates n copies of the given operations into one flat
// sequence. Counts of zero or less yield an empty sequence.
func Repeat(n int, ops ...Op) []Op {
	if n <= 0 || len(ops) == 0 {
		return nil
	}
	out := make([]Op, 0, n*len(ops))
	for i := 0; i < n; i++ {
		out = append(out, ops...)
	}
	return out
}

// Polygon traces a closed regular polygon: pen down, then a move and an
// exterior turn of 360/sides degrees per side, then pen up. The walk
// starts along the current heading and ends back at the start with the
// original heading restored. Side counts below 3 yield nil.
func Polygon(sides int, size float64) []Op {
	if sides < 3 {
		return nil
	}
	ops := make([]Op, 0, 2*sides+2)
	ops = append(ops, PenDown())
	ops = append(ops, Repeat(sides, Move(size), Turn(360/float64(sides)))...)
	ops = append(ops, PenUp())
	return ops
}

// Triangle traces an equilateral triangle with the given side length.
func Triangle(size float64) []Op { return Polygon(3, size) }

// Square traces a square with the given side length.
func Square(size float64) []Op { return Polygon(4, size) }
