package plot

import (
	"math"
	"math/rand"
	"testing"
)

// randDelta mixes whole, fractional and near-full-turn angles,
// including residues small enough to round up against 360 when
// wrapped.
func randDelta(rng *rand.Rand) float64 {
	switch rng.Intn(4) {
	case 0:
		return float64(rng.Intn(1441) - 720)
	case 1:
		return rng.Float64()*1440 - 720
	case 2:
		return -1e-15 * float64(rng.Intn(50))
	default:
		return float64(rng.Intn(5)-2)*360 - rng.Float64()*1e-13
	}
}

// randOp returns a random valid operation, so sequences built from it
// always run without error.
func randOp(rng *rand.Rand) Op {
	switch rng.Intn(6) {
	case 0:
		return Move(float64(rng.Intn(401) - 200))
	case 1:
		return Turn(randDelta(rng))
	case 2:
		return PenUp()
	case 3:
		return PenDown()
	case 4:
		return SetColor(Color(rng.Intn(3)))
	default:
		return SetPosition(Position{X: rng.Intn(201) - 100, Y: rng.Intn(201) - 100})
	}
}

func randOps(rng *rand.Rand, n int) []Op {
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = randOp(rng)
	}
	return ops
}

// Running a sequence in one go and running it split at any point must
// agree on the final state and the full log.
func TestRunSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		n := rng.Intn(30)
		ops := randOps(rng, n)
		k := rng.Intn(n + 1)

		whole, wholeLog, err := Run(DefaultState(), ops)
		if err != nil {
			t.Fatalf("whole run failed: %v", err)
		}
		mid, firstLog, err := Run(DefaultState(), ops[:k])
		if err != nil {
			t.Fatalf("first half failed: %v", err)
		}
		final, secondLog, err := Run(mid, ops[k:])
		if err != nil {
			t.Fatalf("second half failed: %v", err)
		}

		if final != whole {
			t.Fatalf("split at %d of %d: got=%+v, want=%+v", k, n, final, whole)
		}
		if len(firstLog)+len(secondLog) != len(wholeLog) {
			t.Fatalf("split at %d of %d: log lengths %d+%d != %d",
				k, n, len(firstLog), len(secondLog), len(wholeLog))
		}
		for j, ev := range wholeLog {
			var got Event
			if j < len(firstLog) {
				got = firstLog[j]
			} else {
				got = secondLog[j-len(firstLog)]
			}
			if got != ev {
				t.Fatalf("split at %d of %d: event %d: got=%#v, want=%#v", k, n, j, got, ev)
			}
		}
	}
}

// The heading must stay inside [0, 360) after every single operation.
func TestHeadingStaysNormalized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		state := NewState(Position{}, randDelta(rng), Black, Up)
		for j := 0; j < 20; j++ {
			next, _, err := Apply(randOp(rng), state)
			if err != nil {
				t.Fatalf("apply failed: %v", err)
			}
			if next.Heading < 0 || next.Heading >= 360 {
				t.Fatalf("heading %v is outside [0, 360)", next.Heading)
			}
			state = next
		}
	}
}

// Turning by quarter-degree steps must match the floored modulo of the
// sum; quarter-valued floats keep both sides exact. Residues that round
// up against 360 are pinned case by case in TestTurn.
func TestTurnMatchesFlooredModulo(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		h := float64(rng.Intn(1440)) / 4
		d := float64(rng.Intn(11521)-5760) / 4

		s := NewState(Position{}, h, Black, Up)
		next, _, err := Apply(Turn(d), s)
		if err != nil {
			t.Fatalf("turn failed: %v", err)
		}

		want := math.Mod(math.Mod(h+d, 360)+360, 360)
		if next.Heading != want {
			t.Fatalf("turn %v from %v: got=%v, want=%v", d, h, next.Heading, want)
		}
		if next.Heading < 0 || next.Heading >= 360 {
			t.Fatalf("turn %v from %v: heading %v is outside [0, 360)", d, h, next.Heading)
		}
	}
}

// With the pen up and no pen operations in the sequence, nothing may
// ever draw.
func TestPenUpNeverDraws(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		ops := make([]Op, 0, 20)
		for j := 0; j < 20; j++ {
			switch rng.Intn(4) {
			case 0:
				ops = append(ops, Move(float64(rng.Intn(401)-200)))
			case 1:
				ops = append(ops, Turn(randDelta(rng)))
			case 2:
				ops = append(ops, SetColor(Color(rng.Intn(3))))
			default:
				ops = append(ops, SetPosition(Position{X: rng.Intn(201) - 100, Y: rng.Intn(201) - 100}))
			}
		}
		_, events, err := Run(DefaultState(), ops)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		for _, ev := range events {
			if line, ok := ev.(LineDrawn); ok {
				t.Fatalf("pen up run drew a line: %+v", line)
			}
		}
	}
}

// One event per successful operation, in order.
func TestOneEventPerOp(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		ops := randOps(rng, rng.Intn(40))
		_, events, err := Run(DefaultState(), ops)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if len(events) != len(ops) {
			t.Fatalf("got=%d events for %d operations", len(events), len(ops))
		}
	}
}
