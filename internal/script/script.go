// Package script parses the textual plot language and compiles it into
// plotter operations.
//
// The language is a flat command list: move, turn, pen, color, goto and
// a repeat block, with # line comments. Each simple statement ends with
// a semicolon.
package script

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"penplot/internal/plot"
)

// ErrInvalidRepeatCount reports a repeat statement with a negative count.
var ErrInvalidRepeatCount = errors.New("invalid repeat count")

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Move   *MoveStmt   `parser:"@@ ';'"`
	Turn   *TurnStmt   `parser:"| @@ ';'"`
	Pen    *PenStmt    `parser:"| @@ ';'"`
	Color  *ColorStmt  `parser:"| @@ ';'"`
	Goto   *GotoStmt   `parser:"| @@ ';'"`
	Repeat *RepeatStmt `parser:"| @@"`
}

type MoveStmt struct {
	Distance float64 `parser:"'move' @Number"`
}

type TurnStmt struct {
	Delta float64 `parser:"'turn' @Number"`
}

type PenStmt struct {
	State string `parser:"'pen' @('up'|'down')"`
}

type ColorStmt struct {
	Name string `parser:"'color' @Ident"`
}

// GotoStmt takes integer coordinates, so a fractional argument fails
// right at parse time.
type GotoStmt struct {
	X int `parser:"'goto' @Number"`
	Y int `parser:"@Number"`
}

type RepeatStmt struct {
	Count int      `parser:"'repeat' @Number"`
	Body  *Program `parser:"'{' @@ '}'"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Number", Pattern: `-?[0-9]+(\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[;{}]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse builds the statement tree for a script.
func Parse(data string) (*Program, error) {
	return parser.ParseString("input", data)
}

// Compile parses a script and flattens it into one operation sequence.
func Compile(data string) ([]plot.Op, error) {
	prog, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return prog.Compile()
}

// Compile flattens the statement tree into the operation sequence,
// checking color names and repeat counts as it goes.
func (p *Program) Compile() ([]plot.Op, error) {
	var ops []plot.Op
	for _, stmt := range p.Statements {
		compiled, err := stmt.compile()
		if err != nil {
			return nil, err
		}
		ops = append(ops, compiled...)
	}
	return ops, nil
}

func (s *Statement) compile() ([]plot.Op, error) {
	switch {
	case s.Move != nil:
		return []plot.Op{plot.Move(s.Move.Distance)}, nil
	case s.Turn != nil:
		return []plot.Op{plot.Turn(s.Turn.Delta)}, nil
	case s.Pen != nil:
		if s.Pen.State == "down" {
			return []plot.Op{plot.PenDown()}, nil
		}
		return []plot.Op{plot.PenUp()}, nil
	case s.Color != nil:
		c, err := plot.ParseColor(s.Color.Name)
		if err != nil {
			return nil, err
		}
		return []plot.Op{plot.SetColor(c)}, nil
	case s.Goto != nil:
		return []plot.Op{plot.SetPosition(plot.Position{X: s.Goto.X, Y: s.Goto.Y})}, nil
	case s.Repeat != nil:
		if s.Repeat.Count < 0 {
			return nil, fmt.Errorf("repeat %d: %w", s.Repeat.Count, ErrInvalidRepeatCount)
		}
		body, err := s.Repeat.Body.Compile()
		if err != nil {
			return nil, err
		}
		return plot.Repeat(s.Repeat.Count, body...), nil
	}
	return nil, fmt.Errorf("invalid statement")
}
