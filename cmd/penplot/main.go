package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"penplot/internal/plot"
	"penplot/internal/render"
	"penplot/internal/script"
)

func main() {
	var startX, startY int
	var heading float64
	var colorName, penName string

	flag.IntVar(&startX, "x", 0, "стартовая позиция X")
	flag.IntVar(&startY, "y", 0, "стартовая позиция Y")
	flag.Float64Var(&heading, "heading", 0, "стартовый курс в градусах")
	flag.StringVar(&colorName, "color", "black", "стартовый цвет: black, red или green")
	flag.StringVar(&penName, "pen", "up", "стартовое положение каретки: up или down")
	flag.Parse()

	color, err := plot.ParseColor(colorName)
	if err != nil {
		log.Fatal(err)
	}
	pen, err := parsePen(penName)
	if err != nil {
		log.Fatal(err)
	}
	initial := plot.NewState(plot.Position{X: startX, Y: startY}, heading, color, pen)

	var ops []plot.Op
	if flag.NArg() > 0 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Fatalf("could not read script file %s: %s", flag.Arg(0), err)
		}
		ops, err = script.Compile(string(data))
		if err != nil {
			log.Fatal(err)
		}
	} else {
		ops = demoProgram()
	}

	final, events, err := plot.Run(initial, ops)

	r := render.New()
	r.WriteLog(os.Stdout, events)
	if err != nil {
		// частичный лог уже напечатан
		log.Fatal(err)
	}
	fmt.Println(r.StateLine(final))
}

// demoProgram is the built-in demo plot: a triangle, a jump, an ink
// switch and a square.
func demoProgram() []plot.Op {
	ops := plot.Triangle(100)
	ops = append(ops, plot.SetPosition(plot.Position{X: 10, Y: 10}))
	ops = append(ops, plot.SetColor(plot.Red))
	ops = append(ops, plot.Square(80)...)
	return ops
}

func parsePen(name string) (plot.PenState, error) {
	switch name {
	case "up":
		return plot.Up, nil
	case "down":
		return plot.Down, nil
	}
	return 0, fmt.Errorf("unknown pen state %q, want up or down", name)
}
