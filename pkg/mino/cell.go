package mino

import (
	"math"
	"strconv"
	"strings"
)

// Quarter turns used by rotation and neighbour lookups.
const (
	Angle0   = 0
	Angle90  = math.Pi / 2
	Angle180 = math.Pi
	Angle270 = 3 * math.Pi / 2

	RotationStates = 4
)

// Angles lists the four quarter turns in the order they are tried.
var Angles = [RotationStates]float64{Angle0, Angle90, Angle180, Angle270}

type Cell struct {
	X, Y int
}

func (c Cell) Add(o Cell) Cell { return Cell{c.X + o.X, c.Y + o.Y} }
func (c Cell) Sub(o Cell) Cell { return Cell{c.X - o.X, c.Y - o.Y} }
func (c Cell) Reflect() Cell   { return Cell{-c.X, c.Y} }

// Rotate turns c about the origin. cos and sin are truncated to integers
// before they are applied, so only the four quarter turns are meaningful.
func (c Cell) Rotate(theta float64) Cell {
	cos, sin := truncTrig(theta)

	return Cell{
		X: c.X*cos - c.Y*sin,
		Y: c.X*sin + c.Y*cos,
	}
}

// Neighborhood returns the Von Neumann neighborhood of c, east first and
// then counter-clockwise.
func (c Cell) Neighborhood() [RotationStates]Cell {
	var n [RotationStates]Cell
	for k := 0; k < RotationStates; k++ {
		dx, dy := truncTrig(float64(k) * Angle90)
		n[k] = Cell{c.X + dx, c.Y + dy}
	}

	return n
}

func (c Cell) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(c.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(c.Y))
	b.WriteRune(')')

	return b.String()
}

func truncTrig(theta float64) (int, int) {
	return int(math.Cos(theta)), int(math.Sin(theta))
}
