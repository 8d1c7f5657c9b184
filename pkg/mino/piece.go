package mino

import (
	"sort"
	"strings"
)

// Piece is a candidate polyomino: an ordered list of cells plus the index of
// the cell used as origin for recentering and rotation. Every method returns
// a new Piece; the receiver's cells are never written to.
type Piece struct {
	Cells []Cell
	Pivot int
}

// NewPiece copies cells into a fresh Piece pivoting on its first cell.
func NewPiece(cells ...Cell) Piece {
	p := Piece{Cells: make([]Cell, len(cells))}
	copy(p.Cells, cells)

	return p
}

// PieceFromIndices unflattens slot indices of a width-wide bounding box into
// cells, row-major.
func PieceFromIndices(indices []int, width int) Piece {
	p := Piece{Cells: make([]Cell, len(indices))}
	for i, idx := range indices {
		p.Cells[i] = Cell{X: idx % width, Y: idx / width}
	}

	return p
}

func (p Piece) Len() int { return len(p.Cells) }

// Clone returns a deep copy sharing no storage with p.
func (p Piece) Clone() Piece {
	c := Piece{Cells: make([]Cell, len(p.Cells)), Pivot: p.Pivot}
	copy(c.Cells, p.Cells)

	return c
}

// Recenter makes the cell at index k the origin. The result pivots on k.
func (p Piece) Recenter(k int) Piece {
	center := p.Cells[k]

	r := Piece{Cells: make([]Cell, len(p.Cells)), Pivot: k}
	for i, c := range p.Cells {
		r.Cells[i] = c.Sub(center)
	}

	return r
}

// Rotate turns every cell about the origin by theta. See Cell.Rotate for the
// angles that are supported.
func (p Piece) Rotate(theta float64) Piece {
	r := Piece{Cells: make([]Cell, len(p.Cells)), Pivot: p.Pivot}
	for i, c := range p.Cells {
		r.Cells[i] = c.Rotate(theta)
	}

	return r
}

// Reflect mirrors the piece across the y axis.
func (p Piece) Reflect() Piece {
	r := Piece{Cells: make([]Cell, len(p.Cells)), Pivot: p.Pivot}
	for i, c := range p.Cells {
		r.Cells[i] = c.Reflect()
	}

	return r
}

// CoversAll reports whether every cell of p has an exact match among the
// cells of other. The check is one-directional: cells of other without a
// match in p are not detected. For two pieces of the same order with
// distinct cells this is the same as set equality.
func (p Piece) CoversAll(other Piece) bool {
	for _, c := range p.Cells {
		if !other.HasCell(c) {
			return false
		}
	}

	return true
}

// Equal is CoversAll guarded by a length check.
func (p Piece) Equal(other Piece) bool {
	return len(p.Cells) == len(other.Cells) && p.CoversAll(other)
}

func (p Piece) HasCell(c Cell) bool {
	for _, pc := range p.Cells {
		if pc == c {
			return true
		}
	}

	return false
}

// Bounds returns the smallest and largest coordinates used by the piece.
func (p Piece) Bounds() (min, max Cell) {
	if len(p.Cells) == 0 {
		return Cell{}, Cell{}
	}

	min, max = p.Cells[0], p.Cells[0]
	for _, c := range p.Cells[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}

	return min, max
}

// Size returns the width and height of the bounding box.
func (p Piece) Size() (int, int) {
	if len(p.Cells) == 0 {
		return 0, 0
	}

	min, max := p.Bounds()

	return max.X - min.X + 1, max.Y - min.Y + 1
}

// Normalize shifts the piece so that its bounding box starts at (0,0).
func (p Piece) Normalize() Piece {
	min, _ := p.Bounds()

	r := Piece{Cells: make([]Cell, len(p.Cells)), Pivot: p.Pivot}
	for i, c := range p.Cells {
		r.Cells[i] = c.Sub(min)
	}

	return r
}

// String lists the cells sorted row by row, e.g. "(0,0),(1,0),(0,1)".
func (p Piece) String() string {
	cells := make([]Cell, len(p.Cells))
	copy(cells, p.Cells)

	sort.Slice(cells, func(i, j int) bool {
		return cells[i].Y < cells[j].Y || (cells[i].Y == cells[j].Y && cells[i].X < cells[j].X)
	})

	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteString(c.String())
	}

	return b.String()
}

// Render draws the piece with X for filled cells, top row first.
func (p Piece) Render() string {
	if len(p.Cells) == 0 {
		return ""
	}

	n := p.Normalize()
	w, h := n.Size()

	var b strings.Builder
	for y := 0; y < h; y++ {
		line := make([]rune, w)
		for x := range line {
			line[x] = ' '
			if n.HasCell(Cell{x, y}) {
				line[x] = 'X'
			}
		}

		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteRune('\n')
	}

	return b.String()
}
