package mino

import (
	"fmt"
	"strconv"
	"strings"
)

type Pieces []Piece

// Has reports whether ms holds a piece with exactly the cells of p.
func (ms Pieces) Has(p Piece) bool {
	for _, m := range ms {
		if m.Equal(p) {
			return true
		}
	}

	return false
}

// Known one-sided shapes up to order five, normalized and in String form.
const (
	Monomino = "(0,0)"

	Domino = "(0,0),(1,0)"

	TrominoI = "(0,0),(1,0),(2,0)"
	TrominoL = "(0,0),(1,0),(0,1)"

	TetrominoI = "(0,0),(1,0),(2,0),(3,0)"
	TetrominoO = "(0,0),(1,0),(0,1),(1,1)"
	TetrominoT = "(0,0),(1,0),(2,0),(1,1)"
	TetrominoS = "(0,0),(1,0),(1,1),(2,1)"
	TetrominoZ = "(1,0),(2,0),(0,1),(1,1)"
	TetrominoJ = "(0,0),(1,0),(2,0),(0,1)"
	TetrominoL = "(0,0),(1,0),(2,0),(2,1)"

	PentominoF = "(0,0),(1,0),(1,1),(2,1),(1,2)"
	PentominoE = "(1,0),(2,0),(0,1),(1,1),(1,2)"
	PentominoJ = "(0,0),(1,0),(2,0),(3,0),(0,1)"
	PentominoL = "(0,0),(1,0),(2,0),(3,0),(3,1)"
	PentominoP = "(0,0),(1,0),(2,0),(0,1),(1,1)"
	PentominoZ = "(1,0),(2,0),(1,1),(0,2),(1,2)"
	PentominoI = "(0,0),(1,0),(2,0),(3,0),(4,0)"
	PentominoX = "(1,0),(0,1),(1,1),(2,1),(1,2)"
	PentominoV = "(0,0),(1,0),(2,0),(0,1),(0,2)"
	PentominoB = "(0,0),(1,0),(2,0),(1,1),(2,1)"
	PentominoN = "(1,0),(2,0),(3,0),(0,1),(1,1)"
	PentominoG = "(0,0),(1,0),(2,0),(2,1),(3,1)"
	PentominoS = "(0,0),(1,0),(1,1),(1,2),(2,2)"
	PentominoT = "(0,0),(1,0),(2,0),(1,1),(1,2)"
	PentominoU = "(0,0),(1,0),(2,0),(0,1),(2,1)"
	PentominoW = "(1,0),(2,0),(0,1),(1,1),(0,2)"
	PentominoY = "(0,0),(1,0),(2,0),(3,0),(2,1)"
	PentominoR = "(0,0),(1,0),(2,0),(3,0),(1,1)"
)

var knownNames = []struct {
	name  string
	shape string
}{
	{"Monomino", Monomino},
	{"Domino", Domino},
	{"I", TrominoI}, {"L", TrominoL},
	{"I", TetrominoI}, {"O", TetrominoO}, {"T", TetrominoT}, {"S", TetrominoS},
	{"Z", TetrominoZ}, {"J", TetrominoJ}, {"L", TetrominoL},
	{"F", PentominoF}, {"E", PentominoE}, {"J", PentominoJ}, {"L", PentominoL},
	{"P", PentominoP}, {"Z", PentominoZ}, {"I", PentominoI}, {"X", PentominoX},
	{"V", PentominoV}, {"B", PentominoB}, {"N", PentominoN}, {"G", PentominoG},
	{"S", PentominoS}, {"T", PentominoT}, {"U", PentominoU}, {"W", PentominoW},
	{"Y", PentominoY}, {"R", PentominoR},
}

var knownShapes = func() []Piece {
	shapes := make([]Piece, len(knownNames))
	for i, k := range knownNames {
		p, err := ParsePiece(k.shape)
		if err != nil {
			panic(fmt.Sprintf("mino: bad known shape %q: %s", k.shape, err))
		}
		shapes[i] = p
	}

	return shapes
}()

// Name returns the conventional letter of a piece up to order five, matched
// by rotation and translation. Unknown shapes get an empty name.
func Name(p Piece) string {
	for i, shape := range knownShapes {
		if shape.Len() == p.Len() && sameShape(p, shape.Recenter(0)) {
			return knownNames[i].name
		}
	}

	return ""
}

// ParsePiece reads the "(x,y),(x,y)" form produced by Piece.String.
func ParsePiece(s string) (Piece, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Piece{}, nil
	}

	var cells []Cell
	for _, part := range strings.Split(s, "),") {
		part = strings.Trim(strings.TrimSpace(part), "()")

		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return Piece{}, fmt.Errorf("mino: invalid cell %q", part)
		}

		x, err := strconv.Atoi(strings.TrimSpace(xy[0]))
		if err != nil {
			return Piece{}, fmt.Errorf("mino: invalid x in %q: %w", part, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(xy[1]))
		if err != nil {
			return Piece{}, fmt.Errorf("mino: invalid y in %q: %w", part, err)
		}

		cells = append(cells, Cell{x, y})
	}

	return NewPiece(cells...), nil
}
