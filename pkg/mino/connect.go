package mino

// Connected reports whether the cells of p form one 4-connected region.
// The walk starts at the pivot cell and steps to edge-sharing cells only;
// the piece is connected when every cell was reached. Cells are tracked by
// index, so a piece listing the same coordinate twice is not connected.
func Connected(p Piece) bool {
	if len(p.Cells) == 0 || p.Pivot < 0 || p.Pivot >= len(p.Cells) {
		return false
	}

	w := &pathWalker{piece: p, visited: make([]bool, len(p.Cells))}
	w.step(p.Pivot)

	return w.count == len(p.Cells)
}

type pathWalker struct {
	piece   Piece
	visited []bool
	count   int
}

func (w *pathWalker) step(i int) {
	w.visited[i] = true
	w.count++

	for _, nb := range w.piece.Cells[i].Neighborhood() {
		for j, c := range w.piece.Cells {
			if !w.visited[j] && c == nb {
				w.step(j)
				break
			}
		}
	}
}
