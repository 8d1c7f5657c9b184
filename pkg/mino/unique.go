package mino

// Unique reports whether candidate is not a rotated or translated copy of
// any piece in accepted. Accepted pieces are expected to be recentered on
// their first cell. Every cell of candidate is tried as the origin, in each
// of the four quarter turns. With reflect set, mirror images count as
// copies too.
func Unique(candidate Piece, accepted []Piece, reflect bool) bool {
	if len(accepted) == 0 {
		return true
	}

	for _, a := range accepted {
		if sameShape(candidate, a) {
			return false
		}
		if reflect && sameShape(candidate.Reflect(), a) {
			return false
		}
	}

	return true
}

func sameShape(candidate, accepted Piece) bool {
	for k := range candidate.Cells {
		centered := candidate.Recenter(k)
		for _, theta := range Angles {
			if centered.Rotate(theta).CoversAll(accepted) {
				return true
			}
		}
	}

	return false
}
