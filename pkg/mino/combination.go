package mino

// Combinations returns every r-element subset of {0, ..., n-1}. Indices
// within a combination are increasing and combinations come out in
// lexicographic order. r == 0 yields one empty combination.
func Combinations(n, r int) [][]int {
	var combos [][]int
	EachCombination(n, r, func(c []int) bool {
		combo := make([]int, len(c))
		copy(combo, c)
		combos = append(combos, combo)

		return true
	})

	return combos
}

// EachCombination calls fn for every r-element subset of {0, ..., n-1}.
// The slice handed to fn is reused between calls. Returning false from fn
// stops the walk.
func EachCombination(n, r int, fn func([]int) bool) {
	if n < 0 || r < 0 || r > n {
		return
	}

	w := &combinationWalker{data: make([]int, r), end: n - 1, fn: fn}
	w.choose(0, 0)
}

type combinationWalker struct {
	data    []int
	end     int
	fn      func([]int) bool
	stopped bool
}

// choose either takes start as the next index or skips it.
func (w *combinationWalker) choose(start, index int) {
	if w.stopped {
		return
	}

	if index == len(w.data) {
		w.stopped = !w.fn(w.data)
		return
	}

	if start > w.end {
		return
	}

	w.data[index] = start
	w.choose(start+1, index+1)
	w.choose(start+1, index)
}

// Binomial returns C(n, r), or 0 when r is outside [0, n].
func Binomial(n, r int) int {
	if r < 0 || n < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}

	c := 1
	for i := 1; i <= r; i++ {
		c = c * (n - r + i) / i
	}

	return c
}
