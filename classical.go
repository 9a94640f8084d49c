package qlife

/*
Board is a toroidal grid of 0/1 cells: the classical half of the system.
It backs the plain Game of Life rule, the ground-truth trajectories the
search chases, and the reversible-lab registers.

Cells live in a flat row-major slice. Neighbor lookups wrap on both
axes, negative offsets included.
*/
type Board struct {
	h, w  int
	cells []int
}

// NewBoard returns an all-dead board of the given dimensions.
func NewBoard(h, w int) *Board {
	return &Board{h: h, w: w, cells: make([]int, h*w)}
}

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Get returns the cell at (y, x), wrapping both coordinates.
func (b *Board) Get(y, x int) int {
	return b.cells[b.index(y, x)]
}

// Set writes the cell at (y, x), wrapping both coordinates. Any nonzero
// value is stored as 1.
func (b *Board) Set(y, x, v int) {
	if v != 0 {
		v = 1
	}
	b.cells[b.index(y, x)] = v
}

// Toggle flips the cell at (y, x).
func (b *Board) Toggle(y, x int) {
	i := b.index(y, x)
	b.cells[i] = 1 - b.cells[i]
}

func (b *Board) index(y, x int) int {
	y = ((y % b.h) + b.h) % b.h
	x = ((x % b.w) + b.w) % b.w
	return y*b.w + x
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := NewBoard(b.h, b.w)
	copy(out.cells, b.cells)
	return out
}

// Clear kills every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// IsZero reports whether every cell is dead.
func (b *Board) IsZero() bool {
	for _, c := range b.cells {
		if c != 0 {
			return false
		}
	}
	return true
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		n += c
	}
	return n
}

// Flips counts cells that differ between b and prev. Boards of unequal
// dimensions share no cells, so everything counts as flipped.
func (b *Board) Flips(prev *Board) int {
	if prev == nil || prev.h != b.h || prev.w != b.w {
		return b.h * b.w
	}
	n := 0
	for i, c := range b.cells {
		if c != prev.cells[i] {
			n++
		}
	}
	return n
}

// Step applies one generation of Conway's rule and returns the new
// board. The receiver is read-only during the step: every cell of the
// output is computed from the frozen input, so simultaneous-update
// semantics hold.
func (b *Board) Step() *Board {
	next := NewBoard(b.h, b.w)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					neighbors += b.Get(y+dy, x+dx)
				}
			}
			alive := b.Get(y, x) == 1
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				next.cells[y*b.w+x] = 1
			}
		}
	}
	return next
}

// LoadPattern clears the board and stamps a 0/1 pattern centered on it.
// Rows may be ragged; missing cells read as dead. Pattern cells landing
// outside the board wrap around.
func (b *Board) LoadPattern(pattern [][]int) {
	b.Clear()
	if len(pattern) == 0 {
		return
	}
	ph := len(pattern)
	pw := 0
	for _, row := range pattern {
		if len(row) > pw {
			pw = len(row)
		}
	}
	oy := (b.h - ph) / 2
	ox := (b.w - pw) / 2
	for y, row := range pattern {
		for x, v := range row {
			if v != 0 {
				b.Set(oy+y, ox+x, 1)
			}
		}
	}
}

// LoadRandom clears the board and sets each cell alive when the next
// draw exceeds threshold. The draw function supplies values in [0, 1).
func (b *Board) LoadRandom(draw func() float64, threshold float64) {
	for i := range b.cells {
		if draw() > threshold {
			b.cells[i] = 1
		} else {
			b.cells[i] = 0
		}
	}
}

// XOR folds other into the board cell-wise. Both boards must share
// dimensions; mismatched input is ignored.
func (b *Board) XOR(other *Board) {
	if other == nil || other.h != b.h || other.w != b.w {
		return
	}
	for i := range b.cells {
		b.cells[i] ^= other.cells[i]
	}
}
