package qlife

import "math/rand"

/*
Grid is the quantum counterpart of Board: a toroidal field of
independent two-amplitude cells. A step never mutates a grid in place;
the engine computes a full replacement from a frozen snapshot, so
renderers may hold a reference to the previous grid safely.
*/
type Grid struct {
	h, w  int
	cells []Qubit
}

// NewGrid returns a grid with every cell in the |0⟩ state.
func NewGrid(h, w int) *Grid {
	g := &Grid{h: h, w: w, cells: make([]Qubit, h*w)}
	for i := range g.cells {
		g.cells[i] = Zero()
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// At returns the cell at (y, x), wrapping both coordinates.
func (g *Grid) At(y, x int) Qubit {
	return g.cells[g.index(y, x)]
}

// SetAt writes the cell at (y, x), wrapping both coordinates.
func (g *Grid) SetAt(y, x int, q Qubit) {
	g.cells[g.index(y, x)] = q
}

func (g *Grid) index(y, x int) int {
	y = ((y % g.h) + g.h) % g.h
	x = ((x % g.w) + g.w) % g.w
	return y*g.w + x
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{h: g.h, w: g.w, cells: make([]Qubit, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// NeighborSum adds the eight toroidal neighbors of (y, x) component-wise.
// The sum is deliberately left unnormalized; the engine applies the
// neighbor operator to the raw superposition.
func (g *Grid) NeighborSum(y, x int) Qubit {
	var sum Qubit
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			sum = sum.Add(g.At(y+dy, x+dx))
		}
	}
	return sum
}

// Translate returns a copy shifted by (dy, dx) with toroidal wrap: the
// cell at (y, x) moves to (y+dy, x+dx).
func (g *Grid) Translate(dy, dx int) *Grid {
	out := NewGrid(g.h, g.w)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			out.SetAt(y+dy, x+dx, g.At(y, x))
		}
	}
	return out
}

// LoadPattern clears the grid and stamps a 0/1 pattern centered on it,
// alive cells becoming |1⟩.
func (g *Grid) LoadPattern(pattern [][]int) {
	board := NewBoard(g.h, g.w)
	board.LoadPattern(pattern)
	g.loadBoard(board)
}

// LoadRandom clears the grid and sets each cell to |1⟩ when the next
// draw exceeds threshold.
func (g *Grid) LoadRandom(rng *rand.Rand, threshold float64) {
	board := NewBoard(g.h, g.w)
	board.LoadRandom(rng.Float64, threshold)
	g.loadBoard(board)
}

// LoadEmpty resets every cell to |0⟩.
func (g *Grid) LoadEmpty() {
	for i := range g.cells {
		g.cells[i] = Zero()
	}
}

func (g *Grid) loadBoard(b *Board) {
	for i, c := range b.cells {
		if c == 1 {
			g.cells[i] = One()
		} else {
			g.cells[i] = Zero()
		}
	}
}

// FromClassical lifts a board into a quantum grid: alive cells become
// |1⟩, dead cells |0⟩.
func FromClassical(b *Board) *Grid {
	g := NewGrid(b.h, b.w)
	g.loadBoard(b)
	return g
}

// Classical projects the grid onto a board by thresholding each cell's
// basis-1 probability at one half.
func (g *Grid) Classical() *Board {
	b := NewBoard(g.h, g.w)
	for i, q := range g.cells {
		if q.Probability() >= 0.5 {
			b.cells[i] = 1
		}
	}
	return b
}
