// Package sandpile implements the Abelian sandpile model on a finite grid.
//
// A cell holding Threshold or more grains topples: it sends value/Threshold
// grains to each of its four orthogonal neighbors and keeps the remainder.
// Grains pushed past the border are lost, so every board eventually
// stabilizes with all cells below Threshold. The stable configuration does
// not depend on toppling order, which lets the strategies in this package
// be compared directly.
package sandpile

import "fmt"

// Threshold is the grain count at which a cell topples.
const Threshold = 4

// Board is a Width x Height grid of grain counts stored row-major.
type Board struct {
	Width  int
	Height int
	cells  []int
}

// New returns an empty board. Both dimensions must be positive.
func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sandpile: invalid board size %dx%d", width, height)
	}
	return &Board{Width: width, Height: height, cells: make([]int, width*height)}, nil
}

// FromRows builds a board from rectangular rows.
func FromRows(rows [][]int) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("sandpile: no rows")
	}
	b, err := New(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != b.Width {
			return nil, fmt.Errorf("sandpile: row %d has %d cells, expected %d", i, len(r), b.Width)
		}
		copy(b.cells[i*b.Width:], r)
	}
	return b, nil
}

// Fill sets every cell to v.
func (b *Board) Fill(v int) {
	for i := range b.cells {
		b.cells[i] = v
	}
}

func (b *Board) At(row, col int) int     { return b.cells[row*b.Width+col] }
func (b *Board) Set(row, col int, v int) { b.cells[row*b.Width+col] = v }

// Stable reports whether no cell can topple.
func (b *Board) Stable() bool {
	for _, v := range b.cells {
		if v >= Threshold {
			return false
		}
	}
	return true
}

// Grains returns the total number of grains on the board.
func (b *Board) Grains() int {
	n := 0
	for _, v := range b.cells {
		n += v
	}
	return n
}

// Rows returns a copy of the board as a slice of rows.
func (b *Board) Rows() [][]int {
	out := make([][]int, b.Height)
	for i := range out {
		out[i] = append([]int(nil), b.cells[i*b.Width:(i+1)*b.Width]...)
	}
	return out
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	return &Board{Width: b.Width, Height: b.Height, cells: append([]int(nil), b.cells...)}
}

// Equal reports whether both boards have the same size and cells.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.Width != o.Width || b.Height != o.Height {
		return false
	}
	for i, v := range b.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}
