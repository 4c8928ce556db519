// Package board turns a sandpile board file into a color-coded raster image.
//
// A board file holds one row per line of whitespace separated integers, the
// format written by the sandpile simulator. Each cell becomes a Scale x Scale
// block of a single color in the output PNG; row index maps to the vertical
// axis and column index to the horizontal axis.
package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// DefaultInput and DefaultOutput are the fixed file names used by the renderer.
const (
	DefaultInput  = "board.txt"
	DefaultOutput = "output.png"
)

// ErrEmpty is returned when a board file contains no rows.
var ErrEmpty = errors.New("board: no rows")

// FormatError reports a malformed board file.
type FormatError struct {
	Line int // 1-based line number in the input
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("board: line %d: %s", e.Line, e.Msg)
}

// Grid is an immutable rectangular matrix of cell values.
type Grid struct {
	m *mat.Dense
}

// NewGrid builds a Grid from rows. All rows must have the same non-zero length.
func NewGrid(rows [][]int) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, ErrEmpty
	}
	w := len(rows[0])
	if w == 0 {
		return Grid{}, &FormatError{Line: 1, Msg: "row has no values"}
	}
	data := make([]float64, 0, len(rows)*w)
	for i, r := range rows {
		if len(r) != w {
			return Grid{}, &FormatError{Line: i + 1, Msg: fmt.Sprintf("row has %d values, expected %d", len(r), w)}
		}
		for _, v := range r {
			data = append(data, float64(v))
		}
	}
	return Grid{m: mat.NewDense(len(rows), w, data)}, nil
}

// Dims returns the number of rows (height) and columns (width).
func (g Grid) Dims() (height, width int) {
	if g.m == nil {
		return 0, 0
	}
	return g.m.Dims()
}

// At returns the value at row i, column j.
func (g Grid) At(i, j int) int {
	return int(g.m.At(i, j))
}

// Parse reads a board from r. Blank lines and lines starting with '#' are
// skipped. Any non-integer token or ragged row yields a *FormatError.
func Parse(r io.Reader) (Grid, error) {
	var rows [][]int
	width := -1
	lineNo := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]int, len(fields))
		for k, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return Grid{}, &FormatError{Line: lineNo, Msg: fmt.Sprintf("value %q is not an integer", f)}
			}
			row[k] = v
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return Grid{}, &FormatError{Line: lineNo, Msg: fmt.Sprintf("row has %d values, expected %d", len(row), width)}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return Grid{}, fmt.Errorf("read board: %w", err)
	}
	return NewGrid(rows)
}

// Load opens path and parses it as a board.
func Load(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return Grid{}, fmt.Errorf("open board: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
