package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Rectangular(t *testing.T) {
	g, err := Parse(strings.NewReader("0 1 2 \n3 7 -1 \n"))
	require.NoError(t, err)
	h, w := g.Dims()
	assert.Equal(t, 2, h)
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, g.At(0, 2))
	assert.Equal(t, 7, g.At(1, 1))
	assert.Equal(t, -1, g.At(1, 2))
}

func TestParse_SkipsBlankAndCommentLines(t *testing.T) {
	g, err := Parse(strings.NewReader("# header\n\n1\t2\n\n3   0\n"))
	require.NoError(t, err)
	h, w := g.Dims()
	assert.Equal(t, 2, h)
	assert.Equal(t, 2, w)
	assert.Equal(t, 3, g.At(1, 0))
}

func TestParse_SingleRow(t *testing.T) {
	g, err := Parse(strings.NewReader("1 2 3\n"))
	require.NoError(t, err)
	h, w := g.Dims()
	assert.Equal(t, 1, h)
	assert.Equal(t, 3, w)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
	}{
		{"ragged", "0 1\n2\n", 2},
		{"float", "0 1\n2 3.5\n", 2},
		{"word", "x 1\n", 1},
		{"ragged after blank", "0 1\n\n1 2 3\n", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(c.in))
			var fe *FormatError
			require.True(t, errors.As(err, &fe), "expected FormatError, got %v", err)
			assert.Equal(t, c.line, fe.Line)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Parse(strings.NewReader("\n# only a comment\n\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNewGrid_Validation(t *testing.T) {
	_, err := NewGrid(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = NewGrid([][]int{{}})
	var fe *FormatError
	assert.True(t, errors.As(err, &fe))

	_, err = NewGrid([][]int{{1, 2}, {3}})
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, 2, fe.Line)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir() + "/missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open board")
}
