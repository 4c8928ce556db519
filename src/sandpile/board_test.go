package sandpile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinnycodes/Abelian-Sandpile/src/board"
)

func TestNew_InvalidSize(t *testing.T) {
	_, err := New(0, 3)
	assert.Error(t, err)
	_, err = New(3, -1)
	assert.Error(t, err)
}

func TestFromRows(t *testing.T) {
	b, err := FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 4, b.At(1, 1))
	assert.Equal(t, 10, b.Grains())
	assert.False(t, b.Stable())

	_, err = FromRows([][]int{{1, 2}, {3}})
	assert.Error(t, err)
	_, err = FromRows(nil)
	assert.Error(t, err)
}

func TestClone_IsIndependent(t *testing.T) {
	b, err := FromRows([][]int{{1, 2}})
	require.NoError(t, err)
	c := b.Clone()
	c.Set(0, 0, 9)
	assert.Equal(t, 1, b.At(0, 0))
	assert.False(t, b.Equal(c))
	assert.False(t, b.Equal(nil))
}

func TestWriteBoard_Format(t *testing.T) {
	b, err := FromRows([][]int{{0, 3, 0}, {3, 0, 3}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteBoard(&buf, b))
	assert.Equal(t, "0 3 0 \n3 0 3 \n", buf.String())
}

func TestPrintBoard_Format(t *testing.T) {
	b, err := FromRows([][]int{{1, 2}, {3, 0}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, PrintBoard(&buf, b))
	assert.Equal(t, "[ 1 , 2 ]\n[ 3 , 0 ]\n\n", buf.String())
}

func TestSaveBoard_RoundTripsThroughRenderer(t *testing.T) {
	b := filled(t, 9, 5, 4)
	_, err := Stabilize(context.Background(), b, Async, 0)
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), board.DefaultInput)
	require.NoError(t, SaveBoard(p, b))

	g, err := board.Load(p)
	require.NoError(t, err)
	h, w := g.Dims()
	require.Equal(t, 5, h)
	require.Equal(t, 9, w)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			assert.Equal(t, b.At(i, j), g.At(i, j))
		}
	}
}

func TestSaveBoard_BadPath(t *testing.T) {
	err := SaveBoard(filepath.Join(t.TempDir(), "missing", "board.txt"), filled(t, 1, 1, 0))
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, os.IsNotExist(statErr))
}
