package sandpile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteBoard writes one line per row, each cell followed by a single space.
func WriteBoard(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16)
	for i := 0; i < b.Height; i++ {
		for j := 0; j < b.Width; j++ {
			buf = strconv.AppendInt(buf[:0], int64(b.At(i, j)), 10)
			buf = append(buf, ' ')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveBoard writes b to path, replacing any existing file.
func SaveBoard(path string, b *Board) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := WriteBoard(f, b); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// PrintBoard writes a human readable dump: "[ 1 , 2 , 3 ]" per row and a trailing blank line.
func PrintBoard(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < b.Height; i++ {
		bw.WriteString("[")
		for j := 0; j < b.Width; j++ {
			fmt.Fprintf(bw, " %d ", b.At(i, j))
			if j < b.Width-1 {
				bw.WriteString(",")
			}
		}
		bw.WriteString("]\n")
	}
	bw.WriteString("\n")
	return bw.Flush()
}
