package board

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Scale is the number of output pixels per grid cell along each axis.
const Scale = 10

var colorTable = map[int]color.RGBA{
	0: {R: 0, G: 0, B: 0, A: 255},   // black
	1: {R: 0, G: 255, B: 0, A: 255}, // green
	2: {R: 0, G: 0, B: 255, A: 255}, // blue
	3: {R: 255, G: 0, B: 0, A: 255}, // red
}

// Fallback is the color of any value missing from the color table.
var Fallback = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// ColorFor returns the block color for a cell value.
func ColorFor(v int) color.RGBA {
	if c, ok := colorTable[v]; ok {
		return c
	}
	return Fallback
}

// Render paints g into a new image of (width*Scale) x (height*Scale) pixels.
func Render(g Grid) *image.RGBA {
	h, w := g.Dims()
	// One pixel per cell first; nearest-neighbor scaling by an integer factor
	// then yields uniform Scale x Scale blocks.
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			src.SetRGBA(j, i, ColorFor(g.At(i, j)))
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w*Scale, h*Scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Save writes img to path as PNG, replacing any existing file.
func Save(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	bw := bufio.NewWriter(f)
	if err := png.Encode(bw, img); err != nil {
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderFile loads the board at in, renders it and saves the PNG to out.
func RenderFile(in, out string) (image.Rectangle, error) {
	g, err := Load(in)
	if err != nil {
		return image.Rectangle{}, err
	}
	img := Render(g)
	if err := Save(out, img); err != nil {
		return image.Rectangle{}, err
	}
	return img.Bounds(), nil
}
