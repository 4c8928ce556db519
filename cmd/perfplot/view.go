package main

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dinnycodes/Abelian-Sandpile/src/perf"
)

// showChart opens a window with img scaled to fit and blocks until it is closed.
func showChart(img image.Image, title string) {
	a := app.NewWithID("com.sandpile.perfplot")
	w := a.NewWindow(title)

	b := img.Bounds()
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))

	status := widget.NewLabel("Saved " + perf.SerialChartFile)
	closeBtn := widget.NewButton("Close", func() { w.Close() })
	footer := container.NewBorder(nil, nil, nil, closeBtn, status)

	w.SetContent(container.NewBorder(nil, footer, nil, nil, ci))
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())+48))
	w.ShowAndRun()
}
