package present

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/younwookim/tileforge/internal/raster"
)

// upper half block: foreground is the top pixel, background the bottom one
const halfBlock = '▀'

// Terminal draws canvases as half-block cells, two pixel rows per cell row.
// The last screen row is a status line.
type Terminal struct {
	screen tcell.Screen
	status string
}

// NewTerminal creates a presenter over an initialised screen
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// SetStatus replaces the status line text
func (t *Terminal) SetStatus(s string) {
	t.status = s
}

// PixelSize returns the canvas size that maps one pixel to each half cell
func (t *Terminal) PixelSize() (int, int) {
	cols, rows := t.screen.Size()
	return cols, max(rows-1, 0) * 2
}

// Present implements Presenter. The canvas is sampled nearest-neighbour to
// fill the screen above the status line.
func (t *Terminal) Present(c *raster.Canvas) error {
	cols, rows := t.screen.Size()
	pxRows := (rows - 1) * 2
	if cols <= 0 || pxRows <= 0 || c.W == 0 || c.H == 0 {
		t.screen.Show()
		return nil
	}

	for cy := 0; cy < rows-1; cy++ {
		top := (2 * cy) * c.H / pxRows
		bot := (2*cy + 1) * c.H / pxRows
		for cx := 0; cx < cols; cx++ {
			sx := cx * c.W / cols
			st := tcell.StyleDefault.
				Foreground(cellColor(c.At(sx, top))).
				Background(cellColor(c.At(sx, bot)))
			t.screen.SetContent(cx, cy, halfBlock, nil, st)
		}
	}
	t.drawStatus(cols, rows-1)
	t.screen.Show()
	return nil
}

func (t *Terminal) drawStatus(cols, y int) {
	line := runewidth.Truncate(t.status, cols, "…")
	st := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		t.screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
	for ; x < cols; x++ {
		t.screen.SetContent(x, y, ' ', nil, st)
	}
}

func cellColor(p raster.Color) tcell.Color {
	return tcell.NewRGBColor(int32(p.R()), int32(p.G()), int32(p.B()))
}
