package termio

import (
	"io"
	"strings"

	"github.com/consensys/go-grid/pkg/grid"
)

// Cell is a single character on a canvas, along with the escape used to
// format it.  An empty escape means the cell is rendered plainly.
type Cell struct {
	Char   rune
	Escape string
}

// Canvas is a rectangular drawing surface for character output, backed by a
// dense cell grid.  Writes which fall outside the canvas are clipped
// silently, so callers can draw without worrying about the boundary.
type Canvas struct {
	cells *grid.Buffer[Cell]
}

// NewCanvas constructs a blank canvas of the given dimensions.
func NewCanvas(width uint, height uint) *Canvas {
	cells := grid.NewBufferWith(width, height, func(x uint, y uint) Cell {
		return Cell{' ', ""}
	})
	//
	return &Canvas{cells}
}

// GetDimensions returns the width and height of this canvas.
func (p *Canvas) GetDimensions() (uint, uint) {
	return p.cells.Width(), p.cells.Height()
}

// Write draws the given text at the given position using the given escape,
// clipping anything which falls outside the canvas.
func (p *Canvas) Write(x uint, y uint, text string, escape AnsiEscape) {
	var code string
	//
	if !escape.IsEmpty() {
		code = escape.Build()
	}
	//
	for _, char := range text {
		// Out-of-bounds writes are dropped
		p.cells.Set(x, y, Cell{char, code})
		x++
	}
}

// WriteGrid draws every cell of the given character grid at the given
// position, again clipping at the canvas boundary.
func (p *Canvas) WriteGrid(x uint, y uint, g grid.Grid[rune], escape AnsiEscape) {
	var code string
	//
	if !escape.IsEmpty() {
		code = escape.Build()
	}
	//
	for iter := grid.Iter[rune](g); iter.HasNext(); {
		char, dx, dy := iter.Next()
		p.cells.Set(x+dx, y+dy, Cell{char, code})
	}
}

// Fill assigns the given character to every cell of this canvas.
func (p *Canvas) Fill(char rune, escape AnsiEscape) {
	var code string
	//
	if !escape.IsEmpty() {
		code = escape.Build()
	}
	//
	grid.Fill[Cell](p.cells, Cell{char, code})
}

// Render writes this canvas out line by line, emitting escapes only where
// the formatting changes and resetting at the end of any formatted line.
func (p *Canvas) Render(out io.Writer) error {
	var (
		reset   = ResetAnsiEscape().Build()
		builder strings.Builder
	)
	//
	for rows := grid.Rows[Cell](p.cells); rows.HasNext(); {
		var (
			row    = rows.Next()
			active = ""
		)
		//
		builder.Reset()
		//
		for iter := row.Iter(); iter.HasNext(); {
			cell := iter.Next()
			// Switch escape on change
			if cell.Escape != active {
				if cell.Escape == "" {
					builder.WriteString(reset)
				} else {
					builder.WriteString(cell.Escape)
				}
				//
				active = cell.Escape
			}
			//
			builder.WriteRune(cell.Char)
		}
		// Leave the terminal in its default state
		if active != "" {
			builder.WriteString(reset)
		}
		//
		builder.WriteString("\n")
		//
		if _, err := io.WriteString(out, builder.String()); err != nil {
			return err
		}
	}
	//
	return nil
}
