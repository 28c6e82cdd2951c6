package termui

import (
	"classicsnake/internal/game"

	"github.com/gdamore/tcell/v2"
)

// cellWriter is the part of tcell.Screen the renderer needs.
type cellWriter interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

const (
	fieldTop  = 1 // row 0 holds the status line
	fieldLeft = 0
	cellCols  = 2 // terminal columns per field cell
)

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorGray).Bold(true)
	styleHead    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBody    = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleFood    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleInfo    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// fieldCells returns the field size in grid cells.
func fieldCells(s *game.State) (cols, rows int) {
	w, h := s.FieldSize()
	u := s.Snake().Unit()
	return w / u, h / u
}

// screenSize is the terminal area needed for the field, its border and the status line.
func screenSize(s *game.State) (width, height int) {
	cols, rows := fieldCells(s)
	return fieldLeft + cols*cellCols + 2, fieldTop + rows + 2
}

func putString(w cellWriter, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		w.SetContent(x, y, r, nil, style)
		x++
	}
}

// putCell draws one field cell at pixel position (px, py).
func putCell(w cellWriter, s *game.State, px, py int, r rune, style tcell.Style) {
	u := s.Snake().Unit()
	cols, rows := fieldCells(s)
	cx, cy := px/u, py/u
	if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
		return
	}
	x := fieldLeft + 1 + cx*cellCols
	y := fieldTop + 1 + cy
	for i := 0; i < cellCols; i++ {
		w.SetContent(x+i, y, r, nil, style)
	}
}

// draw renders the state without modifying it.
func draw(w cellWriter, s *game.State) {
	cols, rows := fieldCells(s)
	width, height := screenSize(s)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			w.SetContent(x, y, ' ', nil, styleDefault)
		}
	}
	putString(w, 0, 0, s.StatusLine(), styleStatus)

	right := fieldLeft + cols*cellCols + 1
	bottom := fieldTop + rows + 1
	for x := fieldLeft + 1; x < right; x++ {
		w.SetContent(x, fieldTop, tcell.RuneHLine, nil, styleBorder)
		w.SetContent(x, bottom, tcell.RuneHLine, nil, styleBorder)
	}
	for y := fieldTop + 1; y < bottom; y++ {
		w.SetContent(fieldLeft, y, tcell.RuneVLine, nil, styleBorder)
		w.SetContent(right, y, tcell.RuneVLine, nil, styleBorder)
	}
	w.SetContent(fieldLeft, fieldTop, tcell.RuneULCorner, nil, styleBorder)
	w.SetContent(right, fieldTop, tcell.RuneURCorner, nil, styleBorder)
	w.SetContent(fieldLeft, bottom, tcell.RuneLLCorner, nil, styleBorder)
	w.SetContent(right, bottom, tcell.RuneLRCorner, nil, styleBorder)

	f := s.Food()
	putCell(w, s, f.X, f.Y, '●', styleFood)

	sn := s.Snake()
	for i := sn.Len() - 1; i >= 1; i-- {
		seg, _ := sn.SectorAt(i)
		putCell(w, s, seg.X, seg.Y, '█', styleBody)
	}
	if head, ok := sn.HeadSector(); ok {
		putCell(w, s, head.X, head.Y, '█', styleHead)
	}

	lines := s.Overlay()
	startY := fieldTop + 1 + (rows-len(lines))/2
	for i, line := range lines {
		x := (width - len(line)) / 2
		if x < 0 {
			x = 0
		}
		putString(w, x, startY+i, line, styleInfo)
	}
}
