package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/motion/internal/engine/text"
)

// DefaultTabWidth is the display width of a tab stop.
const DefaultTabWidth = 4

// Styles used by the view.
var (
	StyleText      = tcell.StyleDefault
	StyleSelection = tcell.StyleDefault.Reverse(true)
	StyleCursor    = tcell.StyleDefault.Underline(true).Reverse(true)
	StyleStatus    = tcell.StyleDefault.Bold(true).Reverse(true)
)

// Document is what the view renders.
type Document interface {
	text.Document
	Selections() []text.Selection
}

// View draws a document on a screen. The last row is the status line.
type View struct {
	// Top is the first document line on screen.
	Top      int
	TabWidth int
}

// Columns returns the display column at which each character of line
// starts, plus one trailing entry for the position past the last character.
// Grapheme clusters share the column of their first rune.
func Columns(line string, tabWidth int) []int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	cols := make([]int, 0, len(line)+1)
	col := 0

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		runes := g.Runes()
		for range runes {
			cols = append(cols, col)
		}
		if len(runes) == 1 && runes[0] == '\t' {
			col += tabWidth - col%tabWidth
			continue
		}
		col += g.Width()
	}
	return append(cols, col)
}

// DisplayColumn returns the display column of character in line.
func DisplayColumn(line string, character, tabWidth int) int {
	cols := Columns(line, tabWidth)
	if character < 0 {
		return 0
	}
	if character >= len(cols) {
		return cols[len(cols)-1]
	}
	return cols[character]
}

// Scroll adjusts Top so that line is visible in a text area of rows rows.
func (v *View) Scroll(line, rows int) {
	if rows <= 0 {
		return
	}
	if line < v.Top {
		v.Top = line
	}
	if line >= v.Top+rows {
		v.Top = line - rows + 1
	}
	if v.Top < 0 {
		v.Top = 0
	}
}

// Draw renders doc and the status text, then places the terminal cursor on
// the active end of the first selection.
func (v *View) Draw(s tcell.Screen, doc Document, status string) {
	width, height := s.Size()
	rows := height - 1
	sels := doc.Selections()

	s.Clear()

	if len(sels) > 0 {
		v.Scroll(sels[0].Active.Line, rows)
	}
	for row := 0; row < rows; row++ {
		line := v.Top + row
		if line >= doc.LineCount() {
			break
		}
		v.drawLine(s, row, width, line, doc.LineText(line), sels)
	}
	drawStatus(s, height-1, width, status)

	if len(sels) == 0 {
		s.HideCursor()
		return
	}
	p := sels[0].Active
	if p.Line < v.Top || p.Line >= v.Top+rows {
		s.HideCursor()
		return
	}
	s.ShowCursor(DisplayColumn(doc.LineText(p.Line), p.Character, v.TabWidth), p.Line-v.Top)
}

func (v *View) drawLine(s tcell.Screen, row, width, line int, content string, sels []text.Selection) {
	cols := Columns(content, v.TabWidth)
	runes := []rune(content)

	for ch, r := range runes {
		x := cols[ch]
		if x >= width {
			break
		}
		style := cellStyle(text.Pos(line, ch), sels)
		if r == '\t' {
			for tx := x; tx < cols[ch+1] && tx < width; tx++ {
				s.SetContent(tx, row, ' ', nil, style)
			}
			continue
		}
		if ch > 0 && cols[ch-1] == x {
			// Continuation of a grapheme cluster drawn with its first rune.
			continue
		}
		var combining []rune
		for next := ch + 1; next < len(runes) && cols[next] == x; next++ {
			combining = append(combining, runes[next])
		}
		s.SetContent(x, row, r, combining, style)
	}

	// A cursor at the end of the line gets a visible cell.
	end := text.Pos(line, len(runes))
	if x := cols[len(runes)]; x < width && isSecondaryCursor(end, sels) {
		s.SetContent(x, row, ' ', nil, StyleCursor)
	}
}

func cellStyle(p text.Position, sels []text.Selection) tcell.Style {
	if isSecondaryCursor(p, sels) {
		return StyleCursor
	}
	for _, sel := range sels {
		r := sel.Range()
		if !r.IsEmpty() && !p.Before(r.Start) && p.Before(r.End) {
			return StyleSelection
		}
	}
	return StyleText
}

// isSecondaryCursor reports whether p is the active end of any selection but
// the first, which is shown by the terminal cursor.
func isSecondaryCursor(p text.Position, sels []text.Selection) bool {
	for i := 1; i < len(sels); i++ {
		if sels[i].Active == p {
			return true
		}
	}
	return false
}

func drawStatus(s tcell.Screen, row, width int, status string) {
	if row < 0 {
		return
	}
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		s.SetContent(x, row, r, nil, StyleStatus)
		x += uniseg.StringWidth(string(r))
	}
	for ; x < width; x++ {
		s.SetContent(x, row, ' ', nil, StyleStatus)
	}
}
