package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D cell buffer the renderer draws snapshots into.
// It decouples drawing from the terminal, the platform turns it into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions and clears it.
// The whole frame is redrawn every tick so old content is not preserved.
func (s *Screen) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if width == s.width && height == s.height && s.cells != nil {
		return
	}

	s.width = width
	s.height = height
	s.cells = make([][]Cell, height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, width)
	}
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position, or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawText(x, y, text, c)
}

// FillRect fills a rectangular area with the given rune.
func (s *Screen) FillRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	s.Set(r.X, r.Y, '┌', c)
	s.Set(r.Right()-1, r.Y, '┐', c)
	s.Set(r.X, r.Bottom()-1, '└', c)
	s.Set(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─', c)
		s.Set(x, r.Bottom()-1, '─', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│', c)
		s.Set(r.Right()-1, y, '│', c)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r, c)
	}
}

// String converts the screen to plain text without colors, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of row y as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
