package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorYellow)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorYellow {
		t.Errorf("GetCell(5, 5) = %+v, expected yellow 'X'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorRed)
	s.Set(100, 0, 'A', ColorRed)
	s.Set(0, -1, 'A', ColorRed)
	s.Set(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', ColorGreen)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorBrightWhite)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "█▀x", ColorDefault)

	if s.Get(2, 0) != 'x' {
		t.Errorf("multibyte runes should take one cell each, got row %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorGreen {
				t.Errorf("FillRect: expected green '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-', ColorBrown)

	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, s.Get(x, 2))
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorRed)
	s.DrawText(0, 2, "CCCCC", ColorGreen)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.Row(0)) != "" {
		t.Errorf("Resize should clear the screen, row 0 = %q", s.Row(0))
	}

	// Same size is a no-op
	s.DrawText(0, 0, "Hi", ColorDefault)
	s.Resize(8, 4)
	if !strings.HasPrefix(s.Row(0), "Hi") {
		t.Errorf("Resize to same size should keep content, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorDefault)

	if row := s.Row(2); row != "Test      " {
		t.Errorf("Row(2) = %q, expected %q", row, "Test      ")
	}
	if row := s.Row(-1); row != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", row)
	}
}
