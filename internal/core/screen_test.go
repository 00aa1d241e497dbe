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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(6, 6, Cell{Rune: '#', Color: ColorGreen})
	if c := s.GetCell(6, 6); c.Rune != '#' || c.Color != ColorGreen {
		t.Errorf("GetCell(6, 6) = %+v, expected green '#'", c)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, Cell{Rune: 'A'})
	s.SetCell(100, 0, Cell{Rune: 'A'})
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})

	if s.GetCell(-1, 0) != blankCell || s.GetCell(100, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorRed)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenClearRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawRect(NewRect(0, 0, 6, 6), 'X', ColorRed)
	s.ClearRect(NewRect(1, 1, 2, 2))

	if s.GetCell(1, 1).Rune != ' ' || s.GetCell(2, 2).Rune != ' ' {
		t.Error("ClearRect should blank the region")
	}
	if s.GetCell(0, 0).Rune != 'X' || s.GetCell(3, 3).Rune != 'X' {
		t.Error("ClearRect should not touch outside cells")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorDefault)

	expected := "Hello"
	for i, ch := range expected {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(1, 0, "Win", ColorWhite)

	if c := s.GetCell(2, 0); c.Rune != 'i' || c.Color != ColorWhite {
		t.Errorf("DrawText should write colored cells, got %+v", c)
	}
	if s.GetCell(0, 0) != blankCell {
		t.Error("DrawText should not touch cells before x")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorBlue)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Rune != '#' || c.Color != ColorBlue {
				t.Errorf("DrawRect: expected blue '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	if s.GetCell(1, 1).Rune != ' ' || s.GetCell(5, 5).Rune != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	tests := []struct {
		name  string
		style BoxStyle
		tl    rune
		br    rune
		h, v  rune
	}{
		{"light", BoxLight, '┌', '┘', '─', '│'},
		{"heavy", BoxHeavy, '┏', '┛', '━', '┃'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			s.DrawBox(NewRect(1, 1, 5, 4), tc.style, ColorRed)

			if s.GetCell(1, 1).Rune != tc.tl {
				t.Errorf("Top-left corner should be %q, got %q", tc.tl, s.GetCell(1, 1).Rune)
			}
			if s.GetCell(5, 4).Rune != tc.br {
				t.Errorf("Bottom-right corner should be %q, got %q", tc.br, s.GetCell(5, 4).Rune)
			}
			for x := 2; x < 5; x++ {
				if s.GetCell(x, 1).Rune != tc.h || s.GetCell(x, 4).Rune != tc.h {
					t.Errorf("Horizontal edge should be %q at x=%d", tc.h, x)
				}
			}
			for y := 2; y < 4; y++ {
				if s.GetCell(1, y).Rune != tc.v || s.GetCell(5, y).Rune != tc.v {
					t.Errorf("Vertical edge should be %q at y=%d", tc.v, y)
				}
			}
			if s.GetCell(1, 1).Color != ColorRed {
				t.Error("Box should carry its color")
			}
			if s.GetCell(3, 2).Rune != ' ' {
				t.Error("Box interior should stay empty")
			}
		})
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)
	s.DrawText(0, 5, "World", ColorDefault)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := strings.Split(s.String(), "\n")[0]
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = strings.Split(s.String(), "\n")[0]
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}
