package core

import "testing"

func TestCellCanvasCellRect(t *testing.T) {
	c := NewCellCanvas(NewScreen(45, 44), 450, 440)

	tests := []struct {
		name     string
		box      Box
		expected Rect
	}{
		{"whole world", NewBox(0, 0, 450, 440), NewRect(0, 0, 45, 44)},
		{"moving platform", NewBox(100, 300, 100, 10), NewRect(10, 30, 10, 1)},
		{"player", NewBox(50, 350, 32, 32), NewRect(5, 35, 3, 3)},
		{"thin box keeps one cell", NewBox(0, 0, 2, 1), NewRect(0, 0, 1, 1)},
		{"empty box stays empty", NewBox(10, 10, 0, 0), NewRect(1, 1, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.CellRect(tc.box)
			if got != tc.expected {
				t.Errorf("CellRect(%+v) = %+v, expected %+v", tc.box, got, tc.expected)
			}
		})
	}
}

func TestCellCanvasDrawing(t *testing.T) {
	s := NewScreen(45, 44)
	c := NewCellCanvas(s, 450, 440)

	c.FillRect(NewBox(100, 300, 100, 10), ColorGreen)
	if cell := s.GetCell(15, 30); cell.Rune != FillRune || cell.Color != ColorGreen {
		t.Errorf("FillRect should paint green fill cells, got %+v", cell)
	}

	c.StrokeRect(NewBox(0, 0, 450, 440), ColorGreen, 5)
	if s.GetCell(0, 0).Rune != '┏' || s.GetCell(44, 43).Rune != '┛' {
		t.Errorf("Thick StrokeRect should use heavy corners, got %q and %q", s.GetCell(0, 0).Rune, s.GetCell(44, 43).Rune)
	}

	c.StrokeRect(NewBox(0, 0, 450, 440), ColorRed, 1)
	if s.GetCell(0, 0).Rune != '┌' {
		t.Errorf("Thin StrokeRect should use light corners, got %q", s.GetCell(0, 0).Rune)
	}

	c.ClearRect(NewBox(0, 0, 450, 440))
	if s.GetCell(15, 30).Rune != ' ' || s.GetCell(0, 0).Rune != ' ' {
		t.Error("ClearRect over the world should blank every cell")
	}
}

func TestCellCanvasImplementsSurface(t *testing.T) {
	var _ Surface = NewCellCanvas(NewScreen(1, 1), 1, 1)
}
