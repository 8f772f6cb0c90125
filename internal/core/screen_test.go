package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(GridWidth, GridHeight)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 25 {
		t.Errorf("Height() = %d, expected 25", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '$', ColorPlayer1)
	cell := s.GetCell(5, 5)
	if cell.Rune != '$' || cell.Color != ColorPlayer1 {
		t.Errorf("GetCell(5, 5) = %+v, expected {'$' ColorPlayer1}", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawFrame(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawFrame(NewRect(0, 0, 5, 3), ColorLegend)

	expected := []string{
		"+---+     ",
		"|   |     ",
		"+---+     ",
	}
	for y, row := range expected {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "xyz")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 || lines[0] != "abc" || lines[1] != "xyz" {
		t.Errorf("String() = %q, expected \"abc\\nxyz\"", s.String())
	}
}
