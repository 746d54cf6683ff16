package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", got)
	}

	s.SetColored(4, 2, '#', ColorGreen)
	cell := s.GetCell(4, 2)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(4,2) = %+v, want '#' in green", cell)
	}

	// Out of bounds is silently ignored on write, blank on read
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(8, 4)
	s.DrawRect(NewRect(0, 0, 8, 4), '*', ColorRed)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) not cleared: %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText: row = %q", s.Row(1))
	}

	// Clipped text does not wrap
	s.DrawText(8, 0, "long")
	if s.Get(0, 1) == 'n' {
		t.Error("DrawText should clip, not wrap")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(1, "hi")

	// (10-2)/2 = 4
	if s.Get(4, 1) != 'h' || s.Get(5, 1) != 'i' {
		t.Errorf("DrawTextCentered: row = %q", s.Row(1))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'A')
	s.Set(9, 4, 'B')

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d, want 6x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("Resize should preserve content inside new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab")

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("String: got %d lines, want 2", len(lines))
	}
	if lines[0] != "ab  " {
		t.Errorf("String: first line %q", lines[0])
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(0, 9, 10, '═', ColorGray)
	s.DrawVLine(5, 0, 4, '█', ColorGreen)

	for x := 0; x < 10; x++ {
		if s.Get(x, 9) != '═' {
			t.Fatalf("HLine missing at x=%d", x)
		}
	}
	for y := 0; y < 4; y++ {
		if s.Get(5, y) != '█' {
			t.Fatalf("VLine missing at y=%d", y)
		}
	}
}
