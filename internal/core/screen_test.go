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
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	// Should all be spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 2, "abcdefg")
	s.DrawRect(NewRect(2, 2, 3, 3), ' ')

	if got := s.Get(1, 2); got != 'b' {
		t.Errorf("DrawRect should not affect outside area, got %q", got)
	}
	for x := 2; x < 5; x++ {
		if got := s.Get(x, 2); got != ' ' {
			t.Errorf("DrawRect: expected ' ' at (%d, 2), got %q", x, got)
		}
	}
	if got := s.Get(5, 2); got != 'f' {
		t.Errorf("DrawRect should not affect outside area, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

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

func TestScreenCellColors(t *testing.T) {
	s := NewScreen(10, 3)
	bg := RGB{R: 30, G: 60, B: 90}

	s.SetBg(1, 1, bg)
	s.Set(1, 1, 'x')
	s.DrawTextColored(0, 0, "ab", ColorCyan)

	cell := s.GetCell(1, 1)
	if !cell.HasBg || cell.Bg != bg {
		t.Errorf("Set should keep the background, got %+v", cell)
	}
	if cell.Rune != 'x' {
		t.Errorf("expected 'x', got %q", cell.Rune)
	}
	if s.GetCell(1, 0).Color != ColorCyan {
		t.Errorf("expected cyan foreground, got %v", s.GetCell(1, 0).Color)
	}

	s.Clear()
	if s.GetCell(1, 1).HasBg {
		t.Error("Clear should drop backgrounds")
	}
}

func TestRGBBlend(t *testing.T) {
	base := RGB{R: 0, G: 0, B: 0}
	over := RGB{R: 200, G: 100, B: 50}

	if got := base.Blend(over, 0); got != base {
		t.Errorf("Blend with alpha 0 = %+v, expected %+v", got, base)
	}
	if got := base.Blend(over, 1); got != over {
		t.Errorf("Blend with alpha 1 = %+v, expected %+v", got, over)
	}
	if got := (RGB{R: 255, G: 0, B: 16}).Hex(); got != "#ff0010" {
		t.Errorf("Hex() = %q", got)
	}
}
