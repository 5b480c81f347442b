package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)
	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("size = %dx%d, want 40x12", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if got := s.GetCell(x, y); got != (Cell{Rune: ' '}) {
				t.Fatalf("cell (%d,%d) = %+v, want blank", x, y, got)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, want empty", s.String())
	}
}

func TestScreenSetGetBounds(t *testing.T) {
	s := NewScreen(8, 4)
	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, want 'X'", got)
	}

	for _, p := range [][2]int{{-1, 0}, {8, 0}, {0, -1}, {0, 4}} {
		s.Set(p[0], p[1], 'A')
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, want space", p[0], p[1], got)
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 2)
	s.SetColored(1, 0, '#', ColorOrange)
	if got := s.GetCell(1, 0); got != (Cell{Rune: '#', Color: ColorOrange}) {
		t.Errorf("GetCell(1, 0) = %+v", got)
	}

	s.DrawTextColored(2, 1, "2048", ColorBrightMagenta)
	for i, r := range "2048" {
		got := s.GetCell(2+i, 1)
		if got.Rune != r || got.Color != ColorBrightMagenta {
			t.Errorf("cell %d = %+v, want %q in magenta", i, got, r)
		}
	}

	s.Set(1, 0, '.')
	if got := s.GetCell(1, 0).Color; got != ColorDefault {
		t.Errorf("Set should reset color, got %v", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawRect(NewRect(0, 0, 6, 3), 'X')
	s.SetColored(0, 0, 'Y', ColorRed)
	s.Clear()
	if got := s.String(); got != strings.Repeat(" ", 6)+"\n"+strings.Repeat(" ", 6)+"\n"+strings.Repeat(" ", 6) {
		t.Errorf("after Clear, String() = %q", got)
	}
	if got := s.GetCell(0, 0).Color; got != ColorDefault {
		t.Errorf("after Clear, color = %v", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawText(2, 1, "Score")
	if got := s.Row(1); got != "  Score     " {
		t.Errorf("Row(1) = %q", got)
	}

	s.DrawText(10, 0, "Best")
	if got := s.Row(0); got != "          Be" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi")
	if s.Get(9, 1) != 'H' || s.Get(10, 1) != 'i' {
		t.Errorf("Row(1) = %q, want Hi at column 9", s.Row(1))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawRect(NewRect(1, 1, 3, 2), '#')

	want := []string{
		"      ",
		" ###  ",
		" ###  ",
		"      ",
	}
	for y, w := range want {
		if got := s.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 1, 5, 4))

	want := []string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}
	for y, w := range want {
		if got := s.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")
	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q, want %q", got, "abc\ndef")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorGreen)
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Row(0) = %q after shrink", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Row(0) = %q after grow", s.Row(0))
	}
	if got := s.GetCell(0, 0).Color; got != ColorGreen {
		t.Errorf("color lost on resize: %v", got)
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("Row(5) = %q, want blank (cut by shrink)", s.Row(5))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, want spaces", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q, want spaces", got)
	}
}

func TestColorANSI(t *testing.T) {
	if got := ColorDefault.ANSI(); got != "" {
		t.Errorf("ColorDefault.ANSI() = %q, want empty", got)
	}
	if got := ColorOrange.ANSI(); got != "208" {
		t.Errorf("ColorOrange.ANSI() = %q, want 208", got)
	}
	if got := Color(200).ANSI(); got != "" {
		t.Errorf("unknown color ANSI() = %q, want empty", got)
	}
	for c := ColorDefault + 1; c < numColors; c++ {
		if c.ANSI() == "" {
			t.Errorf("color %d has no ANSI code", c)
		}
	}
	if !ColorBrightMagenta.Emphasized() || ColorGray.Emphasized() {
		t.Error("only the win tile and above should be emphasized")
	}
}
