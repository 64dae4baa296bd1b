package core

import "testing"

func newTestCanvas() (*Screen, *ScreenCanvas) {
	s := NewScreen(10, 10)
	return s, NewScreenCanvas(s, 100, 100)
}

func TestScreenCanvasRect(t *testing.T) {
	s, c := newTestCanvas()
	c.Draw(RectSprite{Rect: NewRect(0, 0, 20, 10), Color: ColorGray})

	for x := 0; x < 2; x++ {
		cell := s.GetCell(x, 0)
		if cell.Rune != FillRune || cell.Color != ColorGray {
			t.Errorf("expected gray fill at (%d, 0), got %+v", x, cell)
		}
	}
	if s.Get(2, 0) != ' ' || s.Get(0, 1) != ' ' {
		t.Error("rect should not spill outside its scaled bounds")
	}
}

func TestScreenCanvasThinRectKeepsOneCell(t *testing.T) {
	s, c := newTestCanvas()
	// 4 world pixels tall is less than half a cell
	c.Draw(RectSprite{Rect: NewRect(30, 51, 30, 4), Color: ColorGray})

	if s.Get(3, 5) != FillRune {
		t.Errorf("thin rect should still cover a row, row 5 = %q", s.Row(5))
	}
}

func TestScreenCanvasOutlineRect(t *testing.T) {
	s, c := newTestCanvas()
	c.Draw(RectSprite{Rect: NewRect(0, 0, 50, 50), Color: ColorBrightRed, Outline: true})

	if s.Get(0, 0) != '┌' || s.Get(4, 4) != '┘' {
		t.Errorf("outline should be a box, rows = %q / %q", s.Row(0), s.Row(4))
	}
	if s.Get(2, 2) != ' ' {
		t.Error("outline should leave the interior empty")
	}
}

func TestScreenCanvasTriangle(t *testing.T) {
	s, c := newTestCanvas()
	c.Draw(PolygonSprite{
		Points: []Vec2{{X: 50, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}},
		Color:  ColorRed,
	})

	if cell := s.GetCell(5, 9); cell.Rune != WedgeRune || cell.Color != ColorRed {
		t.Errorf("base center should be filled, got %+v", cell)
	}
	if s.Get(0, 0) != ' ' || s.Get(9, 0) != ' ' {
		t.Error("corners above the slopes should stay empty")
	}
}

func TestScreenCanvasTinyTriangleStillVisible(t *testing.T) {
	s, c := newTestCanvas()
	c.Draw(PolygonSprite{
		Points: []Vec2{{X: 42, Y: 40}, {X: 41, Y: 43}, {X: 43, Y: 43}},
		Color:  ColorRed,
	})

	if s.Get(4, 4) != WedgeRune {
		t.Errorf("sub-cell triangle should mark its apex cell, row 4 = %q", s.Row(4))
	}
}

func TestScreenCanvasTextAndImage(t *testing.T) {
	s, c := newTestCanvas()
	if c.HasImage("player") {
		t.Error("terminal canvas cannot show images")
	}

	c.DrawText(12, 12, "Hi", ColorWhite)
	if s.Get(1, 1) != 'H' || s.Get(2, 1) != 'i' {
		t.Errorf("text should start at cell (1, 1), row = %q", s.Row(1))
	}

	c.Draw(ImageSprite{Handle: "player", X: 80, Y: 80, W: 20, H: 20})
	if s.Get(8, 8) != ImageRune || s.Get(9, 9) != ImageRune {
		t.Error("image sprite should fall back to a block fill")
	}

	c.Fill(ColorSky)
	if s.Get(1, 1) != ' ' {
		t.Error("Fill should clear the screen")
	}
}
