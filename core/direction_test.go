package core

import "testing"

func TestDirection_WireEncoding(t *testing.T) {
	cases := []struct {
		b    byte
		want Direction
	}{
		{0, Up},
		{1, Left},
		{2, Down},
		{3, Right},
		{7, Right},
		{255, Right},
	}

	for _, c := range cases {
		if got := ParseDirection(c.b); got != c.want {
			t.Errorf("ParseDirection(%d): expected %v, got %v", c.b, c.want, got)
		}
	}

	if Up != 0 || Left != 1 || Down != 2 || Right != 3 {
		t.Error("direction constants drifted from wire encoding")
	}
}

func TestDirection_OffsetAndOpposite(t *testing.T) {
	origin := Point{5, 5}
	for _, d := range Directions {
		there := origin.Add(d.Offset())
		if origin.Manhattan(there) != 1 {
			t.Errorf("%v: expected unit step, got %v", d, there)
		}
		back := there.Add(d.Opposite().Offset())
		if back != origin {
			t.Errorf("%v: opposite did not return to origin, got %v", d, back)
		}
	}

	if got := Up.Offset(); got != (Point{0, -1}) {
		t.Errorf("expected up to decrease y, got %v", got)
	}
}

func TestPoint_In(t *testing.T) {
	if !(Point{0, 0}).In(5, 5) {
		t.Error("origin should be in bounds")
	}
	if (Point{5, 0}).In(5, 5) {
		t.Error("x == width should be out of bounds")
	}
	if (Point{-1, 2}).In(5, 5) {
		t.Error("negative x should be out of bounds")
	}
}
