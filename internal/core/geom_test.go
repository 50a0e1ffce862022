package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v.IsDirection() = false", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionRestart, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v.IsDirection() = true", a)
		}
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set() should record the action")
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should remove actions")
	}
}

func TestResolveSeed(t *testing.T) {
	if got := ResolveSeed(42); got != 42 {
		t.Errorf("ResolveSeed(42) = %d, expected 42", got)
	}
	if got := ResolveSeed(0); got == 0 {
		t.Error("ResolveSeed(0) should draw a non-zero seed")
	}
}
