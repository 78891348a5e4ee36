package cursor

import "testing"

func TestMove_Clamps(t *testing.T) {
	c := New(0)

	c.Move(-1, 5, 10)
	if c.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", c.Pos())
	}

	c.Move(10, 5, 10)
	if c.Pos() != 4 {
		t.Errorf("Pos() = %d, want 4", c.Pos())
	}
}

func TestMove_EmptyList(t *testing.T) {
	c := New(2)
	c.Move(1, 0, 10)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("cursor moved on empty list: pos=%d offset=%d", c.Pos(), c.Offset())
	}
}

func TestScroll_KeepsMargin(t *testing.T) {
	tests := []struct {
		name       string
		jump       int
		wantOffset int
	}{
		{"top stays", 2, 0},
		{"scrolls down with margin", 10, 7},
		{"end of list", 19, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1)
			c.Jump(tt.jump, 20, 5)
			if c.Offset() != tt.wantOffset {
				t.Errorf("Jump(%d) offset = %d, want %d", tt.jump, c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestScroll_BackUp(t *testing.T) {
	c := New(1)
	c.Jump(19, 20, 5)
	c.Jump(10, 20, 5)
	if c.Offset() != 9 {
		t.Errorf("offset = %d, want 9", c.Offset())
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.Jump(9, 10, 4)

	c.ClampToBounds(3, 4)
	if c.Pos() != 2 || c.Offset() != 0 {
		t.Errorf("after shrink pos=%d offset=%d, want 2, 0", c.Pos(), c.Offset())
	}

	c.ClampToBounds(0, 4)
	if c.Pos() != 0 {
		t.Errorf("after empty pos=%d, want 0", c.Pos())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	c.Jump(7, 10, 4)

	start, end := c.VisibleRange(10, 4)
	if start != 4 || end != 8 {
		t.Errorf("VisibleRange() = [%d, %d), want [4, 8)", start, end)
	}

	start, end = c.VisibleRange(0, 4)
	if start != 0 || end != 0 {
		t.Errorf("VisibleRange(empty) = [%d, %d), want [0, 0)", start, end)
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key     string
		start   int
		want    int
		handled bool
	}{
		{"j", 0, 1, true},
		{"down", 3, 4, true},
		{"k", 3, 2, true},
		{"g", 7, 0, true},
		{"G", 0, 9, true},
		{"ctrl+d", 0, 2, true},
		{"ctrl+u", 5, 3, true},
		{"x", 3, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := New(0)
			c.Jump(tt.start, 10, 4)
			handled := c.HandleKey(tt.key, 10, 4)
			if handled != tt.handled {
				t.Errorf("HandleKey(%q) handled = %v, want %v", tt.key, handled, tt.handled)
			}
			if c.Pos() != tt.want {
				t.Errorf("HandleKey(%q) pos = %d, want %d", tt.key, c.Pos(), tt.want)
			}
		})
	}
}
