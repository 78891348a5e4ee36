// Package cursor tracks the selected row and scroll offset of a list.
package cursor

// Cursor manages cursor position and scroll offset for a scrollable list.
// List length and viewport height are passed in since both change.
type Cursor struct {
	pos    int
	offset int // first visible row
	margin int // rows kept visible above/below the cursor
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump puts the cursor at pos, clamped to the list. No-op on an empty list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// Reset puts the cursor back on the first row.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// ClampToBounds keeps the cursor inside a list that shrank.
func (c *Cursor) ClampToBounds(listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(c.pos, listLen-1)
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// HandleKey applies the list navigation keys and reports whether key was one.
// Keys: j/down, k/up, g/home, G/end, ctrl+d and ctrl+u (half page).
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.Reset()
	case "G", "end":
		c.Jump(listLen-1, listLen, height)
	case "ctrl+d":
		c.Move(max(height/2, 1), listLen, height)
	case "ctrl+u":
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
