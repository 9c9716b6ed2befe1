package core

import "fmt"

// Cursor is a 2D position with saturating single-step movement.
// Col and Row never go below zero. Cursor imposes no upper bound; owners
// clamp against whatever area they draw into.
type Cursor struct {
	Col int
	Row int
}

// MoveUp moves one row up, stopping at row 0.
func (c *Cursor) MoveUp() {
	if c.Row > 0 {
		c.Row--
	}
}

// MoveDown moves one row down.
func (c *Cursor) MoveDown() {
	c.Row++
}

// MoveLeft moves one column left, stopping at column 0.
func (c *Cursor) MoveLeft() {
	if c.Col > 0 {
		c.Col--
	}
}

// MoveRight moves one column right.
func (c *Cursor) MoveRight() {
	c.Col++
}

// Clamp keeps the cursor inside [0, maxCol] x [0, maxRow].
// A negative bound leaves that axis pinned at 0.
func (c *Cursor) Clamp(maxCol, maxRow int) {
	if c.Col > maxCol {
		c.Col = maxCol
	}
	if c.Row > maxRow {
		c.Row = maxRow
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if c.Row < 0 {
		c.Row = 0
	}
}

func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}
