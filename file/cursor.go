package file

import "fmt"

// Cursor is a zero based row and column, the column counts runes.
type Cursor struct {
	RowIndex int
	ColIndex int
}

func (c Cursor) Equals(other Cursor) bool {
	return c.RowIndex == other.RowIndex && c.ColIndex == other.ColIndex
}

// Less reports whether c is before other
func (c Cursor) Less(other Cursor) bool {
	if c.RowIndex != other.RowIndex {
		return c.RowIndex < other.RowIndex
	}
	return c.ColIndex < other.ColIndex
}

// Shown one based, as on the mode line
func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.RowIndex+1, c.ColIndex+1)
}
