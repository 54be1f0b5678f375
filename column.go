package textpos

import (
	"github.com/ge-editor/gecore/define"

	"github.com/ge-editor/utils"
)

// Return on-screen width of ch when drawn at screen column x
func cellWidth(ch rune, x, tabWidth int) int {
	if ch == '\t' {
		return utils.TabWidth(x, tabWidth)
	} else if ch == define.DEL { // 0x7f DEL ^?
		return 2
	} else if ch < 32 {
		return 2
	}
	return utils.RuneWidth(ch)
}

// DisplayColumnForPosition returns the screen column of position within its
// line, counting tabs up to the next tab stop, control codes as two cells (^X)
// and wide characters as two cells.
func (t Text) DisplayColumnForPosition(position, tabWidth int) int {
	position = t.clamp(position)
	x := 0
	for _, ch := range t[t.LineStartForPosition(position):position] {
		x += cellWidth(ch, x, tabWidth)
	}
	return x
}
