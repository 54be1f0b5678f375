// Line and position queries over an editor text snapshot.
//
// Offsets count runes, not bytes. Every query takes the snapshot as a value and
// never modifies it, so a Text may be shared between goroutines.

package textpos

import (
	"slices"

	"github.com/ge-editor/gecore/define"
)

// Text is an immutable snapshot of the editor buffer.
type Text []rune

func New(s string) Text {
	return Text(s)
}

func (t Text) String() string {
	return string(t)
}

// Return number of runes
func (t Text) Len() int {
	return len(t)
}

// Clamp position into [0, t.Len()]
func (t Text) clamp(position int) int {
	if position < 0 {
		return 0
	}
	if position > len(t) {
		return len(t)
	}
	return position
}

// LineStartForPosition returns the position of the first character of the line
// the given position belongs to.
func (t Text) LineStartForPosition(position int) int {
	position = t.clamp(position)
	for i := position - 1; i >= 0; i-- {
		if t[i] == define.LF {
			return i + 1
		}
	}
	return 0
}

// LineEndForPosition returns the position of the end of the line, i.e. the
// position of its linefeed or the end of the text on the last line.
func (t Text) LineEndForPosition(position int) int {
	position = t.clamp(position)
	if i := slices.Index(t[position:], define.LF); i >= 0 {
		return position + i
	}
	return len(t)
}

func (t Text) LineStartForLine(lineNumber int) int {
	position, _ := t.PositionOfOccurrence(string(rune(define.LF)), lineNumber+1)
	return t.LineStartForPosition(position)
}

func (t Text) LineEndForLine(lineNumber int) int {
	position, found := t.PositionOfOccurrence(string(rune(define.LF)), lineNumber+1)
	// Is last line
	if !found {
		position = len(t)
	}
	return t.LineEndForPosition(position)
}

// Return zero based line number of the line the given position belongs to
func (t Text) LineNumberForPosition(position int) int {
	position = t.clamp(position)
	count := 0
	for _, ch := range t[:position] {
		if ch == define.LF {
			count++
		}
	}
	return count
}

// LineForPosition returns the text of the line the given position belongs to,
// without its linefeed.
func (t Text) LineForPosition(position int) Text {
	lineStart := t.LineStartForPosition(position)
	lineEnd := t.LineEndForPosition(position)
	return slices.Clip(t[lineStart:lineEnd])
}

// Converts a position relative to the entire text to a position relative to
// the start of its line.
func (t Text) PositionRelativeToLineForPosition(position int) int {
	return t.clamp(position) - t.LineStartForPosition(position)
}

// Return number of lines. An empty text has one empty line.
func (t Text) LineCount() int {
	return t.LineNumberForPosition(len(t)) + 1
}

func (t Text) LineColumnForPosition(position int) (line, column int) {
	return t.LineNumberForPosition(position), t.PositionRelativeToLineForPosition(position)
}

// PositionForLineColumn is the inverse of LineColumnForPosition.
// A column beyond the line end stops at the line end, a line beyond the last
// line resolves on the last line.
func (t Text) PositionForLineColumn(line, column int) int {
	if line < 0 {
		return 0
	}
	lineStart := t.LineStartForLine(line)
	lineEnd := t.LineEndForPosition(lineStart)
	if column < 0 {
		column = 0
	}
	return min(lineStart+column, lineEnd)
}
