package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineStartAndEndForPosition(t *testing.T) {
	text := New("ab\ncd\n\nef")

	tests := []struct {
		position int
		start    int
		end      int
	}{
		{0, 0, 2},
		{1, 0, 2},
		{2, 0, 2}, // on the linefeed
		{3, 3, 5},
		{5, 3, 5},
		{6, 6, 6}, // empty line
		{7, 7, 9},
		{9, 7, 9}, // end of text
	}

	for _, tt := range tests {
		assert.Equal(t, tt.start, text.LineStartForPosition(tt.position), "start of %d", tt.position)
		assert.Equal(t, tt.end, text.LineEndForPosition(tt.position), "end of %d", tt.position)
	}
}

func TestLineStartAndEndClampOutOfRange(t *testing.T) {
	text := New("ab\ncd")

	assert.Equal(t, 0, text.LineStartForPosition(-3))
	assert.Equal(t, 2, text.LineEndForPosition(-3))
	assert.Equal(t, 3, text.LineStartForPosition(100))
	assert.Equal(t, 5, text.LineEndForPosition(100))
}

func TestLineBoundsContainPosition(t *testing.T) {
	for _, s := range []string{"", "\n", "a", "a\n", "\na", "a\nb\nc", "\n\n\n", "héllo\nwörld\n"} {
		text := New(s)
		for p := 0; p <= text.Len(); p++ {
			start := text.LineStartForPosition(p)
			end := text.LineEndForPosition(p)
			assert.LessOrEqual(t, start, p, "%q at %d", s, p)
			assert.LessOrEqual(t, p, end, "%q at %d", s, p)
			assert.Equal(t, text[start:end], text.LineForPosition(p), "%q at %d", s, p)
		}
	}
}

func TestLineNumberForPositionIsMonotonic(t *testing.T) {
	for _, s := range []string{"", "abc", "a\nb\nc", "\n\n", "x\n\ny\n"} {
		text := New(s)
		assert.Equal(t, 0, text.LineNumberForPosition(0), "%q", s)
		prev := 0
		for p := 0; p <= text.Len(); p++ {
			n := text.LineNumberForPosition(p)
			assert.GreaterOrEqual(t, n, prev, "%q at %d", s, p)
			prev = n
		}
	}
}

func TestLineNumberForPosition(t *testing.T) {
	text := New("a\nb\nc")

	assert.Equal(t, 0, text.LineNumberForPosition(1))
	assert.Equal(t, 1, text.LineNumberForPosition(2))
	assert.Equal(t, 1, text.LineNumberForPosition(3))
	assert.Equal(t, 2, text.LineNumberForPosition(4))
	assert.Equal(t, 2, text.LineNumberForPosition(5))
}

func TestLineStartAndEndForLine(t *testing.T) {
	text := New("a\nb\nc")

	assert.Equal(t, 0, text.LineStartForLine(0))
	assert.Equal(t, 1, text.LineEndForLine(0))
	assert.Equal(t, 2, text.LineStartForLine(1))
	assert.Equal(t, 3, text.LineEndForLine(1))
	assert.Equal(t, 4, text.LineStartForLine(2))
	// Last line falls back to the end of the text
	assert.Equal(t, 5, text.LineEndForLine(2))
}

func TestLineEndForLineWithLeadingLinefeed(t *testing.T) {
	// The first linefeed is found at offset 0, which is not the last line
	text := New("\nabc")

	assert.Equal(t, 0, text.LineStartForLine(0))
	assert.Equal(t, 0, text.LineEndForLine(0))
	assert.Equal(t, 1, text.LineStartForLine(1))
	assert.Equal(t, 4, text.LineEndForLine(1))
}

func TestLineForPosition(t *testing.T) {
	text := New("first\nsecond\nthird")

	assert.Equal(t, "first", text.LineForPosition(2).String())
	assert.Equal(t, "second", text.LineForPosition(6).String())
	assert.Equal(t, "second", text.LineForPosition(12).String())
	assert.Equal(t, "third", text.LineForPosition(18).String())
	assert.Equal(t, "", New("").LineForPosition(0).String())
}

func TestPositionRelativeToLineForPosition(t *testing.T) {
	text := New("ab\ncde")

	assert.Equal(t, 0, text.PositionRelativeToLineForPosition(0))
	assert.Equal(t, 2, text.PositionRelativeToLineForPosition(2))
	assert.Equal(t, 0, text.PositionRelativeToLineForPosition(3))
	assert.Equal(t, 3, text.PositionRelativeToLineForPosition(6))
}

func TestLineColumnRoundTrip(t *testing.T) {
	text := New("int a;\n\tb = 0x1A;\n\nreturn")

	for p := 0; p <= text.Len(); p++ {
		line, column := text.LineColumnForPosition(p)
		assert.Equal(t, p, text.PositionForLineColumn(line, column), "position %d", p)
	}
}

func TestPositionForLineColumnClamps(t *testing.T) {
	text := New("ab\ncd")

	assert.Equal(t, 2, text.PositionForLineColumn(0, 10))
	assert.Equal(t, 3, text.PositionForLineColumn(1, -1))
	assert.Equal(t, 0, text.PositionForLineColumn(-1, 1))
	assert.Equal(t, 4, text.PositionForLineColumn(7, 1)) // last line
}

func TestLineCount(t *testing.T) {
	assert.Equal(t, 1, New("").LineCount())
	assert.Equal(t, 1, New("abc").LineCount())
	assert.Equal(t, 2, New("abc\n").LineCount())
	assert.Equal(t, 3, New("a\nb\nc").LineCount())
}

func TestRunesAreCharacters(t *testing.T) {
	text := New("日本\n語")

	assert.Equal(t, 4, text.Len())
	assert.Equal(t, 3, text.LineStartForPosition(4))
	assert.Equal(t, 2, text.LineEndForPosition(1))
	assert.Equal(t, "語", text.LineForPosition(3).String())
}

func TestDisplayColumnForPosition(t *testing.T) {
	text := New("ab\ncd\x01e")

	assert.Equal(t, 2, text.DisplayColumnForPosition(2, 4))
	assert.Equal(t, 0, text.DisplayColumnForPosition(3, 4))
	assert.Equal(t, 4, text.DisplayColumnForPosition(6, 4)) // ^A takes two cells

	tab := New("\tx")
	column := tab.DisplayColumnForPosition(1, 4)
	assert.GreaterOrEqual(t, column, 1)
	assert.LessOrEqual(t, column, 4)
}
