package annotate

import (
	"fmt"

	"github.com/ge-editor/textpos"
)

// Position is a zero based line and column (in runes).
type Position struct {
	Line   int
	Column int
}

func (p Position) Add(other Position) Position {
	return Position{Line: p.Line + other.Line, Column: p.Column + other.Column}
}

func (p Position) MoveRight(n int) Position {
	return Position{Line: p.Line, Column: p.Column + n}
}

func (p Position) MoveLeft(n int) Position {
	return Position{Line: p.Line, Column: max(p.Column-n, 0)}
}

func (p Position) Less(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// One based, like compilers print it
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Interval is the range [Start, End) of a diagnostic.
type Interval struct {
	Start Position
	End   Position
}

// Return interval of a single character at p
func At(p Position) Interval {
	return Interval{Start: p, End: p.MoveRight(1)}
}

// IsEmpty reports whether End is not after Start.
func (iv Interval) IsEmpty() bool {
	return !iv.Start.Less(iv.End)
}

func (iv Interval) Contains(p Position) bool {
	return !p.Less(iv.Start) && p.Less(iv.End)
}

// Unite returns the smallest interval covering both.
// An empty interval is ignored.
func (iv Interval) Unite(other Interval) Interval {
	if iv.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return iv
	}
	united := iv
	if other.Start.Less(united.Start) {
		united.Start = other.Start
	}
	if united.End.Less(other.End) {
		united.End = other.End
	}
	return united
}

// IntervalForOffsets converts absolute text offsets to an interval.
func IntervalForOffsets(t textpos.Text, start, end int) Interval {
	startLine, startColumn := t.LineColumnForPosition(start)
	endLine, endColumn := t.LineColumnForPosition(end)
	return Interval{
		Start: Position{Line: startLine, Column: startColumn},
		End:   Position{Line: endLine, Column: endColumn},
	}
}

// Return the absolute offsets of iv in t
func Offsets(t textpos.Text, iv Interval) (start, end int) {
	return t.PositionForLineColumn(iv.Start.Line, iv.Start.Column),
		t.PositionForLineColumn(iv.End.Line, iv.End.Column)
}
