// Diagnostics (errors, warnings, notes) attached to intervals of a source text.

package annotate

import (
	"fmt"
	"io"
	"strings"

	"github.com/ge-editor/textpos"
)

type Severity int

const (
	Error Severity = iota
	Warning
	Information
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Information:
		return "info"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

type Diagnostic struct {
	Message  string
	Interval Interval
	Severity Severity
}

type List []Diagnostic

func (l *List) Add(d Diagnostic) {
	*l = append(*l, d)
}

func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Return diagnostics of the given severity
func (l List) Filter(severity Severity) List {
	var filtered List
	for _, d := range l {
		if d.Severity == severity {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// Annotator adds diagnostics to a list for the code it is bound to.
type Annotator struct {
	list     *List
	interval Interval
}

func NewAnnotator(list *List, interval Interval) *Annotator {
	return &Annotator{list: list, interval: interval}
}

// Sub returns an annotator on the same list bound to another interval.
func (a *Annotator) Sub(interval Interval) *Annotator {
	return NewAnnotator(a.list, interval)
}

func (a *Annotator) Interval() Interval {
	return a.interval
}

func (a *Annotator) add(severity Severity, interval Interval, format string, args ...any) {
	a.list.Add(Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Interval: interval,
		Severity: severity,
	})
}

// Shift the bound interval by deltaStart and deltaEnd
func (a *Annotator) delta(deltaStart, deltaEnd Position) Interval {
	return Interval{Start: a.interval.Start.Add(deltaStart), End: a.interval.End.Add(deltaEnd)}
}

func (a *Annotator) AddError(interval Interval, format string, args ...any) {
	a.add(Error, interval, format, args...)
}

func (a *Annotator) AddErrorHere(format string, args ...any) {
	a.add(Error, a.interval, format, args...)
}

func (a *Annotator) AddErrorDelta(deltaStart, deltaEnd Position, format string, args ...any) {
	a.add(Error, a.delta(deltaStart, deltaEnd), format, args...)
}

func (a *Annotator) AddWarning(interval Interval, format string, args ...any) {
	a.add(Warning, interval, format, args...)
}

func (a *Annotator) AddWarningHere(format string, args ...any) {
	a.add(Warning, a.interval, format, args...)
}

func (a *Annotator) AddWarningDelta(deltaStart, deltaEnd Position, format string, args ...any) {
	a.add(Warning, a.delta(deltaStart, deltaEnd), format, args...)
}

func (a *Annotator) AddInformation(interval Interval, format string, args ...any) {
	a.add(Information, interval, format, args...)
}

func (a *Annotator) AddInformationHere(format string, args ...any) {
	a.add(Information, a.interval, format, args...)
}

func (a *Annotator) AddInformationDelta(deltaStart, deltaEnd Position, format string, args ...any) {
	a.add(Information, a.delta(deltaStart, deltaEnd), format, args...)
}

// Render writes each diagnostic as
//
//	name:line:col: severity: message
//	<source line>
//	   ^^^
//
// The marker covers the interval on its first line, at least one column.
// Tabs of the source line are kept in the marker line so it stays aligned.
func Render(w io.Writer, name string, t textpos.Text, l List) error {
	for _, d := range l {
		if _, err := fmt.Fprintf(w, "%s:%s: %s: %s\n", name, d.Interval.Start, d.Severity, d.Message); err != nil {
			return err
		}

		start, end := Offsets(t, d.Interval)
		line := t.LineForPosition(start)
		column := start - t.LineStartForPosition(start)
		width := min(end, t.LineEndForPosition(start)) - start

		var marker strings.Builder
		for _, ch := range line[:column] {
			if ch == '\t' {
				marker.WriteRune('\t')
			} else {
				marker.WriteRune(' ')
			}
		}
		marker.WriteString(strings.Repeat("^", max(width, 1)))

		if _, err := fmt.Fprintf(w, "%s\n%s\n", line, marker.String()); err != nil {
			return err
		}
	}
	return nil
}
