package textpos

import (
	"slices"
)

// Return index of sub in t at or after from, -1 if not found
func (t Text) index(sub Text, from int) int {
	if len(sub) == 0 {
		return from
	}
	for i := from; i+len(sub) <= len(t); i++ {
		if t[i] == sub[0] && slices.Equal(t[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

// PositionOfOccurrence returns the position of the n-th (one based) occurrence
// of searchString. Occurrences are searched left to right without overlap.
//
// found reports whether the n-th occurrence exists. When it does not, position
// keeps the value the editor scripts always relied on: 0 for n <= 0, and the
// length of the text when there are fewer than n occurrences.
func (t Text) PositionOfOccurrence(searchString string, n int) (position int, found bool) {
	if n <= 0 {
		return 0, false
	}
	search := Text(searchString)

	// Every rune boundary counts as a separator
	if len(search) == 0 {
		if n < len(t) {
			return n, true
		}
		return len(t), false
	}

	offset := 0
	for i := 1; ; i++ {
		index := t.index(search, offset)
		if index == -1 {
			return len(t), false
		}
		if i == n {
			return index, true
		}
		offset = index + len(search)
	}
}

// NumberOfOccurrences returns the number of non overlapping occurrences of
// searchString. An empty searchString matches at every position, Len()+1 times.
func (t Text) NumberOfOccurrences(searchString string) int {
	search := Text(searchString)
	if len(search) == 0 {
		return len(t) + 1
	}

	count := 0
	offset := 0
	for {
		index := t.index(search, offset)
		if index == -1 {
			return count
		}
		count++
		offset = index + len(search)
	}
}

// Remove returns a new Text without t[a:b].
// Out of range indexes are clamped, nothing is removed when b < a.
func (t Text) Remove(a, b int) Text {
	a, b = t.clamp(a), t.clamp(b)
	if b < a {
		b = a
	}
	removed := make(Text, 0, len(t)-(b-a))
	removed = append(removed, t[:a]...)
	return append(removed, t[b:]...)
}
