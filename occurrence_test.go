package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionOfOccurrence(t *testing.T) {
	text := New("a\nb\nc")

	tests := []struct {
		name     string
		search   string
		n        int
		position int
		found    bool
	}{
		{"first", "\n", 1, 1, true},
		{"second", "\n", 2, 3, true},
		{"beyond last", "\n", 3, 5, false},
		{"zero", "\n", 0, 0, false},
		{"negative", "\n", -2, 0, false},
		{"no match", "x", 1, 5, false},
		{"multi rune", "b\nc", 1, 2, true},
		{"empty search", "", 2, 2, true},
		{"empty search beyond", "", 9, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			position, found := text.PositionOfOccurrence(tt.search, tt.n)
			assert.Equal(t, tt.position, position)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestPositionOfOccurrenceFoundAtZero(t *testing.T) {
	position, found := New("\nabc").PositionOfOccurrence("\n", 1)
	assert.Equal(t, 0, position)
	assert.True(t, found)

	position, found = New("abc").PositionOfOccurrence("\n", 1)
	assert.Equal(t, 3, position)
	assert.False(t, found)

	position, found = New("").PositionOfOccurrence("\n", 1)
	assert.Equal(t, 0, position)
	assert.False(t, found)
}

func TestPositionOfOccurrenceDoesNotOverlap(t *testing.T) {
	text := New("aaaa")

	position, found := text.PositionOfOccurrence("aa", 2)
	assert.Equal(t, 2, position)
	assert.True(t, found)

	position, found = text.PositionOfOccurrence("aa", 3)
	assert.Equal(t, 4, position)
	assert.False(t, found)
}

func TestNumberOfOccurrences(t *testing.T) {
	tests := []struct {
		text   string
		search string
		want   int
	}{
		{"aaa", "aa", 1},
		{"aaaa", "aa", 2},
		{"hello world", "o", 2},
		{"hello world", "world", 1},
		{"hello world", "x", 0},
		{"", "x", 0},
		{"abc", "", 4},
		{"", "", 1},
		{"a\nb\nc", "\n", 2},
		{"ぁぁぃ", "ぁ", 2},
		{"ab", "abc", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.text).NumberOfOccurrences(tt.search), "%q in %q", tt.search, tt.text)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		text string
		a, b int
		want string
	}{
		{"abcdef", 1, 3, "adef"},
		{"abcdef", 0, 6, ""},
		{"abcdef", 3, 3, "abcdef"},
		{"abcdef", 4, 2, "abcdef"},
		{"abcdef", -5, 2, "cdef"},
		{"abcdef", 4, 99, "abcd"},
		{"日本語", 1, 2, "日語"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.text).Remove(tt.a, tt.b).String(), "remove [%d:%d] from %q", tt.a, tt.b, tt.text)
	}
}

func TestRemoveKeepsSource(t *testing.T) {
	text := New("abcdef")
	_ = text.Remove(1, 3)
	assert.Equal(t, "abcdef", text.String())
}
