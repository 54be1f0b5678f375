package mark

import (
	"github.com/ge-editor/utils"

	"github.com/ge-editor/textpos/file"
)

func NewMarks() *marks {
	return &marks{}
}

// NewMark marks position of ff, remembering the row text it was set on
func NewMark(ff *file.File, position int) *Mark {
	return &Mark{
		FilePath: ff.GetPath(),
		Cursor:   ff.CursorForPosition(position),
		Content:  ff.Snapshot().LineForPosition(position).String(),
	}
}

type Mark struct {
	FilePath string
	file.Cursor
	Content string
}

type marks []*Mark

// SetMark mark if exists unset and append
func (m *marks) SetMark(a *Mark) {
	m.UnsetMark(a)
	*m = append(*m, a)
}

func (m *marks) UnsetMark(d *Mark) bool {
	i := m.index(d)
	if i < 0 {
		return false
	}

	*m = append((*m)[:i], (*m)[i+1:]...)
	return true
}

func (m *marks) Len() int {
	return len(*m)
}

// Find the last matching mark using the path member in the Marks struct Array
// return nil if not found
func (m *marks) FindLastByPath(filePath string) *Mark {
	for i := len(*m) - 1; i >= 0; i-- {
		if utils.SameFile((*m)[i].FilePath, filePath) {
			return (*m)[i]
		}
	}
	return nil
}

// Return the marks of filePath in row order
func (m *marks) ByPath(filePath string) []*Mark {
	var found []*Mark
	for _, a := range *m {
		if !utils.SameFile(a.FilePath, filePath) {
			continue
		}
		i := len(found)
		for i > 0 && a.Cursor.Less(found[i-1].Cursor) {
			i--
		}
		found = append(found, nil)
		copy(found[i+1:], found[i:])
		found[i] = a
	}
	return found
}

func (m *marks) Prev(d *Mark) *Mark {
	i := m.index(d)
	if i <= 0 {
		return nil
	}
	return (*m)[i-1]
}

func (m *marks) Next(d *Mark) *Mark {
	i := m.index(d)
	if i < 0 || i >= len(*m)-1 {
		return nil
	}
	return (*m)[i+1]
}

// Find *Mark from []*Mark then return index
// return -1 if not found
func (m *marks) index(d *Mark) int {
	for i := len(*m) - 1; i >= 0; i-- { // reverse
		if d == (*m)[i] || m.equal(d, (*m)[i]) {
			return i
		}
	}
	return -1
}

func (m *marks) equal(a, b *Mark) bool {
	return utils.SameFile(a.FilePath, b.FilePath) && a.Cursor.Equals(b.Cursor)
}
