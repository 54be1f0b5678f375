package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ge-editor/utils"

	"github.com/ge-editor/textpos"
	"github.com/ge-editor/textpos/pkg_error"
)

type flags int8
type linefeed int8

const (
	READONLY flags = 1 << iota
	SOFT_TAB

	LF linefeed = 1 << iota
	CRLF
	CR
)

// Longest line accepted by Load
const maxRowSize = 16 * 1024 * 1024

// File is a read only view of a source file for position queries.
// Linefeeds of the snapshot are always LF, the kind found on disk is kept in linefeed.
type File struct {
	rawPath  string
	path     string
	base     string
	dispPath string

	text textpos.Text
	linefeed
	tabWidth int
	flags    // readonly, softTab

	class string // file type string
}

// Call Load() or LoadString() after invoking this function
func NewFile(rawPath string) *File {
	ff := &File{
		rawPath:  rawPath,
		text:     textpos.Text{},
		linefeed: LF,
		tabWidth: 4,
	}
	ff.init()
	return ff
}

// Initialize File with File.rawPath
func (ff *File) init() {
	if ff.rawPath == "" {
		ff.rawPath = "unnamed"
	}

	var err error
	ff.path, err = filepath.Abs(ff.rawPath)
	if err != nil {
		ff.path = ""
	}

	dir := ""
	dir, ff.base = filepath.Split(ff.path)
	ff.dispPath = ff.base
	dir = utils.LastPartOfPath(dir)
	wd, err := os.Getwd()
	if err == nil {
		if utils.SameFile(wd, dir) {
			ff.dispPath = filepath.Join(dir, ff.dispPath)
		}
	}

	ff.class = filepath.Ext(ff.path)
}

// Load file
func (ff *File) Load() error {
	fp, err := os.Open(ff.path)
	if err != nil {
		return err
	}
	defer fp.Close()

	info, err := fp.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", ff.path)
	}
	ff.SetReadonly(info.Mode().Perm()&0200 == 0)

	return ff.load(fp)
}

// Load text from s instead of the file
func (ff *File) LoadString(s string) error {
	return ff.load(strings.NewReader(s))
}

func (ff *File) load(r io.Reader) error {
	scanLines := newScanLines()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowSize)
	scanner.Split(scanLines.scanLines)

	var sb strings.Builder
	for scanner.Scan() {
		sb.Write(scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	ff.text = textpos.New(sb.String())
	ff.linefeed = scanLines.linefeed()
	return nil
}

// Return the current text. The snapshot is never modified, RemoveRegion
// replaces it with a new one.
func (ff *File) Snapshot() textpos.Text {
	return ff.text
}

// Return number of rows
func (ff *File) RowLength() int {
	return ff.text.LineCount()
}

// Return the text of the row without linefeed
func (ff *File) Row(rowIndex int) (textpos.Text, bool) {
	if rowIndex < 0 || rowIndex >= ff.RowLength() {
		return nil, false
	}
	return ff.text.LineForPosition(ff.text.LineStartForLine(rowIndex)), true
}

func (ff *File) CursorForPosition(position int) Cursor {
	row, col := ff.text.LineColumnForPosition(position)
	return Cursor{RowIndex: row, ColIndex: col}
}

func (ff *File) PositionForCursor(c Cursor) int {
	return ff.text.PositionForLineColumn(c.RowIndex, c.ColIndex)
}

// Return on-screen column of the cursor
func (ff *File) DisplayColumn(c Cursor) int {
	return ff.text.DisplayColumnForPosition(ff.PositionForCursor(c), ff.tabWidth)
}

// RemoveRegion removes the text between cursor1 (inclusive) and cursor2
// (exclusive) from the snapshot and returns it.
// The file on disk is not touched.
func (ff *File) RemoveRegion(cursor1, cursor2 Cursor) (textpos.Text, error) {
	if ff.IsReadonly() {
		return nil, fmt.Errorf("%w: %s", pkg_error.ErrReadonly, ff.dispPath)
	}
	// Cursors are clamped to the text, so order is checked on positions.
	a, b := ff.PositionForCursor(cursor1), ff.PositionForCursor(cursor2)
	if b < a {
		return nil, fmt.Errorf("%w: %v is after %v", pkg_error.ErrInvalidRegion, cursor1, cursor2)
	}
	removed := make(textpos.Text, b-a)
	copy(removed, ff.text[a:b])
	ff.text = ff.text.Remove(a, b)
	return removed, nil
}

// Setter/Getter

func (ff *File) ChangePath(path string) {
	ff.rawPath = path
	ff.init()
}

func (ff *File) GetPath() string {
	return ff.path
}

func (ff *File) GetBase() string {
	return ff.base
}

func (ff *File) GetDispPath() string {
	return ff.dispPath
}

func (ff *File) GetClass() string {
	return ff.class
}

func (ff *File) GetLinefeed() string {
	if ff.linefeed&LF > 0 {
		return "LF"
	}
	if ff.linefeed&CRLF > 0 {
		return "CRLF"
	}
	return "CR"
}

func (ff *File) GetTabWidth() int {
	return ff.tabWidth
}

func (ff *File) SetTabWidth(w int) {
	if w > 0 {
		ff.tabWidth = w
	}
}

// Flags

func (ff *File) SetReadonly(b bool) {
	if b {
		ff.flags |= READONLY
	} else {
		ff.flags &= ^READONLY
	}
}

func (ff *File) IsReadonly() bool {
	return ff.flags&READONLY > 0
}

func (ff *File) SetSoftTab(b bool) {
	if b {
		ff.flags |= SOFT_TAB
	} else {
		ff.flags &= ^SOFT_TAB
	}
}

func (ff *File) IsSoftTab() bool {
	return ff.flags&SOFT_TAB > 0
}
