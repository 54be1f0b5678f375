// based on bufio/scan.go

package file

import (
	"bytes"

	"github.com/ge-editor/utils"
)

func newScanLines() *scanLines_ {
	return &scanLines_{}
}

type scanLines_ struct {
	countLF, countCRLF, countCR int
}

// scanLines is a split function for a Scanner that returns each line of
// text including its end-of-line marker. The end-of-line marker is `\r?\n`
// or a lone `\r`, and is always returned as a single LF.
// The last non-empty line of input will be returned even if it has no
// newline.
//
// Count the types of newline codes
func (sl *scanLines_) scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			sl.countLF++
			return i + 1, data[0 : i+1], nil
		}
		// '\r', need the next byte to tell CRLF from CR
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		data[i] = '\n'
		if i+1 < len(data) && data[i+1] == '\n' {
			sl.countCRLF++
			return i + 2, data[0 : i+1], nil
		}
		sl.countCR++
		return i + 1, data[0 : i+1], nil
	}
	// If we're at EOF, we have a final, non-terminated line. Return it.
	if atEOF {
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}

// Return the most used linefeed, LF if there was none
func (sl *scanLines_) linefeed() linefeed {
	counts := []int{sl.countLF, sl.countCRLF, sl.countCR}
	if sl.countLF+sl.countCRLF+sl.countCR == 0 {
		return LF
	}
	return []linefeed{LF, CRLF, CR}[utils.MaxValueIndex(counts)]
}
