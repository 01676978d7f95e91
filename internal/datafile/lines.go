package datafile

import (
	"bufio"
	"io"
)

// MaxLineBytes is the longest line LineReader returns whole.
const MaxLineBytes = 64 * 1024

// LineReader splits input into lines without ever failing on length. A line
// longer than its buffer is drained and flagged instead.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader reads lines of up to MaxLineBytes from r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReaderSize(r, MaxLineBytes)}
}

// Next returns the next line without its line ending. When tooLong is set,
// line holds only the first MaxLineBytes bytes and the rest was discarded.
// err is io.EOF after the last line.
func (l *LineReader) Next() (line string, tooLong bool, err error) {
	buf, isPrefix, err := l.r.ReadLine()
	if err != nil {
		return "", false, err
	}
	line = string(buf)
	if !isPrefix {
		return line, false, nil
	}
	for isPrefix {
		_, isPrefix, err = l.r.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return line, true, err
		}
	}
	return line, true, nil
}

// lineKind guesses what a line was meant to be from its first column.
func lineKind(line string) Kind {
	cols := NewColumns(line)
	if cols.Blank() {
		return KindBlank
	}
	switch cols.At(0) {
	case prefixComment:
		return KindComment
	case prefixTitle:
		return KindTitle
	case prefixBorder:
		return KindBorder
	case prefixRoute:
		return KindRoute
	default:
		return KindWorld
	}
}
