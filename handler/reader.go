package handler

import (
	"bufio"
	"bytes"
	"io"
)

// LineReader splits a byte stream into records. It recognizes "\n" and
// "\r\n" as terminators and has no line length limit.
type LineReader struct {
	r    *bufio.Reader
	Line int
}

// NewLineReader creates a LineReader over r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadRecord returns the next record without its terminator. A final
// unterminated line is returned before io.EOF. The returned slice is only
// valid until the next call.
func (r *LineReader) ReadRecord() ([]byte, error) {
	line, err := r.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		// long line: fall back to an accumulating read
		buf := append([]byte(nil), line...)
		for err == bufio.ErrBufferFull {
			line, err = r.r.ReadSlice('\n')
			buf = append(buf, line...)
		}
		line = buf
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(line) == 0 && err == io.EOF {
		return nil, io.EOF
	}

	r.Line++
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return line, nil
}
