package session

import (
	"bufio"
	"io"
	"strings"
)

// LineReader supplies one line of user input at a time.
type LineReader interface {
	ReadLine() (string, error)
}

type bufferedReader struct {
	reader *bufio.Reader
}

// NewLineReader wraps r. A final unterminated line is returned together
// with io.EOF.
func NewLineReader(r io.Reader) LineReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &bufferedReader{reader: br}
	}
	return &bufferedReader{reader: bufio.NewReader(r)}
}

// ReadLine reads the next line from b.
func (b *bufferedReader) ReadLine() (string, error) {
	return ReadLine(b.reader)
}

// ReadLine reads a line from reader, trimming line endings. A final
// unterminated line is returned together with io.EOF.
func ReadLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
