package message

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrMalformedRequest     = errors.New("malformed request")
)

// ParseRequestLine splits the request line on single spaces. Exactly three
// tokens are required.
func ParseRequestLine(text string) (RequestLine, error) {
	parts := strings.Split(strings.TrimSpace(text), " ")
	if len(parts) != 3 {
		return RequestLine{}, fmt.Errorf("%w: %q", ErrMalformedRequestLine, text)
	}

	return RequestLine{
		Method:  parts[0],
		Path:    parts[1],
		Version: parts[2],
	}, nil
}

// parseHeaders splits each line on the first colon and trims key and value.
// Lines without a colon are dropped; a duplicate key overwrites the earlier
// value.
func parseHeaders(lines [][]byte) *HeaderMap {
	headers := NewHeaderMap()
	for _, line := range lines {
		colonIdx := bytes.IndexByte(line, ':')
		if colonIdx == -1 {
			continue
		}
		key := bytes.TrimSpace(line[:colonIdx])
		value := bytes.TrimSpace(line[colonIdx+1:])
		headers.Set(string(key), string(value))
	}
	return headers
}

// ParseRequest assumes raw holds one whole request captured by a single
// read: the first line is the request line, all but the last remaining line
// are headers, and the last line is the body.
func ParseRequest(raw []byte) (*Request, error) {
	lines := splitLines(raw)
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need a request line and at least one more line", ErrMalformedRequest)
	}

	line, err := ParseRequestLine(string(lines[0]))
	if err != nil {
		return nil, err
	}

	headers := parseHeaders(lines[1 : len(lines)-1])

	return NewRequest(line, headers, lines[len(lines)-1]), nil
}

// splitLines splits on LF with an optional preceding CR. A trailing line
// terminator does not produce an empty final line.
func splitLines(raw []byte) [][]byte {
	raw = bytes.TrimSuffix(raw, []byte("\n"))
	raw = bytes.TrimSuffix(raw, []byte("\r"))

	lines := bytes.Split(raw, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimSuffix(line, []byte("\r"))
	}
	return lines
}
