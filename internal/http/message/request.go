package message

import "bytes"

type RequestLine struct {
	Method  string
	Path    string
	Version string
}

type Request struct {
	Line    RequestLine
	Headers *HeaderMap
	Body    []byte
}

// NewRequest normalizes an empty or whitespace-only body to nil.
func NewRequest(line RequestLine, headers *HeaderMap, body []byte) *Request {
	if len(bytes.TrimSpace(body)) == 0 {
		body = nil
	}

	return &Request{
		Line:    line,
		Headers: headers,
		Body:    body,
	}
}
