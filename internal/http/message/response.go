package message

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"strconv"
	"strings"

	"http_pls/types"
)

type Response struct {
	status  types.Status
	headers *HeaderMap
	body    []byte
}

func NewResponse(status types.Status) *Response {
	return &Response{
		status:  status,
		headers: NewHeaderMap(),
	}
}

func (resp *Response) Status() types.Status {
	return resp.status
}

func (resp *Response) Headers() *HeaderMap {
	return resp.headers
}

func (resp *Response) Body() []byte {
	return resp.body
}

func (resp *Response) SetBody(body []byte) {
	resp.body = body
}

// Compress gzips the body and sets Content-Encoding when the client's
// Accept-Encoding value contains "gzip". This is a substring check, not
// full content negotiation; no other encoding is supported.
func (resp *Response) Compress(acceptEncoding string) error {
	if !strings.Contains(acceptEncoding, "gzip") {
		return nil
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(resp.body); err != nil {
		return fmt.Errorf("compress body: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("compress body: %w", err)
	}

	resp.body = buf.Bytes()
	resp.headers.Set("Content-Encoding", "gzip")
	return nil
}

// Serialize finalizes Content-Length to the exact body length, then emits
// the status line, the header block, one blank line, and the body. Headers
// must not change after this point.
func (resp *Response) Serialize() []byte {
	resp.headers.Set("Content-Length", strconv.Itoa(len(resp.body)))

	statusLine := fmt.Sprintf("HTTP/1.1 %s\r\n", resp.status)
	headerBlock := resp.headers.Bytes()

	buf := make([]byte, 0, len(statusLine)+len(headerBlock)+2+len(resp.body))
	buf = append(buf, statusLine...)
	buf = append(buf, headerBlock...)
	buf = append(buf, '\r', '\n')
	buf = append(buf, resp.body...)
	return buf
}
