package middleware

import (
	"http_pls/internal/http/message"
)

type connectionClose struct{}

// NewConnectionClose echoes a request's "Connection: close" header into the
// response, so the client is told the write it is about to receive is the
// last one on this connection.
func NewConnectionClose() ResponseMiddleware {
	return &connectionClose{}
}

func (cc *connectionClose) HandleResponse(req *message.Request, resp *message.Response) error {
	if req.Headers.Value("Connection") == "close" {
		resp.Headers().Set("Connection", "close")
	}
	return nil
}
