package middleware

import (
	"http_pls/internal/http/message"
)

// ResponseMiddleware adjusts a response before it is serialized. Middlewares
// run after the handler and must finish before Serialize is called.
type ResponseMiddleware interface {
	HandleResponse(req *message.Request, resp *message.Response) error
}
