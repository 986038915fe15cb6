package router

import (
	"errors"
	"fmt"

	"http_pls/internal/http/message"
	"http_pls/internal/store"
	"http_pls/types"
)

var ErrMissingUserAgent = errors.New("User-Agent is not in headers")

// Handler maps a parsed request to a response. A returned error is fatal to
// the connection; only a missing resource is translated into a 404 here.
type Handler interface {
	Handle(req *message.Request) (*message.Response, error)
}

type handler struct {
	fileStore store.Store
}

func NewHandler(fileStore store.Store) Handler {
	return &handler{fileStore: fileStore}
}

func (h *handler) Handle(req *message.Request) (*message.Response, error) {
	route := Resolve(req.Line)

	switch route.Kind {
	case KindRoot:
		return message.NewResponse(types.StatusOK), nil
	case KindEcho:
		return h.echo(route.Arg, req)
	case KindUserAgent:
		return h.userAgent(req)
	case KindFileGet:
		return h.fileGet(route.Arg, req)
	case KindFilePost:
		return h.filePost(route.Arg, req)
	default:
		return message.NewResponse(types.StatusNotFound), nil
	}
}

func (h *handler) echo(text string, req *message.Request) (*message.Response, error) {
	resp := message.NewResponse(types.StatusOK)
	resp.Headers().Set("Content-Type", "text/plain")
	resp.SetBody([]byte(text))

	if err := resp.Compress(req.Headers.Value("Accept-Encoding")); err != nil {
		return nil, err
	}
	return resp, nil
}

func (h *handler) userAgent(req *message.Request) (*message.Response, error) {
	if !req.Headers.Has("User-Agent") {
		return nil, ErrMissingUserAgent
	}

	resp := message.NewResponse(types.StatusOK)
	resp.Headers().Set("Content-Type", "text/plain")
	resp.SetBody([]byte(req.Headers.Value("User-Agent")))
	return resp, nil
}

func (h *handler) fileGet(name string, req *message.Request) (*message.Response, error) {
	data, err := h.fileStore.Read(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return message.NewResponse(types.StatusNotFound), nil
		}
		return nil, fmt.Errorf("read %q: %w", name, err)
	}

	resp := message.NewResponse(types.StatusOK)
	resp.Headers().Set("Content-Type", "application/octet-stream")
	resp.SetBody(data)

	if err := resp.Compress(req.Headers.Value("Accept-Encoding")); err != nil {
		return nil, err
	}
	return resp, nil
}

func (h *handler) filePost(name string, req *message.Request) (*message.Response, error) {
	if err := h.fileStore.Write(name, req.Body); err != nil {
		return nil, fmt.Errorf("write %q: %w", name, err)
	}
	return message.NewResponse(types.StatusCreated), nil
}
