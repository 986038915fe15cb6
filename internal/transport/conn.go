package transport

import (
	"errors"
	"io"
	"net"

	"http_pls/internal/http/message"
)

type connState int

const (
	stateAwaitingRequest connState = iota
	stateDispatching
	stateResponding
	stateClosing
)

// handle drives one connection through its request/response exchanges.
// Each exchange is a single bounded read that is assumed to capture one
// whole request; the next read never starts before the current response is
// written. Parse and handler failures tear the connection down without a
// response.
func (tt *tcp) handle(conn net.Conn) {
	addr := conn.RemoteAddr()
	tt.sink.OnConnect(addr)

	defer func() {
		tt.sink.OnDisconnect(addr)
		tt.closeConnection(conn)
	}()

	buf := make([]byte, tt.bufferSize)
	state := stateAwaitingRequest

	for state != stateClosing {
		n, err := conn.Read(buf)
		if n == 0 {
			if err != nil && !errors.Is(err, io.EOF) {
				tt.sink.OnError(addr, err)
			}
			state = stateClosing
			continue
		}

		raw := buf[:n]
		tt.sink.OnReceive(addr, raw)

		req, err := message.ParseRequest(raw)
		if err != nil {
			tt.sink.OnError(addr, err)
			state = stateClosing
			continue
		}

		state = stateDispatching
		resp, err := tt.handler.Handle(req)
		if err != nil {
			tt.sink.OnError(addr, err)
			state = stateClosing
			continue
		}

		state = stateResponding
		if err = tt.applyResponseMiddlewares(req, resp); err != nil {
			tt.sink.OnError(addr, err)
			state = stateClosing
			continue
		}

		if _, err = conn.Write(resp.Serialize()); err != nil {
			tt.sink.OnError(addr, err)
			state = stateClosing
			continue
		}

		if req.Headers.Value("Connection") == "close" || req.Line.Version != "HTTP/1.1" {
			state = stateClosing
		} else {
			state = stateAwaitingRequest
		}
	}
}

func (tt *tcp) applyResponseMiddlewares(req *message.Request, resp *message.Response) error {
	for _, mw := range tt.respMW {
		if err := mw.HandleResponse(req, resp); err != nil {
			return err
		}
	}
	return nil
}
