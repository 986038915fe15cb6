package transport

import (
	"errors"
	"fmt"
	"log"
	"net"

	"http_pls/internal/http/router"
	"http_pls/internal/middleware"
	"http_pls/internal/sink"
)

type tcp struct {
	host       string
	port       string
	bufferSize int
	handler    router.Handler
	sink       sink.Sink
	respMW     []middleware.ResponseMiddleware
}

func NewTCPServer(host, port string, bufferSize int, handler router.Handler, eventSink sink.Sink, respMW ...middleware.ResponseMiddleware) Transport {
	return &tcp{
		host:       host,
		port:       port,
		bufferSize: bufferSize,
		handler:    handler,
		sink:       eventSink,
		respMW:     respMW,
	}
}

func (tt *tcp) Listen() (net.Listener, error) {
	return net.Listen("tcp", net.JoinHostPort(tt.host, tt.port))
}

// Serve accepts until the listener is closed, spawning one goroutine per
// connection. No connection-count limit is applied.
func (tt *tcp) Serve(listener net.Listener) error {
	log.Printf("[SERVER STARTED] Listening on %s", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}

		go tt.handle(conn)
	}
}

func (tt *tcp) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		tt.sink.OnError(conn.RemoteAddr(), fmt.Errorf("close connection: %w", err))
	}
}
