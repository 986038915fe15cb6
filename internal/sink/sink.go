package sink

import (
	"log"
	"net"
)

// Sink receives per-connection events from the transport. It is injected
// rather than reached through a package-level logger so tests can observe
// connection lifecycles directly.
type Sink interface {
	OnConnect(addr net.Addr)
	OnReceive(addr net.Addr, data []byte)
	OnDisconnect(addr net.Addr)
	OnError(addr net.Addr, err error)
}

type logSink struct{}

func NewLogSink() Sink {
	return &logSink{}
}

func (ls *logSink) OnConnect(addr net.Addr) {
	log.Printf("[CONNECTED] %s", addr)
}

func (ls *logSink) OnReceive(addr net.Addr, data []byte) {
	log.Printf("[RECEIVED from %s] %q", addr, data)
}

func (ls *logSink) OnDisconnect(addr net.Addr) {
	log.Printf("[DISCONNECTED] %s", addr)
}

func (ls *logSink) OnError(addr net.Addr, err error) {
	log.Printf("[ERROR] %s: %v", addr, err)
}
