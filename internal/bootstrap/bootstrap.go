package bootstrap

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"http_pls/internal/config"
	"http_pls/internal/http/router"
	"http_pls/internal/middleware"
	"http_pls/internal/sink"
	"http_pls/internal/store"
	"http_pls/internal/transport"
	"http_pls/internal/version"
)

type Bootstrap struct {
	Config     config.Config
	Store      store.Store
	Sink       sink.Sink
	ErrChan    chan error
	SignalChan chan os.Signal
}

func New(conf config.Config) *Bootstrap {
	return &Bootstrap{
		Config:     conf,
		Store:      store.New(conf.Directory()),
		Sink:       sink.NewLogSink(),
		ErrChan:    make(chan error, 2),
		SignalChan: make(chan os.Signal, 1),
	}
}

// Run starts the server and blocks until a service fails or the process
// receives SIGINT or SIGTERM.
func (b *Bootstrap) Run() error {
	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)

	go startHTTPServer(b.Config, b.Store, b.Sink, b.ErrChan)

	if b.Config.PprofEnabled() {
		go startPprof(b.Config.PprofPort(), b.ErrChan)
	}

	log.Println(version.GetVersion())

	select {
	case err := <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		log.Printf("Received signal %s, shutting down", sig)
		return nil
	}
}

func startHTTPServer(conf config.Config, fileStore store.Store, eventSink sink.Sink, errChan chan<- error) {
	handler := router.NewHandler(fileStore)
	srv := transport.NewTCPServer(conf.Host(), conf.Port(), conf.BufferSize(), handler, eventSink, middleware.NewConnectionClose())

	ln, err := srv.Listen()
	if err != nil {
		errChan <- fmt.Errorf("failed to start http server: %w", err)
		return
	}
	if err = srv.Serve(ln); err != nil {
		errChan <- fmt.Errorf("error when serving http server: %w", err)
	}
}

func startPprof(pprofPort string, errChan chan<- error) {
	pprofAddr := fmt.Sprintf("localhost:%s", pprofPort)
	log.Printf("Starting pprof server on http://%s/debug/pprof/", pprofAddr)
	if err := http.ListenAndServe(pprofAddr, nil); err != nil {
		errChan <- fmt.Errorf("pprof server error: %v", err)
	}
}
