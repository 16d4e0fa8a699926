package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// Logger is the component logger used by the web server.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type HTTPServer struct {
	Addr string

	// Handler serves every request; nil answers 404.
	Handler http.Handler
	Logger  Logger

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
}

func NewHTTPServer(cfg ServerConfig, handler http.Handler) *HTTPServer {
	if cfg.DevMode {
		handler = WithDevCORS(handler)
	}
	return &HTTPServer{Addr: cfg.ListenAddr, Handler: handler}
}

// Start listens on Addr and serves in the background until Stop is called
// or ctx is done. Addr is updated to the bound address.
func (s *HTTPServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("web server already stopped")
	}
	if s.srv != nil {
		return nil
	}

	addr := s.Addr
	if addr == "" {
		addr = ":8080"
	}
	handler := s.Handler
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.srv = nil
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.ln = ln
	s.Addr = ln.Addr().String()
	s.infof("listening on %s", s.Addr)

	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	srv := s.srv
	go func() {
		err := srv.Serve(ln)
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		s.errorf("serve: %v", err)
	}()

	return nil
}

func (s *HTTPServer) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	ln := s.ln
	s.srv = nil
	s.ln = nil
	s.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (s *HTTPServer) infof(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Infof("web", format, args...)
	}
}

func (s *HTTPServer) errorf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Errorf("web", format, args...)
	}
}
