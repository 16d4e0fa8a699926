package web

import (
	"context"
	"net/http"
)

// Server is a preview server that runs in the background between Start and
// Stop.
type Server interface {
	Start(ctx context.Context) error
	Stop() error
}

// NoopServer stands in when no listen address is configured.
type NoopServer struct{}

func (n *NoopServer) Start(ctx context.Context) error { return nil }
func (n *NoopServer) Stop() error                     { return nil }

// NewServer returns an HTTPServer for cfg, or a NoopServer when
// cfg.ListenAddr is empty.
func NewServer(cfg ServerConfig, handler http.Handler) Server {
	if cfg.ListenAddr == "" {
		return &NoopServer{}
	}
	return NewHTTPServer(cfg, handler)
}
