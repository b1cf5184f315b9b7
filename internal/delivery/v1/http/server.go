package http

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/DRSN-tech/retail-core/internal/cfg"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/jimlawless/whereami"
)

// Server обслуживает REST API кассы.
type Server struct {
	httpServer *http.Server
}

func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Run слушает порт из конфигурации и блокирует до остановки сервера.
func (s *Server) Run() error {
	lis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return s.Serve(lis)
}

// Serve принимает соединения на lis. Штатная остановка через Stop возвращает nil.
func (s *Server) Serve(lis net.Listener) error {
	if err := s.httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

// Stop дожидается завершения активных запросов или истечения ctx.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
