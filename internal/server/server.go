package server

import (
	"context"
	"fmt"
	"net/http"
	"shop-relay/internal/services"
	"strconv"
	"time"
)

type HttpServer struct {
	shop   services.ShopInterface
	secret string
	port   string
	server *http.Server
}

func NewServer(port, secret string, shop services.ShopInterface) *HttpServer {
	return &HttpServer{
		shop:   shop,
		secret: secret,
		port:   port,
	}
}

func (s *HttpServer) ListenAndServe() error {
	portNum, err := strconv.Atoi(s.port)
	if err != nil {
		portNum = 8080
	}

	s.server = s.createHTTPServer(portNum)
	return s.server.ListenAndServe()
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *HttpServer) createHTTPServer(port int) *http.Server {
	router := s.loadRoutes(http.NewServeMux())
	middlewareChain := NewChain(
		s.recoverPanic,
		s.requestID,
	)

	// Handlers hold the inbound request open while they make one
	// outbound provider call, so the write timeout covers both legs.
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      middlewareChain(router),
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
