package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/acme/autocert"
)

type Server struct {
	TLSDisabled      bool
	TLSDisabledPort  int
	AutocertHostname string
	Router           http.Handler
}

func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if s.TLSDisabled {
			httpServer.Addr = fmt.Sprintf(":%d", s.TLSDisabledPort)
			errChan <- httpServer.ListenAndServe()
		} else {
			errChan <- httpServer.Serve(autocert.NewListener(s.AutocertHostname))
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}
