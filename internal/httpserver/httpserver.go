package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Run starts the hub, the bus subscriber and the HTTP listener, then blocks
// until a shutdown signal. Shutdown order: subscriber first so no new
// frames arrive, then the hub closes its connections.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Fatalf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	go srv.hub.Run()
	srv.l.Info(ctx, "Hub started")

	if err := srv.subscriber.Start(); err != nil {
		srv.l.Fatalf(ctx, "Failed to start Redis subscriber: %v", err)
		return err
	}

	go func() {
		if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
			srv.l.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.l.Infof(ctx, "HTTP server started on port: %d", srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	srv.l.Infof(ctx, "Received signal %s, stopping broadcast service", sig)

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.subscriber.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Redis subscriber shutdown error: %v", err)
	}
	if err := srv.hub.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Hub shutdown error: %v", err)
	}

	return nil
}
