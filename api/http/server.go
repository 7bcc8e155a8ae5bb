package http

import (
	"context"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Serve runs app on ln until ctx is canceled, then drains in-flight requests
// for at most timeout. It returns only after the drain has finished.
func Serve(ctx context.Context, app *fiber.App, ln net.Listener, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		done <- app.ShutdownWithContext(shutdownCtx)
	}()
	if err := app.Listener(ln); err != nil {
		return err
	}
	// Listener returns as soon as the socket closes; wait for the drain.
	return <-done
}
