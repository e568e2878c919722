// Command storage runs the event-driven synchronization service. It keeps
// the local store and the projection cache consistent with events emitted
// by the sibling remarks, users and operations services.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/citywatch/storage-service/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("storage service: %v", err)
	}
}
