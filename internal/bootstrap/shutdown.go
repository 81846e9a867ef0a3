package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything that shuts down within a deadline
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server         Stopper
	AnnounceWorker interface{ Shutdown(context.Context) error }
	Pool           Stopper
	DB             interface{ Close() }
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Announce schedule (no new jobs)
// 3. Worker pool (drain queued announcements)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.AnnounceWorker != nil {
		if err := components.AnnounceWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if components.Pool != nil {
		if err := components.Pool.Stop(ctx); err != nil {
			slog.Error(LogMsgPoolShutdownFailed, "error", err)
		}
	}

	if components.DB != nil {
		components.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
