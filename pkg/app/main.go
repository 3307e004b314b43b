package app

import (
	"github.com/gorilla/sessions"

	"github.com/quincyapp/quincy/pkg/cache"
	"github.com/quincyapp/quincy/pkg/config"
	"github.com/quincyapp/quincy/pkg/database"
	"github.com/quincyapp/quincy/pkg/events"
	"github.com/quincyapp/quincy/pkg/logger"
	"github.com/quincyapp/quincy/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "creating booking", "booking_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Cfg            *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store // Redis-backed session store; nil in worker process
}
