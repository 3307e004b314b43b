package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/quincyapp/quincy/pkg/app"
	"github.com/quincyapp/quincy/pkg/cache"
	"github.com/quincyapp/quincy/pkg/config"
	"github.com/quincyapp/quincy/pkg/database"
	"github.com/quincyapp/quincy/pkg/events"
	"github.com/quincyapp/quincy/pkg/logger"
	"github.com/quincyapp/quincy/pkg/telemetry"
	eqEvents "github.com/quincyapp/quincy/services/equipment/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	//temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	//if err != nil {
	//	log.Error("failed to initialize temporal client", "error", err)
	//	os.Exit(1) //nolint:gocritic
	//}
	//defer temporalClient.Close()

	appConfig := &app.Application{
		Cfg:      cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		//TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	subscriptions := []struct {
		topic   string
		handler func(context.Context, *message.Message) error
	}{
		{eqEvents.TopicEquipmentCreated, handleEquipmentCreated(a)},
		{eqEvents.TopicBookingCreated, handleBookingChanged(a)},
		{eqEvents.TopicBookingDeleted, handleBookingChanged(a)},
	}

	topics := make([]string, 0, len(subscriptions))
	for _, sub := range subscriptions {
		errCh, err := a.EventBus.Subscribe(ctx, sub.topic, sub.handler)
		if err != nil {
			return err
		}
		topics = append(topics, sub.topic)

		// Drain subscriber errors in background so the channel never blocks.
		topic := sub.topic
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleEquipmentCreated returns a handler for equipment.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served from cache.
func handleEquipmentCreated(a *app.Application) func(context.Context, *message.Message) error {
	equipmentCache := cache.NewEquipmentCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt eqEvents.EquipmentCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := equipmentCache.Set(ctx, &cache.CachedEquipment{
			ID:        evt.ItemID,
			OrgID:     evt.OrgID,
			Name:      evt.Name,
			Code:      evt.Code,
			BaseStock: evt.BaseStock,
			CreatedAt: evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for equipment.created",
				"equipment_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"equipment_id", evt.ItemID, "org_id", evt.OrgID)
		}

		return nil
	}
}

// handleBookingChanged returns a handler for booking.created and
// booking.deleted events. Either way the org's cached availability results are
// stale, so bump the availability cache version. Version bumps are idempotent
// in effect: a second bump only invalidates an already-invalid generation.
func handleBookingChanged(a *app.Application) func(context.Context, *message.Message) error {
	availabilityCache := cache.NewAvailabilityCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt eqEvents.BookingChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := availabilityCache.Invalidate(ctx, evt.OrgID); err != nil {
			a.Logger.WarnContext(ctx, "availability invalidation failed",
				"org_id", evt.OrgID, "booking_id", evt.BookingID, "error", err)
			return err
		}

		a.Logger.InfoContext(ctx, "availability cache invalidated",
			"org_id", evt.OrgID, "booking_id", evt.BookingID)
		return nil
	}
}
