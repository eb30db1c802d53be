package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Elie-MK/eventBooking-microservice/internal/client"
	"github.com/Elie-MK/eventBooking-microservice/internal/config"
	"github.com/Elie-MK/eventBooking-microservice/internal/db"
	"github.com/Elie-MK/eventBooking-microservice/internal/discovery"
	"github.com/Elie-MK/eventBooking-microservice/internal/handlers"
	"github.com/Elie-MK/eventBooking-microservice/internal/messaging"
	"github.com/Elie-MK/eventBooking-microservice/internal/middleware"
	"github.com/Elie-MK/eventBooking-microservice/internal/publisher"
	"github.com/Elie-MK/eventBooking-microservice/internal/server"
	"github.com/Elie-MK/eventBooking-microservice/internal/service"
	"github.com/Elie-MK/eventBooking-microservice/internal/telemetry"
)

func main() {
	cfg, err := config.Load(config.BookingService)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint, cfg.TracingEnabled)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer shutdownTracer(context.Background())

	// Connect to PostgreSQL
	database, err := db.NewPostgresDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx, db.BookingsSchema, db.BookingsUserIndex); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	// Connect to RabbitMQ
	rabbitMQ, err := messaging.NewRabbitMQ(cfg.RabbitMQHost, cfg.RabbitMQPort, cfg.RabbitMQUser, cfg.RabbitMQPassword)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitMQ.Close()

	if err := rabbitMQ.DeclareQueue(cfg.NotificationQueue); err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	notifications := publisher.NewNotificationPublisher(rabbitMQ, cfg.NotificationQueue, cfg.PublishBuffer)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := notifications.Close(flushCtx); err != nil {
			log.Printf("⚠️ Notifications not flushed: %v", err)
		}
	}()

	consul := discovery.Connect(cfg)
	eventURL := discovery.NewResolver(consul.AsLookup(), config.EventService, cfg.EventServiceURL, 10*time.Second)

	// Existence checks always ask the event service; a cached snapshot could
	// outlive a deleted event.
	events := client.NewEventClient(eventURL.URL, cfg.HTTPClientTimeout)

	bookingRepo := db.NewBookingRepository(database)
	bookingService := service.NewBookingService(events, bookingRepo, notifications)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	router := gin.Default()
	router.Use(middleware.RequestID(), middleware.Tracing(cfg.ServiceName))
	router.GET("/health", handlers.HealthCheck(cfg.ServiceName, map[string]handlers.Check{"postgres": database.Ping, "rabbitmq": rabbitMQ.Ping}))
	bookingHandler.Register(router)

	deregister := consul.RegisterSelf(cfg, "bookings")
	defer deregister()

	log.Printf("🚀 Booking Service starting on http://localhost%s", cfg.Addr())
	log.Printf("   Event service: %s", eventURL.URL())
	if err := server.Run(ctx, cfg.Addr(), router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
