package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Elie-MK/eventBooking-microservice/internal/config"
	"github.com/Elie-MK/eventBooking-microservice/internal/discovery"
	"github.com/Elie-MK/eventBooking-microservice/internal/gateway"
	"github.com/Elie-MK/eventBooking-microservice/internal/middleware"
	"github.com/Elie-MK/eventBooking-microservice/internal/server"
)

func main() {
	cfg, err := config.Load(config.APIGateway)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consul := discovery.Connect(cfg)

	gw := gateway.New(consul.AsLookup(), []gateway.Route{
		{Service: config.BookingService, Prefix: "/api/bookings", Fallback: cfg.BookingServiceURL},
		{Service: config.EventService, Prefix: "/api/events", Fallback: cfg.EventServiceURL},
		{Service: config.PaymentService, Prefix: "/api/payment", Fallback: cfg.PaymentServiceURL},
	})
	go gw.Watch(ctx, 10*time.Second)

	router := gin.Default()
	router.Use(middleware.RequestID())
	gw.Register(router)

	log.Printf("🚀 API Gateway starting on http://0.0.0.0%s", cfg.Addr())
	if err := server.Run(ctx, cfg.Addr(), router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
