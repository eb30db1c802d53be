package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(BookingService)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 8082 {
		t.Errorf("Port = %d, want 8082", cfg.Port)
	}
	if cfg.ServiceID != "booking-service-8082" {
		t.Errorf("ServiceID = %q, want booking-service-8082", cfg.ServiceID)
	}
	if cfg.NotificationQueue != "notification" {
		t.Errorf("NotificationQueue = %q, want notification", cfg.NotificationQueue)
	}
	if cfg.HTTPClientTimeout != 10*time.Second {
		t.Errorf("HTTPClientTimeout = %v, want 10s", cfg.HTTPClientTimeout)
	}
	if cfg.Addr() != ":8082" {
		t.Errorf("Addr() = %q, want :8082", cfg.Addr())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("EVENT_CACHE_TTL", "30s")
	t.Setenv("CONSUL_ENABLED", "false")
	t.Setenv("EVENT_SERVICE_URL", "http://events:8081")

	cfg, err := Load(PaymentService)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Port)
	}
	if cfg.EventCacheTTL != 30*time.Second {
		t.Errorf("EventCacheTTL = %v, want 30s", cfg.EventCacheTTL)
	}
	if cfg.ConsulEnabled {
		t.Error("ConsulEnabled = true, want false")
	}
	if cfg.EventServiceURL != "http://events:8081" {
		t.Errorf("EventServiceURL = %q", cfg.EventServiceURL)
	}
}

func TestLoadRejectsBadValue(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	if _, err := Load(EventService); err == nil {
		t.Fatal("Load() error = nil, want error")
	}
}
