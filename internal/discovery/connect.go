package discovery

import (
	"log"

	"github.com/Elie-MK/eventBooking-microservice/internal/config"
)

// Connect returns nil when Consul is disabled or unreachable; callers then
// rely on the static service URLs.
func Connect(cfg config.Config) *ConsulClient {
	if !cfg.ConsulEnabled {
		log.Println("ℹ️ Consul disabled, using static service URLs")
		return nil
	}

	consul, err := NewConsulClient(cfg.ConsulHost, cfg.ConsulPort)
	if err != nil {
		log.Printf("⚠️ Failed to connect to Consul, using static service URLs: %v", err)
		return nil
	}
	return consul
}

// AsLookup avoids handing a typed nil to code that checks for a nil Lookup.
func (c *ConsulClient) AsLookup() Lookup {
	if c == nil {
		return nil
	}
	return c
}

// RegisterSelf registers the running service and returns its deregistration.
// It is a no-op on a nil client.
func (c *ConsulClient) RegisterSelf(cfg config.Config, tags ...string) func() {
	if c == nil {
		return func() {}
	}

	err := c.Register(ServiceConfig{
		Name: cfg.ServiceName,
		ID:   cfg.ServiceID,
		Port: cfg.Port,
		Tags: tags,
	})
	if err != nil {
		log.Printf("⚠️ %v", err)
		return func() {}
	}

	return func() {
		if err := c.Deregister(cfg.ServiceID); err != nil {
			log.Printf("⚠️ %v", err)
		}
	}
}
