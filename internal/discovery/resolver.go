package discovery

import (
	"log"
	"sync"
	"time"
)

// Lookup is implemented by ConsulClient.
type Lookup interface {
	GetServiceURL(serviceName string) (string, error)
}

// Resolver caches the URL of one service for ttl and falls back to a static
// URL when Consul is disabled or has no healthy instance.
type Resolver struct {
	lookup   Lookup
	service  string
	fallback string
	ttl      time.Duration

	mu      sync.Mutex
	url     string
	expires time.Time
}

// NewResolver accepts a nil lookup, in which case fallback is always used.
func NewResolver(lookup Lookup, service, fallback string, ttl time.Duration) *Resolver {
	return &Resolver{
		lookup:   lookup,
		service:  service,
		fallback: fallback,
		ttl:      ttl,
	}
}

func (r *Resolver) URL() string {
	if r.lookup == nil {
		return r.fallback
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.url != "" && time.Now().Before(r.expires) {
		return r.url
	}

	url, err := r.lookup.GetServiceURL(r.service)
	if err != nil {
		log.Printf("⚠️ Service %s not found in Consul, using %s: %v", r.service, r.fallback, err)
		url = r.fallback
	}
	r.url = url
	r.expires = time.Now().Add(r.ttl)
	return url
}
