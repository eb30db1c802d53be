package gateway

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Elie-MK/eventBooking-microservice/internal/discovery"
)

// Route sends every request under Prefix to Service. Fallback is used when
// Consul has no healthy instance.
type Route struct {
	Service  string
	Prefix   string
	Fallback string
}

type Gateway struct {
	lookup discovery.Lookup
	routes []Route
	client *http.Client

	mu       sync.RWMutex
	proxies  map[string]*httputil.ReverseProxy
	services map[string]string
}

// New resolves every route once. lookup may be nil.
func New(lookup discovery.Lookup, routes []Route) *Gateway {
	g := &Gateway{
		lookup:   lookup,
		routes:   routes,
		client:   &http.Client{Timeout: 2 * time.Second},
		proxies:  make(map[string]*httputil.ReverseProxy),
		services: make(map[string]string),
	}
	g.Refresh()
	return g
}

// Refresh re-resolves every route, keeping proxies whose URL did not change.
func (g *Gateway) Refresh() {
	for _, route := range g.routes {
		target := route.Fallback
		if g.lookup != nil {
			u, err := g.lookup.GetServiceURL(route.Service)
			if err != nil {
				log.Printf("⚠️ Service %s not found: %v", route.Service, err)
			} else {
				target = u
			}
		}
		g.updateProxy(route.Service, target)
	}
}

// Watch refreshes on every tick until ctx is done.
func (g *Gateway) Watch(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Refresh()
		}
	}
}

func (g *Gateway) updateProxy(serviceName, serviceURL string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.services[serviceName] == serviceURL {
		return
	}

	target, err := url.Parse(serviceURL)
	if err != nil {
		log.Printf("❌ Invalid URL for %s: %v", serviceName, err)
		return
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("❌ Proxy error for %s: %v", serviceName, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{
			"error": serviceName + " unavailable",
			"kind":  "DEPENDENCY_UNAVAILABLE",
		})
	}

	g.proxies[serviceName] = proxy
	g.services[serviceName] = serviceURL
	log.Printf("✅ Updated route: %s → %s", serviceName, serviceURL)
}

func (g *Gateway) proxyFor(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		g.mu.RLock()
		proxy := g.proxies[serviceName]
		g.mu.RUnlock()

		if proxy == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": serviceName + " unavailable", "kind": "DEPENDENCY_UNAVAILABLE"})
			return
		}
		log.Printf("🔀 Routing %s %s → %s", c.Request.Method, c.Request.URL.Path, serviceName)
		proxy.ServeHTTP(c.Writer, c.Request)
	}
}

// Register mounts the proxied prefixes plus /health and /services.
func (g *Gateway) Register(r gin.IRouter) {
	r.GET("/health", g.HealthCheck)
	r.GET("/services", g.ListServices)
	for _, route := range g.routes {
		handler := g.proxyFor(route.Service)
		r.Any(route.Prefix, handler)
		r.Any(route.Prefix+"/*path", handler)
	}
}

// HealthCheck reports "degraded" when any downstream /health fails.
func (g *Gateway) HealthCheck(c *gin.Context) {
	g.mu.RLock()
	targets := make(map[string]string, len(g.services))
	for name, u := range g.services {
		targets[name] = u
	}
	g.mu.RUnlock()

	statuses := make(map[string]string, len(targets))
	allHealthy := true
	for name, u := range targets {
		if g.probe(c.Request.Context(), u+"/health") {
			statuses[name] = "healthy"
			continue
		}
		statuses[name] = "unhealthy"
		allHealthy = false
	}

	status := "healthy"
	if !allHealthy {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"service":  "api-gateway",
		"services": statuses,
	})
}

func (g *Gateway) probe(ctx context.Context, u string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (g *Gateway) ListServices(c *gin.Context) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	routes := make([]gin.H, 0, len(g.routes))
	for _, route := range g.routes {
		routes = append(routes, gin.H{"prefix": route.Prefix, "service": route.Service, "url": g.services[route.Service]})
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i]["prefix"].(string) < routes[j]["prefix"].(string) })

	c.JSON(http.StatusOK, gin.H{"routes": routes})
}
