package discovery

import (
	"fmt"
	"log"
	"net"
	"sync/atomic"

	"github.com/hashicorp/consul/api"
)

type ConsulClient struct {
	client *api.Client
	next   atomic.Uint64
}

type ServiceConfig struct {
	Name string
	ID   string
	// Address defaults to the outbound IP of this machine.
	Address string
	Port    int
	Tags    []string
}

func NewConsulClient(host string, port int) (*ConsulClient, error) {
	config := api.DefaultConfig()
	config.Address = fmt.Sprintf("%s:%d", host, port)

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Consul client: %w", err)
	}

	if _, err := client.Agent().Self(); err != nil {
		return nil, fmt.Errorf("failed to connect to Consul: %w", err)
	}

	log.Println("✅ Connected to Consul")
	return &ConsulClient{client: client}, nil
}

// outboundIP is the address other hosts can reach this process on.
func outboundIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// Register announces the service with an HTTP check against its /health.
func (c *ConsulClient) Register(cfg ServiceConfig) error {
	address := cfg.Address
	if address == "" {
		address = outboundIP()
	}

	registration := &api.AgentServiceRegistration{
		ID:      cfg.ID,
		Name:    cfg.Name,
		Port:    cfg.Port,
		Address: address,
		Tags:    cfg.Tags,
		Check: &api.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", address, cfg.Port),
			Interval:                       "10s",
			Timeout:                        "5s",
			DeregisterCriticalServiceAfter: "30s",
		},
	}

	if err := c.client.Agent().ServiceRegister(registration); err != nil {
		return fmt.Errorf("failed to register %s: %w", cfg.Name, err)
	}

	log.Printf("✅ Registered %s (ID: %s) at %s:%d", cfg.Name, cfg.ID, address, cfg.Port)
	return nil
}

func (c *ConsulClient) Deregister(serviceID string) error {
	if err := c.client.Agent().ServiceDeregister(serviceID); err != nil {
		return fmt.Errorf("failed to deregister %s: %w", serviceID, err)
	}

	log.Printf("✅ Deregistered %s", serviceID)
	return nil
}

// GetServiceURL picks a passing instance of serviceName, rotating between
// instances on successive calls.
func (c *ConsulClient) GetServiceURL(serviceName string) (string, error) {
	entries, _, err := c.client.Health().Service(serviceName, "", true, nil)
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", serviceName, err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("no healthy instances of %s found", serviceName)
	}

	svc := entries[int(c.next.Add(1)%uint64(len(entries)))].Service
	address := svc.Address
	if address == "" {
		address = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", address, svc.Port), nil
}

// GetAllServices returns every catalog service with its tags.
func (c *ConsulClient) GetAllServices() (map[string][]string, error) {
	services, _, err := c.client.Catalog().Services(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	return services, nil
}

// Ping checks that the cluster has a leader.
func (c *ConsulClient) Ping() error {
	if _, err := c.client.Status().Leader(); err != nil {
		return fmt.Errorf("consul unreachable: %w", err)
	}
	return nil
}
