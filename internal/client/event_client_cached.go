package client

import (
	"context"
	"errors"
	"log"

	"github.com/Elie-MK/eventBooking-microservice/internal/cache"
	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

type EventGetter interface {
	GetEvent(ctx context.Context, eventID int64) (*models.Event, error)
}

// CachedEventClient keeps event snapshots in Redis for display. A hit may be
// stale until the event service clears it, so existence checks must call the
// event service directly. Absent events and transport errors are never cached.
type CachedEventClient struct {
	next  EventGetter
	cache cache.Store
}

func NewCachedEventClient(next EventGetter, store cache.Store) *CachedEventClient {
	return &CachedEventClient{next: next, cache: store}
}

func (c *CachedEventClient) GetEvent(ctx context.Context, eventID int64) (*models.Event, error) {
	key := cache.EventSnapshotKey(eventID)

	var event models.Event
	err := c.cache.Get(ctx, key, &event)
	if err == nil {
		log.Printf("📦 Cache HIT: event snapshot %d", eventID)
		return &event, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Printf("⚠️ Cache error: %v", err)
	}

	e, err := c.next.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, e); err != nil {
		log.Printf("⚠️ Failed to cache event snapshot: %v", err)
	}
	return e, nil
}
