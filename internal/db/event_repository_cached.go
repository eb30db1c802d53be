package db

import (
	"context"
	"errors"
	"log"

	"github.com/Elie-MK/eventBooking-microservice/internal/cache"
	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

// CachedEventRepository also clears the snapshots other services keep, so
// they must share this Redis.
type CachedEventRepository struct {
	repo  *EventRepository
	cache cache.Store
}

func NewCachedEventRepository(repo *EventRepository, cache cache.Store) *CachedEventRepository {
	return &CachedEventRepository{
		repo:  repo,
		cache: cache,
	}
}

func (r *CachedEventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.cache.Get(ctx, cache.AllEventsKey, &events)
	if err == nil {
		log.Println("📦 Cache HIT: all events")
		return events, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Printf("⚠️ Cache error: %v", err)
	}

	log.Println("💾 Cache MISS: all events - fetching from DB")
	events, err = r.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cache.AllEventsKey, events); err != nil {
		log.Printf("⚠️ Failed to cache events: %v", err)
	}
	return events, nil
}

// GetByID does not cache absence, so a newly created event is visible at once.
func (r *CachedEventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	key := cache.EventKey(id)

	var event models.Event
	err := r.cache.Get(ctx, key, &event)
	if err == nil {
		log.Printf("📦 Cache HIT: event %d", id)
		return &event, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Printf("⚠️ Cache error: %v", err)
	}

	log.Printf("💾 Cache MISS: event %d - fetching from DB", id)
	e, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}

	if err := r.cache.Set(ctx, key, e); err != nil {
		log.Printf("⚠️ Failed to cache event: %v", err)
	}
	return e, nil
}

func (r *CachedEventRepository) SearchByName(ctx context.Context, name string) ([]models.Event, error) {
	return r.repo.SearchByName(ctx, name)
}

func (r *CachedEventRepository) Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	event, err := r.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, cache.AllEventsKey)
	return event, nil
}

func (r *CachedEventRepository) Update(ctx context.Context, id int64, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := r.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if event != nil {
		r.invalidate(ctx, cache.EventKeys(id)...)
	}
	return event, nil
}

func (r *CachedEventRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		r.invalidate(ctx, cache.EventKeys(id)...)
	}
	return deleted, nil
}

func (r *CachedEventRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.Delete(ctx, keys...); err != nil {
		log.Printf("⚠️ Failed to invalidate cache: %v", err)
		return
	}
	log.Printf("🗑️ Cache invalidated: %v", keys)
}
