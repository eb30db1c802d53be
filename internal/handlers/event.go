package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

// EventStore is implemented by db.EventRepository and db.CachedEventRepository.
type EventStore interface {
	GetAll(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	SearchByName(ctx context.Context, name string) ([]models.Event, error)
	Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error)
	Update(ctx context.Context, id int64, req models.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type EventHandler struct {
	store EventStore
}

func NewEventHandler(store EventStore) *EventHandler {
	return &EventHandler{store: store}
}

// Register mounts the event routes. /search is registered before /{id}.
func (h *EventHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/events", h.ListEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/events", h.CreateEvent).Methods(http.MethodPost)
	r.HandleFunc("/api/events/search", h.SearchEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/events/{id:[0-9]+}", h.GetEvent).Methods(http.MethodGet)
	r.HandleFunc("/api/events/{id:[0-9]+}", h.UpdateEvent).Methods(http.MethodPut)
	r.HandleFunc("/api/events/{id:[0-9]+}", h.DeleteEvent).Methods(http.MethodDelete)
}

func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, KindInternal, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	event, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, KindInternal, err.Error())
		return
	}
	if event == nil {
		writeError(w, http.StatusNotFound, KindNotFound, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, KindInvalidRequest, "query parameter name is required")
		return
	}

	events, err := h.store.SearchByName(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, KindInternal, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, KindInvalidRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Location) == "" {
		writeError(w, http.StatusBadRequest, KindInvalidRequest, "name and location are required")
		return
	}

	event, err := h.store.Create(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, KindInternal, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	var req models.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, KindInvalidRequest, "invalid request body: "+err.Error())
		return
	}

	event, err := h.store.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, KindInternal, err.Error())
		return
	}
	if event == nil {
		writeError(w, http.StatusNotFound, KindNotFound, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, KindInternal, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, KindNotFound, "event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func eventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, KindInvalidRequest, "invalid event ID")
		return 0, false
	}
	return id, true
}
