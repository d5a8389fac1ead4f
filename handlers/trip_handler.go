package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type TripStore interface {
	CreateTrip(ctx context.Context, in models.TripInput) (*models.Trip, error)
	ListTrips(ctx context.Context) ([]models.Trip, error)
	GetTrip(ctx context.Context, id string) (*models.Trip, error)
	GetTripExpanded(ctx context.Context, id, field string) (*models.TripExpanded, error)
}

type TripHandler struct {
	store TripStore
	log   *zap.Logger
}

func NewTripHandler(store TripStore, log *zap.Logger) *TripHandler {
	return &TripHandler{store: store, log: log}
}

func (h *TripHandler) Register(r *mux.Router) {
	r.HandleFunc("/viaje", h.Create).Methods("POST")
	r.HandleFunc("/viaje", h.List).Methods("GET")
	r.HandleFunc("/viaje/{id}", h.GetByID).Methods("GET")
}

func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.TripInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}

	trip, err := h.store.CreateTrip(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	trips, err := h.store.ListTrips(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

func (h *TripHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if expand := r.URL.Query().Get("expand"); expand != "" {
		trip, err := h.store.GetTripExpanded(r.Context(), id, expand)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, trip)
		return
	}

	trip, err := h.store.GetTrip(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}
