package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type BusStore interface {
	CreateBus(ctx context.Context, in models.BusInput) (*models.Bus, error)
	ListBuses(ctx context.Context) ([]models.Bus, error)
	GetBusExpanded(ctx context.Context, id string) (*models.BusExpanded, error)
}

type BusHandler struct {
	store BusStore
	log   *zap.Logger
}

func NewBusHandler(store BusStore, log *zap.Logger) *BusHandler {
	return &BusHandler{store: store, log: log}
}

func (h *BusHandler) Register(r *mux.Router) {
	r.HandleFunc("/autobus", h.Create).Methods("POST")
	r.HandleFunc("/autobus", h.List).Methods("GET")
	r.HandleFunc("/autobus/{id}", h.GetByID).Methods("GET")
}

func (h *BusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.BusInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}

	bus, err := h.store.CreateBus(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, bus)
}

func (h *BusHandler) List(w http.ResponseWriter, r *http.Request) {
	buses, err := h.store.ListBuses(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, buses)
}

// GetByID always inlines the terminal. The expand parameter is accepted for
// symmetry with the other types but "terminal" is the only reference a bus
// carries.
func (h *BusHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if expand := r.URL.Query().Get("expand"); expand != "" && expand != "terminal" {
		writeError(w, h.log, &models.ValidationError{
			Field:   "expand",
			Rule:    "unknown_field",
			Message: "el campo indicado no es una referencia",
		})
		return
	}

	bus, err := h.store.GetBusExpanded(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, bus)
}
