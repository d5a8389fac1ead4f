package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type DriverStore interface {
	CreateDriver(ctx context.Context, in models.DriverInput) (*models.Driver, error)
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	GetDriver(ctx context.Context, id string) (*models.Driver, error)
	GetDriverExpanded(ctx context.Context, id string) (*models.DriverExpanded, error)
}

type DriverHandler struct {
	store DriverStore
	log   *zap.Logger
}

func NewDriverHandler(store DriverStore, log *zap.Logger) *DriverHandler {
	return &DriverHandler{store: store, log: log}
}

func (h *DriverHandler) Register(r *mux.Router) {
	r.HandleFunc("/conductor", h.Create).Methods("POST")
	r.HandleFunc("/conductor", h.List).Methods("GET")
	r.HandleFunc("/conductor/{id}", h.GetByID).Methods("GET")
}

func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.DriverInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}

	driver, err := h.store.CreateDriver(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, driver)
}

func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.store.ListDrivers(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, drivers)
}

func (h *DriverHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	switch expand := r.URL.Query().Get("expand"); expand {
	case "":
		driver, err := h.store.GetDriver(r.Context(), id)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, driver)
	case "terminal":
		driver, err := h.store.GetDriverExpanded(r.Context(), id)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, driver)
	default:
		writeError(w, h.log, &models.ValidationError{
			Field:   "expand",
			Rule:    "unknown_field",
			Message: "el campo indicado no es una referencia",
		})
	}
}
