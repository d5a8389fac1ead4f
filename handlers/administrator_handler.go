package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type AdministratorStore interface {
	CreateAdministrator(ctx context.Context, in models.AdministratorInput) (*models.Administrator, error)
	ListAdministrators(ctx context.Context) ([]models.Administrator, error)
	GetAdministrator(ctx context.Context, id string) (*models.Administrator, error)
}

type AdministratorHandler struct {
	store AdministratorStore
	log   *zap.Logger
}

func NewAdministratorHandler(store AdministratorStore, log *zap.Logger) *AdministratorHandler {
	return &AdministratorHandler{store: store, log: log}
}

func (h *AdministratorHandler) Register(r *mux.Router) {
	r.HandleFunc("/administrador", h.Create).Methods("POST")
	r.HandleFunc("/administrador", h.List).Methods("GET")
	r.HandleFunc("/administrador/{id}", h.GetByID).Methods("GET")
}

func (h *AdministratorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.AdministratorInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}

	admin, err := h.store.CreateAdministrator(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, admin)
}

func (h *AdministratorHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.store.ListAdministrators(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, admins)
}

func (h *AdministratorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if err := noExpand(r); err != nil {
		writeError(w, h.log, err)
		return
	}

	admin, err := h.store.GetAdministrator(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}
