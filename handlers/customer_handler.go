package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type CustomerStore interface {
	CreateCustomer(ctx context.Context, in models.CustomerInput) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
}

type CustomerHandler struct {
	store CustomerStore
	log   *zap.Logger
}

func NewCustomerHandler(store CustomerStore, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{store: store, log: log}
}

func (h *CustomerHandler) Register(r *mux.Router) {
	r.HandleFunc("/cliente", h.Create).Methods("POST")
	r.HandleFunc("/cliente", h.List).Methods("GET")
	r.HandleFunc("/cliente/{id}", h.GetByID).Methods("GET")
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CustomerInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}

	customer, err := h.store.CreateCustomer(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.ListCustomers(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if err := noExpand(r); err != nil {
		writeError(w, h.log, err)
		return
	}

	customer, err := h.store.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}
