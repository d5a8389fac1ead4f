package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type TicketStore interface {
	CreateTicket(ctx context.Context, in models.TicketInput) (*models.Ticket, error)
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	GetTicket(ctx context.Context, id string) (*models.Ticket, error)
	GetTicketExpanded(ctx context.Context, id, field string) (*models.TicketExpanded, error)
}

type TicketHandler struct {
	store TicketStore
	log   *zap.Logger
}

func NewTicketHandler(store TicketStore, log *zap.Logger) *TicketHandler {
	return &TicketHandler{store: store, log: log}
}

func (h *TicketHandler) Register(r *mux.Router) {
	r.HandleFunc("/boleto", h.Create).Methods("POST")
	r.HandleFunc("/boleto", h.List).Methods("GET")
	r.HandleFunc("/boleto/{id}", h.GetByID).Methods("GET")
}

func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.TicketInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}

	ticket, err := h.store.CreateTicket(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.store.ListTickets(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (h *TicketHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if expand := r.URL.Query().Get("expand"); expand != "" {
		ticket, err := h.store.GetTicketExpanded(r.Context(), id, expand)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, ticket)
		return
	}

	ticket, err := h.store.GetTicket(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}
