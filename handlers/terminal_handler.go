package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type TerminalStore interface {
	CreateTerminal(ctx context.Context, in models.TerminalInput) (*models.Terminal, error)
	ListTerminals(ctx context.Context) ([]models.Terminal, error)
	GetTerminal(ctx context.Context, id string) (*models.Terminal, error)
}

type TerminalHandler struct {
	store TerminalStore
	log   *zap.Logger
}

func NewTerminalHandler(store TerminalStore, log *zap.Logger) *TerminalHandler {
	return &TerminalHandler{store: store, log: log}
}

func (h *TerminalHandler) Register(r *mux.Router) {
	r.HandleFunc("/terminal", h.Create).Methods("POST")
	r.HandleFunc("/terminal", h.List).Methods("GET")
	r.HandleFunc("/terminal/{id}", h.GetByID).Methods("GET")
}

func (h *TerminalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.TerminalInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}

	terminal, err := h.store.CreateTerminal(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, terminal)
}

func (h *TerminalHandler) List(w http.ResponseWriter, r *http.Request) {
	terminals, err := h.store.ListTerminals(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, terminals)
}

func (h *TerminalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if err := noExpand(r); err != nil {
		writeError(w, h.log, err)
		return
	}

	terminal, err := h.store.GetTerminal(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, terminal)
}
