package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type fakeTicketStore struct {
	created   *models.Ticket
	createErr error
	tickets   []models.Ticket
	listErr   error
	got       *models.Ticket
	expanded  *models.TicketExpanded
	getErr    error
}

func (f *fakeTicketStore) CreateTicket(ctx context.Context, in models.TicketInput) (*models.Ticket, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeTicketStore) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	return f.tickets, f.listErr
}

func (f *fakeTicketStore) GetTicket(ctx context.Context, id string) (*models.Ticket, error) {
	return f.got, f.getErr
}

func (f *fakeTicketStore) GetTicketExpanded(ctx context.Context, id, field string) (*models.TicketExpanded, error) {
	if field != "customer" && field != "trip" {
		return nil, &models.ValidationError{Field: "expand", Rule: "unknown_field", Message: "el campo indicado no es una referencia"}
	}
	return f.expanded, f.getErr
}

func ticketRouter(store TicketStore) *mux.Router {
	r := mux.NewRouter()
	NewTicketHandler(store, zap.NewNop()).Register(r)
	return r
}

func sampleTicket() *models.Ticket {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &models.Ticket{
		ID:         primitive.NewObjectID(),
		SeatNumber: 12,
		Customer:   primitive.NewObjectID(),
		Trip:       primitive.NewObjectID(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestTicketCreate_Success(t *testing.T) {
	ticket := sampleTicket()
	r := ticketRouter(&fakeTicketStore{created: ticket})

	rec := doRequest(t, r, http.MethodPost, "/boleto",
		`{"seat_number":12,"customer":"`+ticket.Customer.Hex()+`","trip":"`+ticket.Trip.Hex()+`"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestTicketCreate_SeatOutOfRange(t *testing.T) {
	r := ticketRouter(&fakeTicketStore{created: sampleTicket()})

	rec := doRequest(t, r, http.MethodPost, "/boleto",
		`{"seat_number":41,"customer":"6569d3a1e5b0f2a4c8d9e001","trip":"6569d3a1e5b0f2a4c8d9e002"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeErrorBody(t, rec); body.Field != "seat_number" {
		t.Fatalf("expected failing field seat_number, got %q", body.Field)
	}
}

func TestTicketCreate_NoSeatsAvailable(t *testing.T) {
	r := ticketRouter(&fakeTicketStore{createErr: models.ErrNoSeatsAvailable})

	rec := doRequest(t, r, http.MethodPost, "/boleto",
		`{"seat_number":5,"customer":"6569d3a1e5b0f2a4c8d9e001","trip":"6569d3a1e5b0f2a4c8d9e002"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("a sold-out trip must reject the ticket with 409, got %d", rec.Code)
	}
}

func TestTicketCreate_SeatTaken(t *testing.T) {
	r := ticketRouter(&fakeTicketStore{
		createErr: &models.UniquenessConflictError{Field: "seat_number"},
	})

	rec := doRequest(t, r, http.MethodPost, "/boleto",
		`{"seat_number":5,"customer":"6569d3a1e5b0f2a4c8d9e001","trip":"6569d3a1e5b0f2a4c8d9e002"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestTicketCreate_TripDoesNotExist(t *testing.T) {
	r := ticketRouter(&fakeTicketStore{
		createErr: &models.ReferenceNotFoundError{Field: "trip", Entity: models.EntityTrip, ID: "x"},
	})

	rec := doRequest(t, r, http.MethodPost, "/boleto",
		`{"seat_number":5,"customer":"6569d3a1e5b0f2a4c8d9e001","trip":"6569d3a1e5b0f2a4c8d9e002"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeErrorBody(t, rec); body.Error != "El viaje no existe." {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestTicketGet_ExpandCustomer(t *testing.T) {
	ticket := sampleTicket()
	r := ticketRouter(&fakeTicketStore{expanded: &models.TicketExpanded{
		ID:         ticket.ID,
		SeatNumber: ticket.SeatNumber,
		Customer:   models.CustomerSummary{FirstNames: "Luis", LastNames: "Soto", Email: "luis@example.com"},
		Trip:       ticket.Trip.Hex(),
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  ticket.UpdatedAt,
	}})

	rec := doRequest(t, r, http.MethodGet, "/boleto/"+ticket.ID.Hex()+"?expand=customer", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	customer, ok := payload["customer"].(map[string]any)
	if !ok {
		t.Fatalf("customer should be inlined, got %T", payload["customer"])
	}
	if customer["email"] != "luis@example.com" {
		t.Fatalf("unexpected customer summary: %v", customer)
	}
	if _, isString := payload["trip"].(string); !isString {
		t.Fatal("unexpanded trip reference should stay a hex id")
	}
}

func TestTicketGet_UnknownExpandField(t *testing.T) {
	r := ticketRouter(&fakeTicketStore{})

	rec := doRequest(t, r, http.MethodGet, "/boleto/6569d3a1e5b0f2a4c8d9e001?expand=bus", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
