package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

// CreateTicket reserves one seat on one trip. The trip's seat counter is
// decremented with a guarded update before the ticket is inserted, so it can
// never go below zero; the compound (trip, seat_number) unique index keeps a
// seat from being sold twice. Coordination is left to the database, there is
// no locking in the process.
func (s *Store) CreateTicket(ctx context.Context, in models.TicketInput) (*models.Ticket, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	customerID, err := s.resolveRef(ctx, "customer", models.EntityCustomer, collCustomers, in.Customer)
	if err != nil {
		return nil, err
	}
	tripID, err := s.resolveRef(ctx, "trip", models.EntityTrip, collTrips, in.Trip)
	if err != nil {
		return nil, err
	}

	now := nowUTC()
	err = s.db.Collection(collTrips).FindOneAndUpdate(ctx,
		bson.M{"_id": tripID, "available_seats": bson.M{"$gt": 0}},
		bson.M{
			"$inc": bson.M{"available_seats": -1},
			"$set": bson.M{"updated_at": now},
		}).Err()
	if err == mongo.ErrNoDocuments {
		// The trip exists (resolved above), its counter is at zero.
		return nil, models.ErrNoSeatsAvailable
	}
	if err != nil {
		return nil, s.storageErr("reserve seat", err)
	}

	ticket := &models.Ticket{
		SeatNumber: in.SeatNumber,
		Customer:   customerID,
		Trip:       tripID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := s.db.Collection(collTickets).InsertOne(ctx, ticket)
	if err != nil {
		s.releaseSeat(tripID)
		if mongo.IsDuplicateKeyError(err) {
			return nil, &models.UniquenessConflictError{Field: "seat_number"}
		}
		return nil, s.storageErr("insert ticket", err)
	}

	ticket.ID = res.InsertedID.(primitive.ObjectID)
	return ticket, nil
}

// releaseSeat compensates the seat decrement after a failed ticket insert.
// It runs on a fresh context so it still executes when the request's own
// deadline has expired.
func (s *Store) releaseSeat(tripID primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	_, err := s.db.Collection(collTrips).UpdateByID(ctx, tripID,
		bson.M{
			"$inc": bson.M{"available_seats": 1},
			"$set": bson.M{"updated_at": nowUTC()},
		})
	if err != nil {
		s.log.Error("failed to release reserved seat",
			zap.String("trip", tripID.Hex()),
			zap.Error(err))
	}
}

func (s *Store) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.db.Collection(collTickets).Find(ctx, bson.M{})
	if err != nil {
		return nil, s.storageErr("list tickets", err)
	}
	defer cursor.Close(ctx)

	tickets := []models.Ticket{}
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, s.storageErr("decode tickets", err)
	}
	return tickets, nil
}

func (s *Store) GetTicket(ctx context.Context, id string) (*models.Ticket, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var ticket models.Ticket
	if err := s.findByID(ctx, models.EntityTicket, collTickets, id, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetTicketExpanded returns the ticket with the named reference field inlined
// as a summary.
func (s *Store) GetTicketExpanded(ctx context.Context, id, field string) (*models.TicketExpanded, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var ticket models.Ticket
	if err := s.findByID(ctx, models.EntityTicket, collTickets, id, &ticket); err != nil {
		return nil, err
	}

	expanded := &models.TicketExpanded{
		ID:         ticket.ID,
		SeatNumber: ticket.SeatNumber,
		Customer:   ticket.Customer.Hex(),
		Trip:       ticket.Trip.Hex(),
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  ticket.UpdatedAt,
	}

	switch field {
	case "customer":
		var customer models.CustomerSummary
		if err := s.summaryByID(ctx, field, models.EntityCustomer, collCustomers, ticket.Customer, personProjection, &customer); err != nil {
			return nil, err
		}
		expanded.Customer = customer
	case "trip":
		var trip models.TripSummary
		if err := s.summaryByID(ctx, field, models.EntityTrip, collTrips, ticket.Trip, tripProjection, &trip); err != nil {
			return nil, err
		}
		expanded.Trip = trip
	default:
		return nil, &models.ValidationError{
			Field:   "expand",
			Rule:    "unknown_field",
			Message: "el campo indicado no es una referencia",
		}
	}

	return expanded, nil
}
