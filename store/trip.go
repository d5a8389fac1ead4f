package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/matahj/autobus-api/models"
)

var (
	busProjection  = bson.M{"plate_number": 1, "model": 1, "year": 1}
	tripProjection = bson.M{"departure_date": 1, "departure_time": 1, "price": 1}
)

func (s *Store) CreateTrip(ctx context.Context, in models.TripInput) (*models.Trip, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	origin, err := s.resolveRef(ctx, "origin_terminal", models.EntityTerminal, collTerminals, in.OriginTerminal)
	if err != nil {
		return nil, err
	}
	destination, err := s.resolveRef(ctx, "destination_terminal", models.EntityTerminal, collTerminals, in.DestinationTerminal)
	if err != nil {
		return nil, err
	}
	busID, err := s.resolveRef(ctx, "bus", models.EntityBus, collBuses, in.Bus)
	if err != nil {
		return nil, err
	}
	driverID, err := s.resolveRef(ctx, "driver", models.EntityDriver, collDrivers, in.Driver)
	if err != nil {
		return nil, err
	}
	adminID, err := s.resolveRef(ctx, "administrator", models.EntityAdministrator, collAdministrators, in.Administrator)
	if err != nil {
		return nil, err
	}

	now := nowUTC()
	trip := &models.Trip{
		AvailableSeats:      in.SeatsOrDefault(),
		DepartureDate:       bsonTime(in.DepartureDate),
		DepartureTime:       bsonTime(in.DepartureTime),
		Price:               *in.Price,
		OriginTerminal:      origin,
		DestinationTerminal: destination,
		Bus:                 busID,
		Driver:              driverID,
		Administrator:       adminID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	res, err := s.db.Collection(collTrips).InsertOne(ctx, trip)
	if err != nil {
		return nil, s.storageErr("insert trip", err)
	}

	trip.ID = res.InsertedID.(primitive.ObjectID)
	return trip, nil
}

func (s *Store) ListTrips(ctx context.Context) ([]models.Trip, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.db.Collection(collTrips).Find(ctx, bson.M{})
	if err != nil {
		return nil, s.storageErr("list trips", err)
	}
	defer cursor.Close(ctx)

	trips := []models.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, s.storageErr("decode trips", err)
	}
	return trips, nil
}

func (s *Store) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var trip models.Trip
	if err := s.findByID(ctx, models.EntityTrip, collTrips, id, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetTripExpanded returns the trip with the named reference field inlined as
// a summary; the remaining reference fields stay hex ids.
func (s *Store) GetTripExpanded(ctx context.Context, id, field string) (*models.TripExpanded, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var trip models.Trip
	if err := s.findByID(ctx, models.EntityTrip, collTrips, id, &trip); err != nil {
		return nil, err
	}

	expanded := &models.TripExpanded{
		ID:                  trip.ID,
		AvailableSeats:      trip.AvailableSeats,
		DepartureDate:       trip.DepartureDate,
		DepartureTime:       trip.DepartureTime,
		Price:               trip.Price,
		OriginTerminal:      trip.OriginTerminal.Hex(),
		DestinationTerminal: trip.DestinationTerminal.Hex(),
		Bus:                 trip.Bus.Hex(),
		Driver:              trip.Driver.Hex(),
		Administrator:       trip.Administrator.Hex(),
		CreatedAt:           trip.CreatedAt,
		UpdatedAt:           trip.UpdatedAt,
	}

	switch field {
	case "origin_terminal":
		var terminal models.TerminalSummary
		if err := s.summaryByID(ctx, field, models.EntityTerminal, collTerminals, trip.OriginTerminal, terminalProjection, &terminal); err != nil {
			return nil, err
		}
		expanded.OriginTerminal = terminal
	case "destination_terminal":
		var terminal models.TerminalSummary
		if err := s.summaryByID(ctx, field, models.EntityTerminal, collTerminals, trip.DestinationTerminal, terminalProjection, &terminal); err != nil {
			return nil, err
		}
		expanded.DestinationTerminal = terminal
	case "bus":
		var bus models.BusSummary
		if err := s.summaryByID(ctx, field, models.EntityBus, collBuses, trip.Bus, busProjection, &bus); err != nil {
			return nil, err
		}
		expanded.Bus = bus
	case "driver":
		var driver models.DriverSummary
		if err := s.summaryByID(ctx, field, models.EntityDriver, collDrivers, trip.Driver, personProjection, &driver); err != nil {
			return nil, err
		}
		expanded.Driver = driver
	case "administrator":
		var admin models.AdministratorSummary
		if err := s.summaryByID(ctx, field, models.EntityAdministrator, collAdministrators, trip.Administrator, personProjection, &admin); err != nil {
			return nil, err
		}
		expanded.Administrator = admin
	default:
		return nil, &models.ValidationError{
			Field:   "expand",
			Rule:    "unknown_field",
			Message: "el campo indicado no es una referencia",
		}
	}

	return expanded, nil
}
