package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/matahj/autobus-api/models"
)

var terminalProjection = bson.M{"name": 1, "address": 1, "status": 1}

func (s *Store) CreateBus(ctx context.Context, in models.BusInput) (*models.Bus, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	terminalID, err := s.resolveRef(ctx, "terminal", models.EntityTerminal, collTerminals, in.Terminal)
	if err != nil {
		return nil, err
	}

	now := nowUTC()
	bus := &models.Bus{
		PlateNumber: in.PlateNumber,
		Model:       in.Model,
		Year:        in.Year,
		Active:      in.ActiveOrDefault(),
		Terminal:    terminalID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := s.db.Collection(collBuses).InsertOne(ctx, bus)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &models.UniquenessConflictError{Field: "plate_number", Value: in.PlateNumber}
		}
		return nil, s.storageErr("insert bus", err)
	}

	bus.ID = res.InsertedID.(primitive.ObjectID)
	return bus, nil
}

func (s *Store) ListBuses(ctx context.Context) ([]models.Bus, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.db.Collection(collBuses).Find(ctx, bson.M{})
	if err != nil {
		return nil, s.storageErr("list buses", err)
	}
	defer cursor.Close(ctx)

	buses := []models.Bus{}
	if err := cursor.All(ctx, &buses); err != nil {
		return nil, s.storageErr("decode buses", err)
	}
	return buses, nil
}

func (s *Store) GetBus(ctx context.Context, id string) (*models.Bus, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var bus models.Bus
	if err := s.findByID(ctx, models.EntityBus, collBuses, id, &bus); err != nil {
		return nil, err
	}
	return &bus, nil
}

// GetBusExpanded returns the bus with its terminal inlined as a summary.
func (s *Store) GetBusExpanded(ctx context.Context, id string) (*models.BusExpanded, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var bus models.Bus
	if err := s.findByID(ctx, models.EntityBus, collBuses, id, &bus); err != nil {
		return nil, err
	}

	var terminal models.TerminalSummary
	err := s.summaryByID(ctx, "terminal", models.EntityTerminal, collTerminals,
		bus.Terminal, terminalProjection, &terminal)
	if err != nil {
		return nil, err
	}

	return &models.BusExpanded{
		ID:          bus.ID,
		PlateNumber: bus.PlateNumber,
		Model:       bus.Model,
		Year:        bus.Year,
		Active:      bus.Active,
		Terminal:    terminal,
		CreatedAt:   bus.CreatedAt,
		UpdatedAt:   bus.UpdatedAt,
	}, nil
}
