package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/matahj/autobus-api/models"
)

func (s *Store) CreateTerminal(ctx context.Context, in models.TerminalInput) (*models.Terminal, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	now := nowUTC()
	terminal := &models.Terminal{
		Name:      in.Name,
		Address:   in.Address,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := s.db.Collection(collTerminals).InsertOne(ctx, terminal)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &models.UniquenessConflictError{Field: "name", Value: in.Name}
		}
		return nil, s.storageErr("insert terminal", err)
	}

	terminal.ID = res.InsertedID.(primitive.ObjectID)
	return terminal, nil
}

func (s *Store) ListTerminals(ctx context.Context) ([]models.Terminal, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.db.Collection(collTerminals).Find(ctx, bson.M{})
	if err != nil {
		return nil, s.storageErr("list terminals", err)
	}
	defer cursor.Close(ctx)

	terminals := []models.Terminal{}
	if err := cursor.All(ctx, &terminals); err != nil {
		return nil, s.storageErr("decode terminals", err)
	}
	return terminals, nil
}

func (s *Store) GetTerminal(ctx context.Context, id string) (*models.Terminal, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var terminal models.Terminal
	if err := s.findByID(ctx, models.EntityTerminal, collTerminals, id, &terminal); err != nil {
		return nil, err
	}
	return &terminal, nil
}
