package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/matahj/autobus-api/models"
)

var personProjection = bson.M{"first_names": 1, "last_names": 1, "email": 1}

func (s *Store) CreateDriver(ctx context.Context, in models.DriverInput) (*models.Driver, error) {
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
	driver := &models.Driver{
		FirstNames: in.FirstNames,
		LastNames:  in.LastNames,
		Gender:     in.Gender,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		BirthDate:  bsonTime(in.BirthDate),
		Terminal:   terminalID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := s.db.Collection(collDrivers).InsertOne(ctx, driver)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &models.UniquenessConflictError{Field: "email", Value: in.Email}
		}
		return nil, s.storageErr("insert driver", err)
	}

	driver.ID = res.InsertedID.(primitive.ObjectID)
	return driver, nil
}

func (s *Store) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.db.Collection(collDrivers).Find(ctx, bson.M{})
	if err != nil {
		return nil, s.storageErr("list drivers", err)
	}
	defer cursor.Close(ctx)

	drivers := []models.Driver{}
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, s.storageErr("decode drivers", err)
	}
	return drivers, nil
}

func (s *Store) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var driver models.Driver
	if err := s.findByID(ctx, models.EntityDriver, collDrivers, id, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

// GetDriverExpanded returns the driver with its terminal inlined as a summary.
func (s *Store) GetDriverExpanded(ctx context.Context, id string) (*models.DriverExpanded, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var driver models.Driver
	if err := s.findByID(ctx, models.EntityDriver, collDrivers, id, &driver); err != nil {
		return nil, err
	}

	var terminal models.TerminalSummary
	err := s.summaryByID(ctx, "terminal", models.EntityTerminal, collTerminals,
		driver.Terminal, terminalProjection, &terminal)
	if err != nil {
		return nil, err
	}

	return &models.DriverExpanded{
		ID:         driver.ID,
		FirstNames: driver.FirstNames,
		LastNames:  driver.LastNames,
		Gender:     driver.Gender,
		Email:      driver.Email,
		Phone:      driver.Phone,
		Address:    driver.Address,
		BirthDate:  driver.BirthDate,
		Terminal:   terminal,
		CreatedAt:  driver.CreatedAt,
		UpdatedAt:  driver.UpdatedAt,
	}, nil
}
