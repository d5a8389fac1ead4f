package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/matahj/autobus-api/models"
)

func (s *Store) CreateCustomer(ctx context.Context, in models.CustomerInput) (*models.Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, s.storageErr("hash password", err)
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	now := nowUTC()
	customer := &models.Customer{
		FirstNames:   in.FirstNames,
		LastNames:    in.LastNames,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.BirthDate != nil {
		birth := bsonTime(*in.BirthDate)
		customer.BirthDate = &birth
	}

	res, err := s.db.Collection(collCustomers).InsertOne(ctx, customer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &models.UniquenessConflictError{Field: "email", Value: in.Email}
		}
		return nil, s.storageErr("insert customer", err)
	}

	customer.ID = res.InsertedID.(primitive.ObjectID)
	return customer, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.db.Collection(collCustomers).Find(ctx, bson.M{})
	if err != nil {
		return nil, s.storageErr("list customers", err)
	}
	defer cursor.Close(ctx)

	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, s.storageErr("decode customers", err)
	}
	return customers, nil
}

func (s *Store) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var customer models.Customer
	if err := s.findByID(ctx, models.EntityCustomer, collCustomers, id, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}
