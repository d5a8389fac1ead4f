package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/matahj/autobus-api/models"
)

func (s *Store) CreateAdministrator(ctx context.Context, in models.AdministratorInput) (*models.Administrator, error) {
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
	admin := &models.Administrator{
		FirstNames:   in.FirstNames,
		LastNames:    in.LastNames,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := s.db.Collection(collAdministrators).InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &models.UniquenessConflictError{Field: "email", Value: in.Email}
		}
		return nil, s.storageErr("insert administrator", err)
	}

	admin.ID = res.InsertedID.(primitive.ObjectID)
	return admin, nil
}

func (s *Store) ListAdministrators(ctx context.Context) ([]models.Administrator, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.db.Collection(collAdministrators).Find(ctx, bson.M{})
	if err != nil {
		return nil, s.storageErr("list administrators", err)
	}
	defer cursor.Close(ctx)

	admins := []models.Administrator{}
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, s.storageErr("decode administrators", err)
	}
	return admins, nil
}

func (s *Store) GetAdministrator(ctx context.Context, id string) (*models.Administrator, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var admin models.Administrator
	if err := s.findByID(ctx, models.EntityAdministrator, collAdministrators, id, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
