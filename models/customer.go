package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is a person who purchases tickets.
type Customer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstNames   string             `bson:"first_names" json:"first_names"`
	LastNames    string             `bson:"last_names" json:"last_names"`
	Email        string             `bson:"email" json:"email"`
	BirthDate    *time.Time         `bson:"birth_date,omitempty" json:"birth_date,omitempty"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// CustomerSummary is the subset of a customer inlined on expansion.
type CustomerSummary struct {
	FirstNames string `bson:"first_names" json:"first_names"`
	LastNames  string `bson:"last_names" json:"last_names"`
	Email      string `bson:"email" json:"email"`
}

type CustomerInput struct {
	FirstNames string     `json:"first_names"`
	LastNames  string     `json:"last_names"`
	Email      string     `json:"email"`
	BirthDate  *time.Time `json:"birth_date"`
	Password   string     `json:"password"`
}

func (in *CustomerInput) Validate() error {
	if err := requiredString("first_names", in.FirstNames, MaxTextLen); err != nil {
		return err
	}
	if err := requiredString("last_names", in.LastNames, MaxTextLen); err != nil {
		return err
	}
	if err := requiredString("email", in.Email, MaxTextLen); err != nil {
		return err
	}
	if err := requiredString("password", in.Password, MaxPasswordLen); err != nil {
		return err
	}
	return nil
}
