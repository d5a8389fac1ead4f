package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Administrator is a back-office user who schedules trips. Only the bcrypt
// hash of the password is ever stored, and it never leaves the process.
type Administrator struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstNames   string             `bson:"first_names" json:"first_names"`
	LastNames    string             `bson:"last_names" json:"last_names"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// AdministratorSummary is the subset of an administrator inlined on expansion.
type AdministratorSummary struct {
	FirstNames string `bson:"first_names" json:"first_names"`
	LastNames  string `bson:"last_names" json:"last_names"`
	Email      string `bson:"email" json:"email"`
}

type AdministratorInput struct {
	FirstNames string `json:"first_names"`
	LastNames  string `json:"last_names"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

func (in *AdministratorInput) Validate() error {
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
