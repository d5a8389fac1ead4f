package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Driver is a bus driver attached to a home terminal.
type Driver struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstNames string             `bson:"first_names" json:"first_names"`
	LastNames  string             `bson:"last_names" json:"last_names"`
	Gender     string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Address    string             `bson:"address" json:"address"`
	BirthDate  time.Time          `bson:"birth_date" json:"birth_date"`
	Terminal   primitive.ObjectID `bson:"terminal" json:"terminal"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// DriverSummary is the subset of a driver inlined on expansion.
type DriverSummary struct {
	FirstNames string `bson:"first_names" json:"first_names"`
	LastNames  string `bson:"last_names" json:"last_names"`
	Email      string `bson:"email" json:"email"`
}

// DriverExpanded is a driver with its terminal reference expanded.
type DriverExpanded struct {
	ID         primitive.ObjectID `json:"_id"`
	FirstNames string             `json:"first_names"`
	LastNames  string             `json:"last_names"`
	Gender     string             `json:"gender,omitempty"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Address    string             `json:"address"`
	BirthDate  time.Time          `json:"birth_date"`
	Terminal   TerminalSummary    `json:"terminal"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type DriverInput struct {
	FirstNames string    `json:"first_names"`
	LastNames  string    `json:"last_names"`
	Gender     string    `json:"gender"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	BirthDate  time.Time `json:"birth_date"`
	Terminal   string    `json:"terminal"`
}

func (in *DriverInput) Validate() error {
	if err := requiredString("first_names", in.FirstNames, MaxTextLen); err != nil {
		return err
	}
	if err := requiredString("last_names", in.LastNames, MaxTextLen); err != nil {
		return err
	}
	if err := optionalString("gender", in.Gender, MaxGenderLen); err != nil {
		return err
	}
	if err := requiredString("email", in.Email, MaxTextLen); err != nil {
		return err
	}
	if err := requiredString("phone", in.Phone, MaxTextLen); err != nil {
		return err
	}
	if err := requiredString("address", in.Address, MaxTextLen); err != nil {
		return err
	}
	if in.BirthDate.IsZero() {
		return &ValidationError{Field: "birth_date", Rule: "required", Message: "el campo es obligatorio"}
	}
	if err := requiredRef("terminal", in.Terminal); err != nil {
		return err
	}
	return nil
}
