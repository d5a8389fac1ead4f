package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Terminal is a physical bus station location.
type Terminal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address" json:"address"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// TerminalSummary is the subset of a terminal inlined when a reference to it
// is expanded. The identifier is deliberately left out.
type TerminalSummary struct {
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
	Status  string `bson:"status" json:"status"`
}

type TerminalInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

func (in *TerminalInput) Validate() error {
	if err := requiredString("name", in.Name, MaxTextLen); err != nil {
		return err
	}
	if err := requiredString("address", in.Address, MaxTextLen); err != nil {
		return err
	}
	if err := requiredString("status", in.Status, MaxTextLen); err != nil {
		return err
	}
	return nil
}
