package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bus is a vehicle assigned to a home terminal.
type Bus struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PlateNumber string             `bson:"plate_number" json:"plate_number"`
	Model       string             `bson:"model" json:"model"`
	Year        string             `bson:"year" json:"year"`
	Active      bool               `bson:"active" json:"active"`
	Terminal    primitive.ObjectID `bson:"terminal" json:"terminal"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// BusSummary is the subset of a bus inlined on expansion.
type BusSummary struct {
	PlateNumber string `bson:"plate_number" json:"plate_number"`
	Model       string `bson:"model" json:"model"`
	Year        string `bson:"year" json:"year"`
}

// BusExpanded is a bus with its terminal reference replaced by the referenced
// terminal's summary.
type BusExpanded struct {
	ID          primitive.ObjectID `json:"_id"`
	PlateNumber string             `json:"plate_number"`
	Model       string             `json:"model"`
	Year        string             `json:"year"`
	Active      bool               `json:"active"`
	Terminal    TerminalSummary    `json:"terminal"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type BusInput struct {
	PlateNumber string `json:"plate_number"`
	Model       string `json:"model"`
	Year        string `json:"year"`
	Active      *bool  `json:"active"`
	Terminal    string `json:"terminal"`
}

func (in *BusInput) Validate() error {
	if err := requiredString("plate_number", in.PlateNumber, MaxPlateLen); err != nil {
		return err
	}
	if err := requiredString("model", in.Model, MaxTextLen); err != nil {
		return err
	}
	if err := requiredString("year", in.Year, MaxYearLen); err != nil {
		return err
	}
	if err := requiredRef("terminal", in.Terminal); err != nil {
		return err
	}
	return nil
}

// ActiveOrDefault returns the active flag, defaulting to true when the field
// was absent from the request.
func (in *BusInput) ActiveOrDefault() bool {
	if in.Active == nil {
		return true
	}
	return *in.Active
}
