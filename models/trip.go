package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip is a scheduled journey between two terminals, operated by one bus and
// one driver, with a fixed seat capacity and price.
type Trip struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	AvailableSeats      int                `bson:"available_seats" json:"available_seats"`
	DepartureDate       time.Time          `bson:"departure_date" json:"departure_date"`
	DepartureTime       time.Time          `bson:"departure_time" json:"departure_time"`
	Price               float64            `bson:"price" json:"price"`
	OriginTerminal      primitive.ObjectID `bson:"origin_terminal" json:"origin_terminal"`
	DestinationTerminal primitive.ObjectID `bson:"destination_terminal" json:"destination_terminal"`
	Bus                 primitive.ObjectID `bson:"bus" json:"bus"`
	Driver              primitive.ObjectID `bson:"driver" json:"driver"`
	Administrator       primitive.ObjectID `bson:"administrator" json:"administrator"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updated_at"`
}

// TripSummary is the subset of a trip inlined on expansion.
type TripSummary struct {
	DepartureDate time.Time `bson:"departure_date" json:"departure_date"`
	DepartureTime time.Time `bson:"departure_time" json:"departure_time"`
	Price         float64   `bson:"price" json:"price"`
}

// TripExpanded is a trip where exactly one of the five reference fields may
// be replaced by the referenced entity's summary; the rest stay hex ids.
type TripExpanded struct {
	ID                  primitive.ObjectID `json:"_id"`
	AvailableSeats      int                `json:"available_seats"`
	DepartureDate       time.Time          `json:"departure_date"`
	DepartureTime       time.Time          `json:"departure_time"`
	Price               float64            `json:"price"`
	OriginTerminal      any                `json:"origin_terminal"`
	DestinationTerminal any                `json:"destination_terminal"`
	Bus                 any                `json:"bus"`
	Driver              any                `json:"driver"`
	Administrator       any                `json:"administrator"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

type TripInput struct {
	AvailableSeats      *int      `json:"available_seats"`
	DepartureDate       time.Time `json:"departure_date"`
	DepartureTime       time.Time `json:"departure_time"`
	Price               *float64  `json:"price"`
	OriginTerminal      string    `json:"origin_terminal"`
	DestinationTerminal string    `json:"destination_terminal"`
	Bus                 string    `json:"bus"`
	Driver              string    `json:"driver"`
	Administrator       string    `json:"administrator"`
}

func (in *TripInput) Validate() error {
	if in.AvailableSeats != nil {
		if err := intInRange("available_seats", *in.AvailableSeats, MinAvailableSeats, MaxAvailableSeats); err != nil {
			return err
		}
	}
	if in.DepartureDate.IsZero() {
		return &ValidationError{Field: "departure_date", Rule: "required", Message: "el campo es obligatorio"}
	}
	if in.DepartureTime.IsZero() {
		return &ValidationError{Field: "departure_time", Rule: "required", Message: "el campo es obligatorio"}
	}
	if in.Price == nil {
		return &ValidationError{Field: "price", Rule: "required", Message: "el campo es obligatorio"}
	}
	if *in.Price < 0 {
		return &ValidationError{Field: "price", Rule: "range", Message: "el valor debe ser mayor o igual a 0"}
	}
	if err := requiredRef("origin_terminal", in.OriginTerminal); err != nil {
		return err
	}
	if err := requiredRef("destination_terminal", in.DestinationTerminal); err != nil {
		return err
	}
	if err := requiredRef("bus", in.Bus); err != nil {
		return err
	}
	if err := requiredRef("driver", in.Driver); err != nil {
		return err
	}
	if err := requiredRef("administrator", in.Administrator); err != nil {
		return err
	}
	return nil
}

// SeatsOrDefault returns the initial seat counter, defaulting to the full
// capacity when the field was absent from the request.
func (in *TripInput) SeatsOrDefault() int {
	if in.AvailableSeats == nil {
		return DefaultSeats
	}
	return *in.AvailableSeats
}
