package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket is a reservation of one seat on one trip by one customer. A seat
// number is unique within its trip.
type Ticket struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SeatNumber int                `bson:"seat_number" json:"seat_number"`
	Customer   primitive.ObjectID `bson:"customer" json:"customer"`
	Trip       primitive.ObjectID `bson:"trip" json:"trip"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// TicketExpanded is a ticket where one of the two reference fields may be
// replaced by the referenced entity's summary.
type TicketExpanded struct {
	ID         primitive.ObjectID `json:"_id"`
	SeatNumber int                `json:"seat_number"`
	Customer   any                `json:"customer"`
	Trip       any                `json:"trip"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type TicketInput struct {
	SeatNumber int    `json:"seat_number"`
	Customer   string `json:"customer"`
	Trip       string `json:"trip"`
}

func (in *TicketInput) Validate() error {
	if err := intInRange("seat_number", in.SeatNumber, MinSeatNumber, MaxSeatNumber); err != nil {
		return err
	}
	if err := requiredRef("customer", in.Customer); err != nil {
		return err
	}
	if err := requiredRef("trip", in.Trip); err != nil {
		return err
	}
	return nil
}
