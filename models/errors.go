package models

import (
	"errors"
	"fmt"
)

// Entity names the seven document types. The values match the route names,
// which the error messages are keyed on.
type Entity string

const (
	EntityTerminal      Entity = "terminal"
	EntityBus           Entity = "autobus"
	EntityDriver        Entity = "conductor"
	EntityAdministrator Entity = "administrador"
	EntityCustomer      Entity = "cliente"
	EntityTrip          Entity = "viaje"
	EntityTicket        Entity = "boleto"
)

var entityMessages = map[Entity]string{
	EntityTerminal:      "La terminal no existe.",
	EntityBus:           "El autobús no existe.",
	EntityDriver:        "El conductor no existe.",
	EntityAdministrator: "El administrador no existe.",
	EntityCustomer:      "El cliente no existe.",
	EntityTrip:          "El viaje no existe.",
	EntityTicket:        "El boleto no existe.",
}

// ErrNoSeatsAvailable reports a ticket request against a trip whose seat
// counter is already at zero.
var ErrNoSeatsAvailable = errors.New("no hay asientos disponibles")

// ValidationError reports a field failing one of its declared constraints.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ReferenceNotFoundError reports a reference field naming a document that
// does not exist in the referenced collection.
type ReferenceNotFoundError struct {
	Field  string
	Entity Entity
	ID     string
}

func (e *ReferenceNotFoundError) Error() string {
	return entityMessages[e.Entity]
}

// NotFoundError reports a lookup by identifier that matched no document.
type NotFoundError struct {
	Entity Entity
	ID     string
}

func (e *NotFoundError) Error() string {
	return entityMessages[e.Entity]
}

// UniquenessConflictError reports a write colliding with an existing document
// on a unique-indexed field.
type UniquenessConflictError struct {
	Field string
	Value string
}

func (e *UniquenessConflictError) Error() string {
	return fmt.Sprintf("ya existe un registro con el mismo valor de %s", e.Field)
}

// StorageError wraps a failure of the persistence layer itself, as opposed to
// a rejection of the caller's input. Callers may retry.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
