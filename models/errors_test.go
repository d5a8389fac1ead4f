package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestReferenceNotFoundMessages(t *testing.T) {
	cases := []struct {
		entity Entity
		want   string
	}{
		{EntityTerminal, "La terminal no existe."},
		{EntityBus, "El autobús no existe."},
		{EntityDriver, "El conductor no existe."},
		{EntityAdministrator, "El administrador no existe."},
		{EntityCustomer, "El cliente no existe."},
		{EntityTrip, "El viaje no existe."},
		{EntityTicket, "El boleto no existe."},
	}

	for _, tc := range cases {
		err := &ReferenceNotFoundError{Field: "x", Entity: tc.entity, ID: "abc"}
		if err.Error() != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.entity, tc.want, err.Error())
		}
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &StorageError{Op: "insert terminal", Err: cause}

	if !errors.Is(err, cause) {
		t.Fatal("StorageError should unwrap to its cause")
	}

	var se *StorageError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &se) {
		t.Fatal("StorageError should survive further wrapping")
	}
}
