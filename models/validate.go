package models

import "fmt"

// Field length and range limits, straight from the document schemas.
const (
	MaxTextLen     = 50
	MaxPlateLen    = 10
	MaxYearLen     = 10
	MaxGenderLen   = 15
	MaxPasswordLen = 100

	MinSeatNumber = 1
	MaxSeatNumber = 40

	MinAvailableSeats = 0
	MaxAvailableSeats = 40
	DefaultSeats      = 40
)

func requiredString(field, value string, max int) *ValidationError {
	if value == "" {
		return &ValidationError{
			Field:   field,
			Rule:    "required",
			Message: "el campo es obligatorio",
		}
	}
	return maxLength(field, value, max)
}

func optionalString(field, value string, max int) *ValidationError {
	if value == "" {
		return nil
	}
	return maxLength(field, value, max)
}

func maxLength(field, value string, max int) *ValidationError {
	if len([]rune(value)) > max {
		return &ValidationError{
			Field:   field,
			Rule:    "max_length",
			Message: fmt.Sprintf("el campo excede los %d caracteres", max),
		}
	}
	return nil
}

func requiredRef(field, id string) *ValidationError {
	if id == "" {
		return &ValidationError{
			Field:   field,
			Rule:    "required",
			Message: "el campo es obligatorio",
		}
	}
	return nil
}

func intInRange(field string, value, min, max int) *ValidationError {
	if value < min || value > max {
		return &ValidationError{
			Field:   field,
			Rule:    "range",
			Message: fmt.Sprintf("el valor debe estar entre %d y %d", min, max),
		}
	}
	return nil
}
