package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyClosed = errors.New("order already closed")
	ErrValidation    = errors.New("validation failed")
	ErrDuplicate     = errors.New("already exists")
)

// AlreadyClosedError is returned when closing an order that has an end date.
type AlreadyClosedError struct {
	OrderID string
	EndDate time.Time
}

func (e *AlreadyClosedError) Error() string {
	return fmt.Sprintf("order %s cannot be closed twice: end date already set to %s", e.OrderID, e.EndDate.Format(time.RFC3339))
}

func (e *AlreadyClosedError) Is(target error) bool {
	return target == ErrAlreadyClosed
}

// NotFoundError wraps ErrNotFound with the entity name for messages.
func NotFoundError(entity, id string) error {
	return fmt.Errorf("%s %s %w", entity, id, ErrNotFound)
}

// ValidationError wraps ErrValidation with the offending field.
func ValidationError(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}
