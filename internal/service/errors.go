package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrCalculationNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "calculation")
}

type ErrInvalidCalculation struct {
	error
}

func NewErrInvalidCalculation(format string, args ...any) *ErrInvalidCalculation {
	return &ErrInvalidCalculation{fmt.Errorf(format, args...)}
}
