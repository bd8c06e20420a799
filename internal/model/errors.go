package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrCancelled = errors.New("cancelled")
)

// NotFoundError is returned when no entry carries the requested ordinal.
type NotFoundError struct {
	Ordinal int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("entry %d not found", e.Ordinal)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PositionError reports a move position outside the list.
type PositionError struct {
	Position int
}

func (e PositionError) Error() string {
	return fmt.Sprintf("position %d out of range", e.Position)
}

func (e PositionError) Is(target error) bool {
	return target == ErrNotFound
}
