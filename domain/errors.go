package domain

import (
	"errors"
	"fmt"
)

// NotFoundError signals a lookup miss for a specific entity kind and id.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// ValidationError carries field-level messages for a 400 response.
type ValidationError struct {
	Fields map[string][]string
}

func (e ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	for field, msgs := range e.Fields {
		if len(msgs) > 0 {
			return fmt.Sprintf("%s %s", field, msgs[0])
		}
	}
	return "validation failed"
}

// RoomUnavailableError is returned when a room's capacity is already filled.
type RoomUnavailableError struct {
	RoomID uint
}

func (e RoomUnavailableError) Error() string {
	return "the room is not available"
}

// RelationshipConflictError covers attach/detach calls that would be no-ops:
// attaching an already-attached pair or detaching a non-attached one.
type RelationshipConflictError struct {
	Msg string
}

func (e RelationshipConflictError) Error() string {
	if e.Msg == "" {
		return "relationship conflict"
	}
	return e.Msg
}

// DeleteConflictError is returned when the store refuses a delete, typically
// because a dependent record still references the row.
type DeleteConflictError struct {
	Entity string
	Err    error
}

func (e DeleteConflictError) Error() string {
	if e.Entity == "" {
		return "could not delete the record"
	}
	return fmt.Sprintf("could not delete the %s", e.Entity)
}

func (e DeleteConflictError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsRoomUnavailable(err error) bool {
	var target RoomUnavailableError
	return errors.As(err, &target)
}

func IsRelationshipConflict(err error) bool {
	var target RelationshipConflictError
	return errors.As(err, &target)
}

func IsDeleteConflict(err error) bool {
	var target DeleteConflictError
	return errors.As(err, &target)
}
