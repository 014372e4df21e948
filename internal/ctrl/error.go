package ctrl

import (
	"errors"

	"github.com/JMURv/attendance-guard/internal/fingerprint"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

var ErrInvalidFingerprint = fingerprint.ErrInvalidFingerprint

// ErrIncompletePosition is returned when only one of latitude and longitude is set.
var ErrIncompletePosition = errors.New("latitude and longitude must be provided together")

// ErrPositionRequired is returned when a location check has no position to check.
var ErrPositionRequired = errors.New("position is required to check a location")
