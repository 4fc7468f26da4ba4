// Package domain contains the building blocks shared by business entities:
// identity, aggregate roots, domain events and the common failure sentinels.
// These types have no knowledge of databases, HTTP, or any infrastructure concerns.
package domain

import "errors"

// Errors for common domain-level failures.
var (
	ErrNotFound               = errors.New("not found")
	ErrAlreadyExists          = errors.New("already exists")
	ErrConflict               = errors.New("conflict")
	ErrConcurrentModification = errors.New("concurrent modification")
)
