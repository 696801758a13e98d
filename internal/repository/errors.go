// Package repository defines sentinel errors shared across repositories so
// that handlers can map store failures onto HTTP status codes without
// inspecting driver-specific error strings themselves.
package repository

import "errors"

// ErrProductNotFound is returned by single-product lookups when no row
// matches the requested id. Handlers translate it into HTTP 404. List
// queries never return it; an empty result is an empty slice.
var ErrProductNotFound = errors.New("product not found")

// ErrEmailExists is returned when an insert violates the unique key on
// users.email. Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")
