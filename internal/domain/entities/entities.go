package entities

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// Product represents one catalog entry. Products are append-only: once
// stored they are never mutated or deleted.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// User represents a registered account. The password is kept in clear text
// to stay compatible with the persisted file format this service inherits.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BasketEntry is an opaque object created outside this service. The only
// field the service interprets is "id"; everything else is carried through
// untouched.
type BasketEntry map[string]any

// ID renders the entry id as a string. Stored files carry the id either as
// a JSON string or a number; both compare against path parameters via
// their decimal rendering.
func (e BasketEntry) ID() string {
	v, ok := e["id"]
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}
