package repositories

import "errors"

var (
	// ErrNotFound is returned when a lookup or delete misses.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned when an insert hits the unique index on
	// user.username. The index is the source of truth; concurrent
	// registrations racing past any pre-check still end up here.
	ErrUsernameTaken = errors.New("username already taken")
)
