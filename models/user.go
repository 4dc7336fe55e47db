package models

import "time"

// User represents a registered account.
// PasswordHash is never serialized, so a User value doubles as its own
// public projection in HTTP responses.
type User struct {
	// ID is an opaque identifier generated at creation. Immutable.
	ID string `json:"id"`

	// Username is unique across all users and cannot be changed after creation.
	Username string `json:"username"`

	// PasswordHash is the salted one-way hash of the user's password.
	PasswordHash string `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	AccountCreated time.Time `json:"account_created"`

	// AccountUpdated is refreshed on every successful update, even when no
	// field actually changed.
	AccountUpdated time.Time `json:"account_updated"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
