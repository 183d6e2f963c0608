// Package models defines the data exchanged with the rent-estimation API and
// persisted by the client.
package models

import (
	"errors"
	"strings"
)

// UserSchemaVersion is the version written into the persisted user envelope.
const UserSchemaVersion = 1

// ErrUserEmailMissing marks a user record without its required email.
var ErrUserEmailMissing = errors.New("user record has no email")

// User is the identity record returned by the backend on login/signup.
// Only Email is required; everything else is displayed when present.
type User struct {
	Email string `json:"email"`

	// UID is the backend identity provider's user id.
	UID string `json:"uid,omitempty"`

	Name   string `json:"name,omitempty"`
	Mobile string `json:"mobile,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Validate checks the required fields.
func (u *User) Validate() error {
	if u == nil || strings.TrimSpace(u.Email) == "" {
		return ErrUserEmailMissing
	}
	return nil
}

// DisplayName returns Name, or Email when Name is empty.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
