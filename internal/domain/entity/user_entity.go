package entity

import (
	"time"
)

// User is the aggregate root for the user directory.
// Passwords are stored in plaintext, faithfully to the system being
// modeled; this is a known flaw, not a feature. Do not log the field.
//
// Records are owned by the store: every read hands out a copy, and other
// components refer to users by ID or Username only.
type User struct {
	ID        string
	Name      string
	Username  string
	Email     string
	Password  string
	Bio       string
	Location  string
	CreatedAt time.Time
}

// Clone returns an independent copy of the record.
func (u *User) Clone() *User {
	c := *u
	return &c
}

// Profile is the password-free projection of a User, used by ranked
// read results.
type Profile struct {
	ID        string
	Name      string
	Username  string
	Email     string
	Bio       string
	Location  string
	CreatedAt time.Time
}

// Profile derives the public projection of the record.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
	}
}
