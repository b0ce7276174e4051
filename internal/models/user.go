package models

import "time"

// User is an account. The password hash never leaves the server.
type User struct {
	ID           string    `json:"-"`
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName,omitempty"`
	PasswordHash string    `json:"-"` // bcrypt, never serialized
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser is the shape returned next to issued tokens.
type PublicUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

func (u User) Public() PublicUser {
	return PublicUser{UID: u.UID, Email: u.Email, DisplayName: u.DisplayName}
}

// UserPatch lists the mutable account fields; nil means unchanged.
type UserPatch struct {
	DisplayName  *string
	PasswordHash *string
}

func (p UserPatch) Empty() bool {
	return p.DisplayName == nil && p.PasswordHash == nil
}
