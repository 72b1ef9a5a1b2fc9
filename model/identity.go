package model

import "strings"

// Identity is the verified caller taken from a bearer token.
type Identity struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SameEmail compares identities by email, ignoring case.
func (i Identity) SameEmail(email string) bool {
	return i.Email != "" && strings.EqualFold(i.Email, email)
}
