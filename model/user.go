package model

import "time"

// UserProfile holds the contact details kept next to the external identity.
type UserProfile struct {
	UID       string     `db:"uid" json:"uid"`
	Phone     string     `db:"phone" json:"phone"`
	Address   string     `db:"address" json:"address"`
	CreatedAt *time.Time `db:"created_at" json:"createdAt,omitempty"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

type ProfileRequest struct {
	Phone   string `json:"phone" validate:"max=32"`
	Address string `json:"address" validate:"max=500"`
}
