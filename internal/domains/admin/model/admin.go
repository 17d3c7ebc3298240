package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a staff account allowed to review authors and content.
type Admin struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AdminResponse is the API shape of an admin account.
type AdminResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

func (a *Admin) ToResponse() AdminResponse {
	return AdminResponse{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
	}
}
