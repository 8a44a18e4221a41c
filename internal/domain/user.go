package domain

import (
	"context"
	"time"
)

// Roles known to the system
const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

type User struct {
	ID        string    `json:"id"` // identity provider subject
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	GetCurrentUser(ctx context.Context, userID string) (*User, error)
	AssignRole(ctx context.Context, targetUserID, role string) error
}
