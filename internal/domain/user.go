package domain

import (
	"context"
	"errors"
	"time"
)

// User roles
const (
	RoleJobSeeker = "jobseeker"
	RoleEmployer  = "employer"
)

// Auth errors surfaced to the caller as-is
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
	ErrNoAccount          = errors.New("no account found")
)

type User struct {
	ID              string    `json:"id" yaml:"id"`
	Email           string    `json:"email" yaml:"email"`
	Name            string    `json:"name" yaml:"name"`
	Role            string    `json:"role" yaml:"role"`
	ProfileComplete bool      `json:"profileComplete" yaml:"profileComplete"`
	CreatedAt       time.Time `json:"createdAt" yaml:"createdAt"`
	PasswordHash    string    `json:"-" yaml:"-"`
}

// Session is a logged-in user bound to a signed token.
type Session struct {
	ID        string    `json:"-"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}

type UserRepository interface {
	// Create assigns the next free "user<N>" id when user.ID is empty and
	// returns ErrEmailInUse if the email is taken.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// SessionStore persists the current-user record of each session.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, user *User, ttl time.Duration) error
	Load(ctx context.Context, sessionID string) (*User, error)
	Delete(ctx context.Context, sessionID string) error
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, email, password, name, role string) (*Session, error)
	Logout(ctx context.Context, sessionID string) error
	ResetPassword(ctx context.Context, email string) error
	CurrentUser(ctx context.Context, sessionID string) (*User, error)
}
