package user

import (
	"context"
	"errors"
	"time"

	"staybook/internal/domain/shared/events"
)

var (
	ErrNotFound    = errors.New("user: not found")
	ErrDuplicate   = errors.New("user: name or email already registered")
	ErrUnknownRole = errors.New("user: unknown role")
)

type UserID int64

type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

type User struct {
	ID           UserID
	Name         string
	Email        string
	PasswordHash string
	Roles        []Role

	events.EventRecorder
}

func New(name, email, passwordHash string, role Role) *User {
	return &User{Name: name, Email: email, PasswordHash: passwordHash, Roles: []Role{role}}
}

// Registered records the registration event once the user has an id assigned
// by the store.
func (u *User) Registered(now time.Time) {
	u.Record(RegisteredEvent(u.ID, now))
}

type Repository interface {
	ByID(ctx context.Context, id UserID) (*User, error)
	ByName(ctx context.Context, name string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id UserID) error
}
