package users

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/app/dto"
	"staybook/internal/app/policies"
	"staybook/internal/app/uow"
	"staybook/internal/app/validate"
	domainuser "staybook/internal/domain/user"
)

// PasswordHasher abstracts the one-way hash applied before a password is
// stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	UoWFactory uow.UoWFactory
	Hasher     PasswordHasher
	Notifier   policies.Notifier
	Logger     *slog.Logger

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func (s *Service) List(ctx context.Context) (dto.UserListResponse, error) {
	unit, err := s.begin(ctx, true)
	if err != nil {
		return dto.UserListResponse{}, err
	}
	defer unit.Rollback(ctx)

	items, err := unit.Users().List(ctx)
	if err != nil {
		return dto.UserListResponse{}, err
	}
	return dto.MapUsers(items), nil
}

func (s *Service) Get(ctx context.Context, id int64) (dto.UserResponse, error) {
	unit, err := s.begin(ctx, true)
	if err != nil {
		return dto.UserResponse{}, err
	}
	defer unit.Rollback(ctx)

	u, err := unit.Users().ByID(ctx, domainuser.UserID(id))
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.MapUser(u), nil
}

// Create registers a new account: validates fields, hashes the password,
// writes the user with its role, and publishes the registration event once
// the commit succeeded. A duplicate name or email surfaces as a conflict.
func (s *Service) Create(ctx context.Context, req dto.UpsertUserRequest, roleName string) (dto.UserResponse, error) {
	var c validate.Collector
	c.Require("name", req.Name)
	c.Require("email", req.Email)
	c.Require("password", req.Password)
	if err := c.Errors().OrNil(); err != nil {
		return dto.UserResponse{}, err
	}
	role, err := domainuser.ParseRole(roleName)
	if err != nil {
		return dto.UserResponse{}, err
	}
	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return dto.UserResponse{}, err
	}

	unit, err := s.begin(ctx, false)
	if err != nil {
		return dto.UserResponse{}, err
	}
	defer unit.Rollback(ctx)

	u := domainuser.New(req.Name, req.Email, hash, role)
	if err := unit.Users().Create(ctx, u); err != nil {
		return dto.UserResponse{}, err
	}
	if err := unit.Commit(ctx); err != nil {
		return dto.UserResponse{}, err
	}

	u.Registered(s.now())
	s.publish(ctx, u)
	return dto.MapUser(u), nil
}

func (s *Service) Update(ctx context.Context, id int64, req dto.UpsertUserRequest) (dto.UserResponse, error) {
	unit, err := s.begin(ctx, false)
	if err != nil {
		return dto.UserResponse{}, err
	}
	defer unit.Rollback(ctx)

	u, err := unit.Users().ByID(ctx, domainuser.UserID(id))
	if err != nil {
		return dto.UserResponse{}, err
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Password != "" {
		hash, err := s.Hasher.Hash(req.Password)
		if err != nil {
			return dto.UserResponse{}, err
		}
		u.PasswordHash = hash
	}
	if err := unit.Users().Update(ctx, u); err != nil {
		return dto.UserResponse{}, err
	}
	if err := unit.Commit(ctx); err != nil {
		return dto.UserResponse{}, err
	}
	return dto.MapUser(u), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	unit, err := s.begin(ctx, false)
	if err != nil {
		return err
	}
	defer unit.Rollback(ctx)

	if err := unit.Users().Delete(ctx, domainuser.UserID(id)); err != nil {
		return err
	}
	return unit.Commit(ctx)
}

func (s *Service) publish(ctx context.Context, u *domainuser.User) {
	if s.Notifier == nil {
		return
	}
	for _, ev := range u.PendingEvents() {
		if err := s.Notifier.Notify(ctx, ev); err != nil && s.Logger != nil {
			s.Logger.Error("event publish failed", "event", ev.EventName(), "error", err)
		}
	}
	u.ClearEvents()
}

func (s *Service) begin(ctx context.Context, readOnly bool) (uow.UnitOfWork, error) {
	if s.UoWFactory == nil {
		return nil, uow.ErrUnitOfWorkMissing
	}
	return s.UoWFactory.Begin(ctx, uow.TxOptions{ReadOnly: readOnly})
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
