package users_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/app/dto"
	"staybook/internal/app/handlers/users"
	"staybook/internal/app/validate"
	"staybook/internal/domain/shared/events"
	domainuser "staybook/internal/domain/user"
	"staybook/internal/infra/storage/memory"
)

type staticHasher struct{}

func (staticHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

type recordingNotifier struct {
	events []events.DomainEvent
}

func (n *recordingNotifier) Notify(ctx context.Context, ev events.DomainEvent) error {
	n.events = append(n.events, ev)
	return nil
}

func newService(store *memory.Store, notifier *recordingNotifier) *users.Service {
	return &users.Service{
		UoWFactory: memory.Factory{Store: store},
		Hasher:     staticHasher{},
		Notifier:   notifier,
		Now:        func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestCreate_HashesPasswordAndPublishesRegistration(t *testing.T) {
	store := memory.NewStore()
	notifier := &recordingNotifier{}
	s := newService(store, notifier)

	resp, err := s.Create(context.Background(), dto.UpsertUserRequest{
		Name: "alice", Email: "alice@example.com", Password: "s3cret",
	}, "ROLE_USER")
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, []string{"ROLE_USER"}, resp.Roles)

	stored, err := s.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Name)

	require.Len(t, notifier.events, 1)
	ev, ok := notifier.events[0].(domainuser.Registered)
	require.True(t, ok)
	assert.Equal(t, domainuser.UserID(resp.ID), ev.UserID)
}

func TestCreate_DuplicateNameOrEmailConflicts(t *testing.T) {
	store := memory.NewStore()
	s := newService(store, &recordingNotifier{})

	_, err := s.Create(context.Background(), dto.UpsertUserRequest{
		Name: "alice", Email: "alice@example.com", Password: "pw",
	}, "ROLE_USER")
	require.NoError(t, err)

	_, err = s.Create(context.Background(), dto.UpsertUserRequest{
		Name: "alice", Email: "other@example.com", Password: "pw",
	}, "ROLE_USER")
	assert.ErrorIs(t, err, domainuser.ErrDuplicate)

	_, err = s.Create(context.Background(), dto.UpsertUserRequest{
		Name: "bob", Email: "alice@example.com", Password: "pw",
	}, "ROLE_USER")
	assert.ErrorIs(t, err, domainuser.ErrDuplicate)
}

func TestCreate_UnknownRoleRejected(t *testing.T) {
	s := newService(memory.NewStore(), &recordingNotifier{})

	_, err := s.Create(context.Background(), dto.UpsertUserRequest{
		Name: "alice", Email: "alice@example.com", Password: "pw",
	}, "ROLE_WIZARD")
	assert.ErrorIs(t, err, domainuser.ErrUnknownRole)
}

func TestCreate_MissingFieldsAccumulate(t *testing.T) {
	s := newService(memory.NewStore(), &recordingNotifier{})

	_, err := s.Create(context.Background(), dto.UpsertUserRequest{}, "ROLE_USER")
	var verrs validate.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestUpdate_RehashesOnlyWhenPasswordChanges(t *testing.T) {
	store := memory.NewStore()
	s := newService(store, &recordingNotifier{})

	created, err := s.Create(context.Background(), dto.UpsertUserRequest{
		Name: "alice", Email: "alice@example.com", Password: "pw",
	}, "ROLE_USER")
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), created.ID, dto.UpsertUserRequest{Name: "alicia"})
	require.NoError(t, err)
	assert.Equal(t, "alicia", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestDelete_UnknownUserNotFound(t *testing.T) {
	s := newService(memory.NewStore(), &recordingNotifier{})
	assert.ErrorIs(t, s.Delete(context.Background(), 42), domainuser.ErrNotFound)
}
