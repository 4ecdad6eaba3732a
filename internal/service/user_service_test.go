package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/mocks"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUsers is an in-memory user table behind a MockUserStore.
type memUsers struct {
	byID map[uuid.UUID]*domain.User
	mock *mocks.MockUserStore
}

func newMemUsers() *memUsers {
	m := &memUsers{byID: make(map[uuid.UUID]*domain.User)}
	m.mock = &mocks.MockUserStore{
		CreateFn: func(_ context.Context, u *domain.User) error {
			for _, existing := range m.byID {
				if existing.Username == u.Username {
					return store.ErrUsernameExists
				}
			}
			cp := *u
			m.byID[u.ID] = &cp
			return nil
		},
		ExistsByUsernameFn: func(_ context.Context, username string) (bool, error) {
			for _, u := range m.byID {
				if u.Username == username {
					return true, nil
				}
			}
			return false, nil
		},
		GetByIDFn: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
			if u, ok := m.byID[id]; ok {
				cp := *u
				return &cp, nil
			}
			return nil, store.ErrUserNotFound
		},
		GetByUsernameFn: func(_ context.Context, username string) (*domain.User, error) {
			for _, u := range m.byID {
				if u.Username == username {
					cp := *u
					return &cp, nil
				}
			}
			return nil, store.ErrUserNotFound
		},
		UpdateProfileFn: func(_ context.Context, u *domain.User) error {
			stored, ok := m.byID[u.ID]
			if !ok {
				return store.ErrUserNotFound
			}
			stored.Name = u.Name
			stored.HashedPassword = u.HashedPassword
			return nil
		},
		SetTokenFn: func(_ context.Context, id uuid.UUID, token *string) error {
			stored, ok := m.byID[id]
			if !ok {
				return store.ErrUserNotFound
			}
			stored.Token = token
			return nil
		},
	}
	return m
}

func newUserService(users *memUsers) service.UserService {
	hasher := &mocks.MockPasswordHasher{}
	return service.NewUserService(users.mock, hasher, hasher, &mocks.MockTokenIssuer{}, nil)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := newUserService(users)

	user, err := svc.Register(ctx, service.RegisterInput{Username: "alice", Password: "rahasia", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hashed:rahasia", user.HashedPassword)
	assert.Nil(t, user.Token)

	_, err = svc.Register(ctx, service.RegisterInput{Username: "alice", Password: "other", Name: "Imposter"})
	assert.ErrorIs(t, err, service.ErrUsernameTaken)
	assert.Len(t, users.byID, 1)
}

func TestRegisterLosesRace(t *testing.T) {
	users := &mocks.MockUserStore{
		CreateFn: func(context.Context, *domain.User) error { return store.ErrUsernameExists },
	}
	hasher := &mocks.MockPasswordHasher{}
	svc := service.NewUserService(users, hasher, hasher, &mocks.MockTokenIssuer{}, nil)

	_, err := svc.Register(context.Background(), service.RegisterInput{Username: "a", Password: "b", Name: "c"})
	assert.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserService(newMemUsers())

	_, err := svc.Register(context.Background(), service.RegisterInput{Username: "bob", Password: "pw"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, domain.FieldErrors(err), "name")
}

func TestPasswordsBcryptCannotHashAreRejected(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	hasher := &mocks.MockPasswordHasher{
		HashFn: func(password string) (string, error) {
			if len(password) > 72 {
				return "", errors.New("bcrypt: password length exceeds 72 bytes")
			}
			return "hashed:" + password, nil
		},
	}
	svc := service.NewUserService(users.mock, hasher, hasher, &mocks.MockTokenIssuer{}, nil)
	long := strings.Repeat("a", 80)

	_, err := svc.Register(ctx, service.RegisterInput{Username: "alice", Password: long, Name: "Alice"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, []string{"password must not exceed 72 bytes"}, domain.FieldErrors(err)["password"])
	assert.Empty(t, users.byID)

	user, err := svc.Register(ctx, service.RegisterInput{Username: "alice", Password: "rahasia", Name: "Alice"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, user.ID, service.ProfileUpdate{Password: &long})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, []string{"password must not exceed 72 bytes"}, domain.FieldErrors(err)["password"])
	assert.Equal(t, "hashed:rahasia", users.byID[user.ID].HashedPassword)
}

func TestRegisterStoreFailure(t *testing.T) {
	dbDown := errors.New("db down")
	users := &mocks.MockUserStore{
		ExistsByUsernameFn: func(context.Context, string) (bool, error) { return false, dbDown },
	}
	hasher := &mocks.MockPasswordHasher{}
	svc := service.NewUserService(users, hasher, hasher, &mocks.MockTokenIssuer{}, nil)

	_, err := svc.Register(context.Background(), service.RegisterInput{Username: "a", Password: "b", Name: "c"})
	var svcErr *service.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "register", svcErr.Operation)
	assert.ErrorIs(t, err, dbDown)
}

func TestLoginIssuesFreshTokenEachTime(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := newUserService(users)

	registered, err := svc.Register(ctx, service.RegisterInput{Username: "alice", Password: "rahasia", Name: "Alice"})
	require.NoError(t, err)

	user, first, err := svc.Login(ctx, "alice", "rahasia")
	require.NoError(t, err)
	assert.NotEmpty(t, first)
	assert.Equal(t, registered.ID, user.ID)
	require.NotNil(t, users.byID[user.ID].Token)
	assert.Equal(t, first, *users.byID[user.ID].Token)

	_, second, err := svc.Login(ctx, "alice", "rahasia")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, *users.byID[user.ID].Token, "new login replaces the previous session")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := newUserService(users)

	_, err := svc.Register(ctx, service.RegisterInput{Username: "alice", Password: "rahasia", Name: "Alice"})
	require.NoError(t, err)

	for name, creds := range map[string][2]string{
		"wrong password":   {"alice", "salah"},
		"unknown username": {"mallory", "rahasia"},
	} {
		t.Run(name, func(t *testing.T) {
			user, token, err := svc.Login(ctx, creds[0], creds[1])
			assert.ErrorIs(t, err, service.ErrInvalidCredentials)
			assert.Nil(t, user)
			assert.Empty(t, token)
		})
	}

	for _, u := range users.byID {
		assert.Nil(t, u.Token, "failed logins must not create sessions")
	}
}

func TestLogoutClearsToken(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := newUserService(users)

	_, err := svc.Register(ctx, service.RegisterInput{Username: "alice", Password: "rahasia", Name: "Alice"})
	require.NoError(t, err)
	user, _, err := svc.Login(ctx, "alice", "rahasia")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, user.ID))
	assert.Nil(t, users.byID[user.ID].Token)

	assert.ErrorIs(t, svc.Logout(ctx, uuid.New()), store.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := newUserService(users)

	_, err := svc.Register(ctx, service.RegisterInput{Username: "alice", Password: "rahasia", Name: "Alice"})
	require.NoError(t, err)
	user, token, err := svc.Login(ctx, "alice", "rahasia")
	require.NoError(t, err)

	newName := "Alice Liddell"
	updated, err := svc.UpdateProfile(ctx, user.ID, service.ProfileUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, "hashed:rahasia", users.byID[user.ID].HashedPassword)

	newPassword := "lebihrahasia"
	_, err = svc.UpdateProfile(ctx, user.ID, service.ProfileUpdate{Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, "hashed:lebihrahasia", users.byID[user.ID].HashedPassword)
	assert.Equal(t, newName, users.byID[user.ID].Name)
	assert.Equal(t, token, *users.byID[user.ID].Token, "token is untouched by profile updates")

	_, _, err = svc.Login(ctx, "alice", "rahasia")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "alice", "lebihrahasia")
	assert.NoError(t, err)

	blank := ""
	_, err = svc.UpdateProfile(ctx, user.ID, service.ProfileUpdate{Name: &blank})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
