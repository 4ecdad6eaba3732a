package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
)

// RegisterInput holds the fields needed to create an account.
type RegisterInput struct {
	Username string
	Password string
	Name     string
}

// ProfileUpdate is a partial profile change. Nil fields are left alone.
type ProfileUpdate struct {
	Name     *string
	Password *string
}

// UserService manages accounts and their single active session.
type UserService interface {
	// Register creates a user. It returns ErrUsernameTaken if the username
	// is already registered.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)

	// Login checks credentials and starts a new session, replacing any
	// previous one. It returns the user and the new token, or
	// ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)

	// Current reloads the user from the store.
	Current(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UpdateProfile applies the supplied fields, hashing a new password.
	// The session token is untouched.
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileUpdate) (*domain.User, error)

	// Logout ends the user's session by clearing the stored token.
	Logout(ctx context.Context, userID uuid.UUID) error
}

type userServiceImpl struct {
	users    store.UserStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	tokens   auth.TokenIssuer
	logger   *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokens auth.TokenIssuer,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userServiceImpl{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger.With(slog.String("component", "user_service")),
	}
}

func (s *userServiceImpl) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, NewServiceError("register", "failed to check username", err)
	}
	if exists {
		log.Debug("registration rejected: username taken")
		return nil, ErrUsernameTaken
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, NewServiceError("register", "failed to hash password", err)
	}

	user, err := domain.NewUser(in.Username, hashed, in.Name)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, store.ErrUsernameExists) {
			return nil, ErrUsernameTaken
		}
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, NewServiceError("register", "failed to create user", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

func (s *userServiceImpl) Login(
	ctx context.Context,
	username, password string,
) (*domain.User, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login rejected: unknown username")
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", NewServiceError("login", "failed to load user", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login rejected: password mismatch", slog.String("user_id", user.ID.String()))
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", NewServiceError("login", "failed to issue token", err)
	}

	if err := s.users.SetToken(ctx, user.ID, &token); err != nil {
		return nil, "", NewServiceError("login", "failed to store token", err)
	}
	user.Token = &token

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return user, token, nil
}

func (s *userServiceImpl) Current(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewServiceError("current", "failed to load user", err)
	}
	return user, nil
}

func (s *userServiceImpl) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	in ProfileUpdate,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		if err := domain.ValidatePassword(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, NewServiceError("update_profile", "failed to hash password", err)
		}
		user.HashedPassword = hashed
	}
	user.UpdatedAt = time.Now().UTC()
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, domain.ErrValidation) || store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewServiceError("update_profile", "failed to save user", err)
	}

	log.Info("user profile updated",
		slog.String("user_id", user.ID.String()),
		slog.Bool("password_changed", in.Password != nil))
	return user, nil
}

func (s *userServiceImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.SetToken(ctx, userID, nil); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		return NewServiceError("logout", "failed to clear token", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("user logged out",
		slog.String("user_id", userID.String()))
	return nil
}
