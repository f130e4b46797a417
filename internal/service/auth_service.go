package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/atif128873806/lead-intelligence-platfor/internal/auth"
	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/logger"
)

// userStore is the slice of the user repository the auth service needs.
type userStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AuthService owns account registration, credential checks, and token
// issuance. Password hashes never leave this layer.
type AuthService struct {
	users  userStore
	tokens *auth.TokenManager
	logger *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users userStore, tokens *auth.TokenManager, log *logger.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: log,
	}
}

// log returns a logger from context if available, otherwise returns the service logger
func (s *AuthService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l
	}
	return s.logger
}

// Register creates a user account and signs them in immediately.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - email: account email, must be unused.
//   - password: plaintext password to hash.
//   - fullName: display name, may be empty.
// Returns:
//   - string: signed access token for the new account.
//   - *domain.User: persisted user record.
//   - error: domain.ErrEmailTaken or a storage/hashing error.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if taken {
		return "", nil, domain.ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Email:          email,
		HashedPassword: hash,
		FullName:       fullName,
		Role:           "user",
		IsActive:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, err
	}

	s.log(ctx).WithField(logger.FieldUserID, user.ID).Info("User registered")

	return token, user, nil
}

// Login checks the credentials and issues an access token. The failure
// reason is deliberately not distinguishable from the outside.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - email: account email.
//   - password: plaintext password.
// Returns:
//   - string: signed access token.
//   - *domain.User: authenticated user record.
//   - error: domain.ErrInvalidCredentials or a storage error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(password, user.HashedPassword) {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.users.Update(ctx, user); err != nil {
		// A stale last_login must not block the sign-in.
		s.log(ctx).WithError(err).Warn("Failed to stamp last login")
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// ResolveToken verifies an access token and loads the account it belongs
// to. Used by the auth middleware on every protected request.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - token: raw bearer token.
// Returns:
//   - *domain.User: account the token subject resolves to.
//   - error: domain.ErrInvalidCredentials for bad tokens or unknown
//     subjects, domain.ErrUserInactive for disabled accounts.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	email, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	return user, nil
}
