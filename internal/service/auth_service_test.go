package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/atif128873806/lead-intelligence-platfor/internal/auth"
	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
)

type fakeUserStore struct {
	byEmail map[string]*domain.User
	nextID  uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserStore) Update(ctx context.Context, user *domain.User) error {
	stored := *user
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newTestAuthService(store *fakeUserStore) *AuthService {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(store, tokens, testLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	token, user, err := svc.Register(ctx, "maria@example.com", "hunter22", "Maria Santos")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if token == "" {
		t.Error("Register() returned an empty token")
	}
	if user.ID == 0 {
		t.Error("registered user has zero ID")
	}
	if user.Role != "user" {
		t.Errorf("role = %q, want %q", user.Role, "user")
	}
	if !user.IsActive {
		t.Error("registered user is not active")
	}
	if user.HashedPassword == "hunter22" {
		t.Error("password stored in plaintext")
	}

	resolved, err := svc.ResolveToken(ctx, token)
	if err != nil {
		t.Fatalf("ResolveToken() error = %v", err)
	}
	if resolved.Email != "maria@example.com" {
		t.Errorf("resolved email = %q, want %q", resolved.Email, "maria@example.com")
	}

	loginToken, loginUser, err := svc.Login(ctx, "maria@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loginToken == "" {
		t.Error("Login() returned an empty token")
	}
	if loginUser.LastLogin == nil {
		t.Error("last_login not stamped on login")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	if _, _, err := svc.Register(ctx, "maria@example.com", "hunter22", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "maria@example.com", password: "wrong"},
		{name: "unknown email", email: "nobody@example.com", password: "hunter22"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tc.email, tc.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want %v", err, domain.ErrInvalidCredentials)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	if _, _, err := svc.Register(ctx, "maria@example.com", "hunter22", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Email matching is case-insensitive.
	_, _, err := svc.Register(ctx, "  Maria@Example.COM ", "other-pass", "")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("Register() error = %v, want %v", err, domain.ErrEmailTaken)
	}
}

func TestResolveTokenRejections(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	token, user, err := svc.Register(ctx, "maria@example.com", "hunter22", "")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("garbage token", func(t *testing.T) {
		if _, err := svc.ResolveToken(ctx, "not-a-token"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("ResolveToken() error = %v, want %v", err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("token for a deleted account", func(t *testing.T) {
		otherSvc := newTestAuthService(newFakeUserStore())
		otherToken, _, err := otherSvc.Register(ctx, "ghost@example.com", "pw", "")
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		// Same secret, but the subject does not exist in this store.
		if _, err := svc.ResolveToken(ctx, otherToken); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("ResolveToken() error = %v, want %v", err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		store.byEmail[user.Email].IsActive = false
		if _, err := svc.ResolveToken(ctx, token); !errors.Is(err, domain.ErrUserInactive) {
			t.Errorf("ResolveToken() error = %v, want %v", err, domain.ErrUserInactive)
		}
	})
}
