package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/frolovkirill/pdf2office/internal/domain"
)

const minPasswordLength = 8

type UsersRepository interface {
	CreateUser(ctx context.Context, email, displayName string, passwordHash []byte) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByID(ctx context.Context, id string) (*domain.User, error)
}

type Service struct {
	log      *slog.Logger
	users    UsersRepository
	sessions *SessionStore
}

func NewService(log *slog.Logger, users UsersRepository, sessions *SessionStore) *Service {
	return &Service{
		log:      log,
		users:    users,
		sessions: sessions,
	}
}

func (s *Service) Register(ctx context.Context, email, password, displayName string) (*domain.User, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, email, displayName, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID))

	return user, nil
}

// Login verifies the credentials and issues a bearer token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token := s.sessions.Create(user.ID)

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))

	return token, user, nil
}

func (s *Service) Logout(_ context.Context, token string) {
	s.sessions.Revoke(token)
}

// UserByToken resolves a bearer token to its user.
func (s *Service) UserByToken(ctx context.Context, token string) (*domain.User, error) {
	userID, ok := s.sessions.UserID(token)
	if !ok {
		return nil, domain.ErrSessionExpired
	}

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
