package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/01moynul/flordelima-golang/internal/apperr"
	"github.com/01moynul/flordelima-golang/internal/models"
)

const (
	minPasswordLength = 6
	// bcrypt only hashes the first 72 bytes and rejects longer input.
	maxPasswordLength = 72
)

type UserService struct {
	users  UserStore
	tokens TokenIssuer
	log    *zap.Logger
}

func NewUserService(users UserStore, tokens TokenIssuer, log *zap.Logger) *UserService {
	return &UserService{users: users, tokens: tokens, log: log}
}

// Register creates an account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.PublicUser, error) {
	name = strings.TrimSpace(name)
	email = models.NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, apperr.Validation("Name, email and password are required")
	}
	if len(password) < minPasswordLength {
		return nil, apperr.Validation("Password must be at least 6 characters")
	}
	if len(password) > maxPasswordLength {
		return nil, apperr.Validation("Password must be at most 72 bytes")
	}

	var pw models.Password
	if err := pw.Set(password); err != nil {
		return nil, apperr.Internal("Failed to register", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: pw.Hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, apperr.Internal("Failed to register", err)
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.Hex()))
	public := user.Public()
	return &public, nil
}

// Login verifies the password and returns the account with a signed token.
// Unknown email and wrong password fail the same way.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.PublicUser, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, "", apperr.Validation("Email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, "", apperr.Unauthenticated("Invalid email or password")
	}
	if err != nil {
		return nil, "", apperr.Internal("Failed to login", err)
	}

	pw := models.Password{Hash: user.PasswordHash}
	ok, err := pw.Matches(password)
	if err != nil {
		// A stored value that is not a bcrypt hash is treated as a mismatch.
		s.log.Warn("stored password is not a valid hash", zap.String("user_id", user.ID.Hex()), zap.Error(err))
		return nil, "", apperr.Unauthenticated("Invalid email or password")
	}
	if !ok {
		return nil, "", apperr.Unauthenticated("Invalid email or password")
	}

	public := user.Public()
	token, err := s.tokens.GenerateToken(public.ID, public.Email, public.Name)
	if err != nil {
		return nil, "", apperr.Internal("Failed to login", err)
	}
	return &public, token, nil
}
