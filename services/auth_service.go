package services

import (
	"context"
	"errors"
	"fmt"

	"webshop/models"
	"webshop/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// AuthService owns signup and login. It never stores a plaintext
// password: everything that reaches the repository is hashed.
type AuthService struct {
	users     repository.UserRepository
	passwords *PasswordService
}

func NewAuthService(users repository.UserRepository, passwords *PasswordService) *AuthService {
	return &AuthService{users: users, passwords: passwords}
}

// Signup creates a new user. The username check and the insert are two
// separate store operations; concurrent signups with the same username
// can race, which matches the store's last-writer-wins posture.
func (s *AuthService) Signup(ctx context.Context, username, email, password, confirmPassword string) error {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return ErrDuplicateUsername
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("check username: %w", err)
	}

	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	hashed, err := s.passwords.Hash(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login returns the user when email and password match a stored
// credential, ErrInvalidCredentials otherwise.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !s.passwords.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
