package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is deliberately the same for unknown users and
	// wrong passwords, so accounts cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const RoleAdmin = "ADMIN"

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// Login checks credentials and returns a signed token for the admin panel.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return GenerateToken(user.ID, user.Email, user.Role)
}

// EnsureAdmin creates the admin account on first start. There is no public
// registration: the single admin comes from configuration.
func (s *Service) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return errors.New("missing required fields")
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return err
	}

	return s.repo.Save(ctx, &User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     RoleAdmin,
	})
}
