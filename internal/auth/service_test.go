package auth

import (
	"context"
	"errors"
	"testing"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	err := service.EnsureAdmin(context.Background(), "Admin", "admin@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["admin@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if err := service.EnsureAdmin(context.Background(), "Admin", "admin@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := repo.users["admin@example.com"]

	if err := service.EnsureAdmin(context.Background(), "Admin", "admin@example.com", "Other@456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.users["admin@example.com"] != first {
		t.Fatal("existing admin must not be replaced")
	}
}

func TestLoginGenericErrorForUnknownUserAndWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if err := service.EnsureAdmin(context.Background(), "Admin", "admin@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, unknownErr := service.Login(context.Background(), "nobody@example.com", "Password@123")
	_, wrongErr := service.Login(context.Background(), "admin@example.com", "wrong")

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for both cases, got %v / %v", unknownErr, wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatal("error message must not distinguish unknown user from wrong password")
	}
}

func TestLoginReturnsToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if err := service.EnsureAdmin(context.Background(), "Admin", "admin@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := service.Login(context.Background(), "admin@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, email, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if userID == "" || email != "admin@example.com" || role != RoleAdmin {
		t.Fatalf("unexpected claims: userID=%q email=%q role=%q", userID, email, role)
	}
}
