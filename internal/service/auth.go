package service

import (
	"context"
	"employee-directory/internal/repository"
	"employee-directory/pkg/apperrors"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	repo repository.UserRepository
}

func NewAuthService(repo repository.UserRepository) *AuthServiceImpl {
	return &AuthServiceImpl{repo: repo}
}

// Login checks password against the bcrypt hash stored for login. Unknown
// logins and wrong passwords both yield ErrUnauthorized.
func (a AuthServiceImpl) Login(ctx context.Context, login, password string) error {
	if login == "" || password == "" {
		return fmt.Errorf("login and password are required: %w", apperrors.ErrInvalidInput)
	}

	creds, err := a.repo.GetCredentials(ctx, login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return err
	}

	err = bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return apperrors.ErrUnauthorized
	default:
		log.Errorf("compare password hash for user %d: %v", creds.ID, err)
		return err
	}
}

// HashPassword returns the bcrypt hash stored in users.password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
