package service

import (
	"context"
	"employee-directory/internal/repository"
	"employee-directory/pkg/apperrors"
	"employee-directory/pkg/models"
	"encoding/base64"
	"fmt"
	"strings"
)

type UserServiceImpl struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{repo: repo}
}

func (u UserServiceImpl) GetPersonal(ctx context.Context, userID int64) (models.User, error) {
	return u.repo.GetPersonal(ctx, userID)
}

func (u UserServiceImpl) GetJobInfo(ctx context.Context, userID int64) (models.JobInfo, error) {
	titles, err := u.repo.GetJobInfo(ctx, userID)
	if err != nil {
		return models.JobInfo{}, err
	}
	return models.JobInfo{UserID: userID, JobTitles: titles}, nil
}

func (u UserServiceImpl) GetUserDetails(ctx context.Context, userID int64) (models.UserDetails, error) {
	return u.repo.GetUserDetails(ctx, userID)
}

// GetUserPhoto never reports a missing photo as an error: absent users and
// NULL photos both come back as an empty string.
func (u UserServiceImpl) GetUserPhoto(ctx context.Context, userID int64) (models.UserPhoto, error) {
	photo, err := u.repo.GetUserPhoto(ctx, userID)
	if err != nil {
		return models.UserPhoto{}, err
	}
	result := models.UserPhoto{UserID: userID}
	if len(photo) > 0 {
		result.Photo = base64.StdEncoding.EncodeToString(photo)
	}
	return result, nil
}

func (u UserServiceImpl) UploadPhoto(ctx context.Context, userID int64, photoBase64 string) error {
	if photoBase64 == "" {
		return fmt.Errorf("photo is required: %w", apperrors.ErrInvalidInput)
	}
	// Only canonical base64 is stored so GetUserPhoto hands back the same string.
	if strings.ContainsAny(photoBase64, "\r\n") {
		return fmt.Errorf("decode photo: line breaks are not allowed: %w", apperrors.ErrInvalidInput)
	}
	photo, err := base64.StdEncoding.Strict().DecodeString(photoBase64)
	if err != nil {
		return fmt.Errorf("decode photo: %v: %w", err, apperrors.ErrInvalidInput)
	}
	return u.repo.UpdatePhoto(ctx, userID, photo)
}
