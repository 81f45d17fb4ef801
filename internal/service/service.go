package service

import (
	"context"
	"employee-directory/internal/repository"
	"employee-directory/pkg/models"
)

type Services struct {
	UserService
	AuthService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		UserService: NewUserService(repos.UserRepository),
		AuthService: NewAuthService(repos.UserRepository),
	}
}

type UserService interface {
	GetPersonal(ctx context.Context, userID int64) (models.User, error)
	GetJobInfo(ctx context.Context, userID int64) (models.JobInfo, error)
	GetUserDetails(ctx context.Context, userID int64) (models.UserDetails, error)
	GetUserPhoto(ctx context.Context, userID int64) (models.UserPhoto, error)
	UploadPhoto(ctx context.Context, userID int64, photoBase64 string) error
}

type AuthService interface {
	Login(ctx context.Context, login, password string) error
}
