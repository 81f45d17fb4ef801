package repository

import (
	"context"
	"employee-directory/pkg/models"
	"github.com/jmoiron/sqlx"
)

// DBProvider hands out the current connection pool. Each repository call
// asks for it anew and holds a connection only for the one statement it runs.
type DBProvider interface {
	DB() *sqlx.DB
}

type Repositories struct {
	UserRepository
}

func NewRepositories(db DBProvider) *Repositories {
	userRepository := NewUserRepository(db)
	return &Repositories{UserRepository: userRepository}
}

type UserRepository interface {
	GetPersonal(ctx context.Context, userID int64) (models.User, error)
	GetJobInfo(ctx context.Context, userID int64) ([]models.JobTitle, error)
	GetUserDetails(ctx context.Context, userID int64) (models.UserDetails, error)
	GetUserPhoto(ctx context.Context, userID int64) ([]byte, error)
	GetCredentials(ctx context.Context, login string) (models.Credentials, error)
	UpdatePhoto(ctx context.Context, userID int64, photo []byte) error
}
