package repository

import (
	"context"
	"employee-directory/pkg/apperrors"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"regexp"
	"testing"
	"time"
)

type staticDB struct {
	db *sqlx.DB
}

func (s staticDB) DB() *sqlx.DB { return s.db }

func newMockRepo(t *testing.T) (*UserRepositoryImpl, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(staticDB{db: sqlx.NewDb(db, "sqlmock")}), mock
}

var (
	personalQuery = regexp.QuoteMeta("FROM users WHERE id = $1")
	jobInfoQuery  = regexp.QuoteMeta("SELECT jt.title, d.department_name, r.role_name FROM job_titles jt")
	detailsQuery  = regexp.QuoteMeta("FROM user_details ud WHERE ud.user_id = $1")
	photoQuery    = regexp.QuoteMeta("SELECT photo FROM users WHERE id = $1")
	credsQuery    = regexp.QuoteMeta("SELECT id, password FROM users WHERE login = $1")
	updatePhoto   = regexp.QuoteMeta("UPDATE users SET photo = $1 WHERE id = $2")
)

func TestGetPersonal(t *testing.T) {
	repo, mock := newMockRepo(t)
	birth := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "login", "password", "name", "patronymic", "surname", "birthdate", "tg_nickname", "phone"}).
		AddRow(int64(7), "alice", "$2a$10$hash", "Alice", nil, "Smith", birth, "@alice", "+1 555 0100")
	mock.ExpectQuery(personalQuery).WithArgs(int64(7)).WillReturnRows(rows)

	user, err := repo.GetPersonal(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "alice", user.Login)
	assert.Equal(t, "$2a$10$hash", user.Password)
	require.NotNil(t, user.Name)
	assert.Equal(t, "Alice", *user.Name)
	assert.Nil(t, user.Patronymic)
	require.NotNil(t, user.Birthdate)
	assert.Equal(t, "1990-03-14", user.Birthdate.Format("2006-01-02"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPersonalNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(personalQuery).WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetPersonal(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPersonalDatabaseError(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("connection reset")
	mock.ExpectQuery(personalQuery).WithArgs(int64(1)).WillReturnError(boom)

	_, err := repo.GetPersonal(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetJobInfo(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"title", "department_name", "role_name"}).
		AddRow("Software Engineer", "IT", "admin")
	mock.ExpectQuery(jobInfoQuery).WithArgs(int64(3)).WillReturnRows(rows)

	titles, err := repo.GetJobInfo(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "Software Engineer", titles[0].Title)
	assert.Equal(t, "IT", titles[0].Department)
	assert.Equal(t, "admin", titles[0].Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJobInfoEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(jobInfoQuery).WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"title", "department_name", "role_name"}))

	_, err := repo.GetJobInfo(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetUserDetails(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"ncoins", "rating", "thanks_count", "interests"}).
		AddRow(int64(120), 4.25, int64(9), "chess")
	mock.ExpectQuery(detailsQuery).WithArgs(int64(5)).WillReturnRows(rows)

	details, err := repo.GetUserDetails(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), details.UserID)
	require.NotNil(t, details.Ncoins)
	assert.Equal(t, int64(120), *details.Ncoins)
	require.NotNil(t, details.Rating)
	assert.InDelta(t, 4.25, *details.Rating, 0.001)
	require.NotNil(t, details.Interests)
	assert.Equal(t, "chess", *details.Interests)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserDetailsNullColumns(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"ncoins", "rating", "thanks_count", "interests"}).
		AddRow(nil, nil, nil, nil)
	mock.ExpectQuery(detailsQuery).WithArgs(int64(5)).WillReturnRows(rows)

	details, err := repo.GetUserDetails(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, details.Ncoins)
	assert.Nil(t, details.Rating)
	assert.Nil(t, details.ThanksCount)
	assert.Nil(t, details.Interests)
}

func TestGetUserDetailsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(detailsQuery).WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"ncoins", "rating", "thanks_count", "interests"}))

	_, err := repo.GetUserDetails(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetUserPhoto(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(photoQuery).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"photo"}).AddRow([]byte{0x89, 0x50, 0x4e, 0x47}))

	photo, err := repo.GetUserPhoto(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, photo)
}

func TestGetUserPhotoAbsent(t *testing.T) {
	t.Run("null column", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(photoQuery).WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"photo"}).AddRow(nil))

		photo, err := repo.GetUserPhoto(context.Background(), 2)
		require.NoError(t, err)
		assert.Nil(t, photo)
	})
	t.Run("missing user", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(photoQuery).WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"photo"}))

		photo, err := repo.GetUserPhoto(context.Background(), 404)
		require.NoError(t, err)
		assert.Nil(t, photo)
	})
}

func TestGetCredentials(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(credsQuery).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password"}).AddRow(int64(1), "$2a$10$hash"))

	creds, err := repo.GetCredentials(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), creds.ID)
	assert.Equal(t, "$2a$10$hash", creds.PasswordHash)
}

func TestGetCredentialsUnknownLogin(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(credsQuery).WithArgs("mallory").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password"}))

	_, err := repo.GetCredentials(context.Background(), "mallory")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdatePhoto(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(updatePhoto).WithArgs([]byte("img"), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePhoto(context.Background(), 7, []byte("img")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePhotoMissingUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(updatePhoto).WithArgs([]byte("img"), int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePhoto(context.Background(), 404, []byte("img"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
