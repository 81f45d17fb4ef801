package repository

import (
	"context"
	"database/sql"
	"employee-directory/pkg/apperrors"
	"employee-directory/pkg/models"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
)

type UserRepositoryImpl struct {
	db DBProvider
}

func NewUserRepository(db DBProvider) *UserRepositoryImpl {
	return &UserRepositoryImpl{
		db: db,
	}
}

func (u UserRepositoryImpl) GetPersonal(ctx context.Context, userID int64) (models.User, error) {
	query := `
		SELECT id, login, password, name, patronymic, surname, birthdate, tg_nickname, phone
		FROM users
		WHERE id = $1;
	`
	row := u.db.DB().QueryRowxContext(ctx, query, userID)

	var user models.User
	err := row.Scan(&user.ID, &user.Login, &user.Password, &user.Name, &user.Patronymic, &user.Surname,
		&user.Birthdate, &user.TgNickname, &user.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound)
		}
		log.Errorf("get personal err: %v", err)
		return models.User{}, err
	}
	return user, nil
}

func (u UserRepositoryImpl) GetJobInfo(ctx context.Context, userID int64) ([]models.JobTitle, error) {
	query := `
		SELECT jt.title, d.department_name, r.role_name
		FROM job_titles jt
		JOIN user_job_titles ujt ON jt.id = ujt.job_title_id
		JOIN user_departments ud ON ujt.user_id = ud.user_id
		JOIN departments d ON ud.department_id = d.id
		JOIN user_roles ur ON ud.user_id = ur.user_id
		JOIN roles r ON ur.role_id = r.id
		WHERE ujt.user_id = $1;
	`
	var titles []models.JobTitle
	if err := u.db.DB().SelectContext(ctx, &titles, query, userID); err != nil {
		log.Errorf("get job info err: %v", err)
		return nil, err
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("job info for user %d: %w", userID, apperrors.ErrNotFound)
	}
	return titles, nil
}

func (u UserRepositoryImpl) GetUserDetails(ctx context.Context, userID int64) (models.UserDetails, error) {
	query := `
		SELECT ud.ncoins, ud.rating, ud.thanks_count, ud.interests
		FROM user_details ud
		WHERE ud.user_id = $1;
	`
	var details models.UserDetails
	if err := u.db.DB().GetContext(ctx, &details, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserDetails{}, fmt.Errorf("details for user %d: %w", userID, apperrors.ErrNotFound)
		}
		log.Errorf("get user details err: %v", err)
		return models.UserDetails{}, err
	}
	details.UserID = userID
	return details, nil
}

// GetUserPhoto returns nil when the user has no photo or does not exist.
func (u UserRepositoryImpl) GetUserPhoto(ctx context.Context, userID int64) ([]byte, error) {
	query := `SELECT photo FROM users WHERE id = $1;`

	var photo []byte
	err := u.db.DB().QueryRowContext(ctx, query, userID).Scan(&photo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Errorf("get user photo err: %v", err)
		return nil, err
	}
	return photo, nil
}

func (u UserRepositoryImpl) GetCredentials(ctx context.Context, login string) (models.Credentials, error) {
	query := `SELECT id, password FROM users WHERE login = $1;`

	var creds models.Credentials
	if err := u.db.DB().GetContext(ctx, &creds, query, login); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credentials{}, fmt.Errorf("login %q: %w", login, apperrors.ErrNotFound)
		}
		log.Errorf("get credentials err: %v", err)
		return models.Credentials{}, err
	}
	return creds, nil
}

// UpdatePhoto overwrites the stored photo. A missing user leaves the table
// untouched and yields ErrNotFound.
func (u UserRepositoryImpl) UpdatePhoto(ctx context.Context, userID int64, photo []byte) error {
	query := `UPDATE users SET photo = $1 WHERE id = $2;`

	res, err := u.db.DB().ExecContext(ctx, query, photo, userID)
	if err != nil {
		log.Errorf("update photo err: %v", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Errorf("update photo rows affected err: %v", err)
		return err
	}
	if affected == 0 {
		return fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}
