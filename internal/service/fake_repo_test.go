package service

import (
	"context"
	"employee-directory/pkg/apperrors"
	"employee-directory/pkg/models"
	"fmt"
)

// fakeRepo is an in-memory UserRepository keyed by user id.
type fakeRepo struct {
	users   map[int64]models.User
	details map[int64]models.UserDetails
	jobs    map[int64][]models.JobTitle
	photos  map[int64][]byte
	err     error

	credentialCalls int
	updateCalls     int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:   map[int64]models.User{},
		details: map[int64]models.UserDetails{},
		jobs:    map[int64][]models.JobTitle{},
		photos:  map[int64][]byte{},
	}
}

func (f *fakeRepo) GetPersonal(_ context.Context, userID int64) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	u, ok := f.users[userID]
	if !ok {
		return models.User{}, fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound)
	}
	return u, nil
}

func (f *fakeRepo) GetJobInfo(_ context.Context, userID int64) ([]models.JobTitle, error) {
	if f.err != nil {
		return nil, f.err
	}
	titles := f.jobs[userID]
	if len(titles) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return titles, nil
}

func (f *fakeRepo) GetUserDetails(_ context.Context, userID int64) (models.UserDetails, error) {
	if f.err != nil {
		return models.UserDetails{}, f.err
	}
	d, ok := f.details[userID]
	if !ok {
		return models.UserDetails{}, apperrors.ErrNotFound
	}
	d.UserID = userID
	return d, nil
}

func (f *fakeRepo) GetUserPhoto(_ context.Context, userID int64) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.photos[userID], nil
}

func (f *fakeRepo) GetCredentials(_ context.Context, login string) (models.Credentials, error) {
	f.credentialCalls++
	if f.err != nil {
		return models.Credentials{}, f.err
	}
	for _, u := range f.users {
		if u.Login == login {
			return models.Credentials{ID: u.ID, PasswordHash: u.Password}, nil
		}
	}
	return models.Credentials{}, apperrors.ErrNotFound
}

func (f *fakeRepo) UpdatePhoto(_ context.Context, userID int64, photo []byte) error {
	f.updateCalls++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[userID]; !ok {
		return apperrors.ErrNotFound
	}
	f.photos[userID] = photo
	return nil
}
