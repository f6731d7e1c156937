package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/urbansymbiosis/dashboard-api/internal/model"
	"github.com/urbansymbiosis/dashboard-api/internal/repository"
)

type fakeUsers struct {
	users   []model.User
	listErr error
	getErr  error
	calls   int
}

func (f *fakeUsers) List(context.Context) ([]model.User, error) {
	f.calls++
	return f.users, f.listErr
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	f.calls++
	if f.getErr != nil {
		return model.User{}, f.getErr
	}
	for _, u := range f.users {
		if u.ID == id.String() {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

type fakeBookings struct {
	bookings []model.Booking
	listErr  error
	getErr   error
	calls    int
}

func (f *fakeBookings) List(context.Context) ([]model.Booking, error) {
	f.calls++
	return f.bookings, f.listErr
}

func (f *fakeBookings) GetByID(_ context.Context, id uuid.UUID) (model.Booking, error) {
	f.calls++
	if f.getErr != nil {
		return model.Booking{}, f.getErr
	}
	for _, b := range f.bookings {
		if b.ID == id.String() {
			return b, nil
		}
	}
	return model.Booking{}, repository.ErrNotFound
}

type fakeCredentials struct {
	creds map[string]model.Credentials
	err   error
}

func (f *fakeCredentials) GetByEmail(_ context.Context, email string) (model.Credentials, error) {
	if f.err != nil {
		return model.Credentials{}, f.err
	}
	c, ok := f.creds[email]
	if !ok {
		return model.Credentials{}, repository.ErrNotFound
	}
	return c, nil
}
