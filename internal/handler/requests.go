package handler

import "github.com/urbansymbiosis/dashboard-api/internal/validation"

// EmptyRequest is used by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

// ResourceIDRequest binds the :id path parameter. Its format has already
// been enforced by validation.ValidateUUID on the route.
type ResourceIDRequest struct {
	ID string `param:"id"`
}

func (r *ResourceIDRequest) Validate() error { return nil }

// CreateBookingRequest is the raw booking body. The route's
// validation.ValidateBody(validation.BookingSchema) has already checked it.
type CreateBookingRequest map[string]any

func (r *CreateBookingRequest) Validate() error { return nil }

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}
