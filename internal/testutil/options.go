// Package testutil provides fixtures and fakes shared by package tests.
package testutil

import "github.com/swalay/labelctl/internal/labels"

// RegistrationOption configures a registration fixture.
type RegistrationOption func(*labels.Registration)

// Registration returns the canonical super-user fixture
// (alice / a@b.com / 9999999999 / Acme Records) with opts applied.
func Registration(opts ...RegistrationOption) labels.Registration {
	reg := labels.Registration{
		Username: "alice",
		Email:    "a@b.com",
		Contact:  "9999999999",
		UserType: labels.UserTypeSuper,
		IsLabel:  true,
		Label:    "Acme Records",
	}
	for _, opt := range opts {
		opt(&reg)
	}
	return reg
}

// WithUsername sets the username.
func WithUsername(username string) RegistrationOption {
	return func(r *labels.Registration) { r.Username = username }
}

// WithEmail sets the email.
func WithEmail(email string) RegistrationOption {
	return func(r *labels.Registration) { r.Email = email }
}

// WithLabel sets the record label name.
func WithLabel(label string) RegistrationOption {
	return func(r *labels.Registration) { r.Label = label }
}

// AsNormal turns the fixture into a normal account on the default label.
func AsNormal() RegistrationOption {
	return func(r *labels.Registration) {
		r.UserType = labels.UserTypeNormal
		r.IsLabel = false
		r.Label = labels.DefaultLabel
	}
}
