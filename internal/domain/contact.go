package domain

import "context"

// ContactRequest is a candidate submission: raw contact-form input that has
// not yet passed validation. Length bounds are checked on the raw value, not
// the trimmed value, so boundary behavior matches the public form exactly.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,contact_email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// ContactSubmission is a validated submission. It is only ever produced by
// the validation package, so every field already satisfies its constraint
// and it is safe to hand straight to email composition.
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the candidate request and relays it to the
	// business inbox. Returns validation.Errors when fields fail their
	// constraints, usecase.ErrEmailNotConfigured when delivery is impossible,
	// or a wrapped delivery error.
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
