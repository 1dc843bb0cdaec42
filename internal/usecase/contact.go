package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fluxcapital-backend/internal/domain"
	"fluxcapital-backend/pkg/email"
	"fluxcapital-backend/pkg/validation"
)

// ErrEmailNotConfigured is returned when SMTP credentials are missing and no
// delivery can be attempted.
var ErrEmailNotConfigured = errors.New("email service is not configured")

// EmailSender delivers a composed contact notification. Satisfied by
// *email.EmailService; tests substitute a mock.
type EmailSender interface {
	SendContactEmail(ctx context.Context, data email.ContactEmailData) error
	IsConfigured() bool
}

type contactUsecase struct {
	sender EmailSender
	now    func() time.Time
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender EmailSender) domain.ContactUsecase {
	return &contactUsecase{
		sender: sender,
		now:    time.Now,
	}
}

// SendContactMessage re-validates the candidate request (the client-side
// check is never trusted alone), stamps the submission time, and relays
// exactly one email per valid submission. Nothing is persisted.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	sub, err := validation.Validate(*req)
	if err != nil {
		return err
	}

	if !uc.sender.IsConfigured() {
		return ErrEmailNotConfigured
	}

	data := email.ContactEmailData{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Message:     sub.Message,
		SubmittedAt: uc.now(),
	}

	if err := uc.sender.SendContactEmail(ctx, data); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}
