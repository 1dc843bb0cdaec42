package usecase_test

import (
	"context"
	"errors"
	"testing"

	"fluxcapital-backend/internal/domain"
	"fluxcapital-backend/internal/usecase"
	"fluxcapital-backend/pkg/email"
	"fluxcapital-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Email Sender
type MockSender struct {
	mock.Mock
	configured bool
}

func (m *MockSender) SendContactEmail(ctx context.Context, data email.ContactEmailData) error {
	return m.Called(ctx, data).Error(0)
}

func (m *MockSender) IsConfigured() bool {
	return m.configured
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jo",
		Email:   "jo@x.com",
		Message: "1234567890",
	}
}

func TestSendContactMessage(t *testing.T) {
	t.Run("sends exactly one email for a valid submission", func(t *testing.T) {
		sender := &MockSender{configured: true}
		sender.On("SendContactEmail", mock.Anything, mock.AnythingOfType("email.ContactEmailData")).
			Return(nil).
			Run(func(args mock.Arguments) {
				data := args.Get(1).(email.ContactEmailData)
				assert.Equal(t, "Jo", data.Name)
				assert.Equal(t, "jo@x.com", data.Email)
				assert.Equal(t, "1234567890", data.Message)
				assert.False(t, data.SubmittedAt.IsZero(), "submission timestamp must be server-generated")
			})

		uc := usecase.NewContactUsecase(sender)
		err := uc.SendContactMessage(context.Background(), validRequest())

		require.NoError(t, err)
		sender.AssertNumberOfCalls(t, "SendContactEmail", 1)
	})

	t.Run("passes the optional phone through when provided", func(t *testing.T) {
		sender := &MockSender{configured: true}
		sender.On("SendContactEmail", mock.Anything, mock.AnythingOfType("email.ContactEmailData")).
			Return(nil).
			Run(func(args mock.Arguments) {
				data := args.Get(1).(email.ContactEmailData)
				assert.Equal(t, "+919876543210", data.Phone)
			})

		req := validRequest()
		req.Phone = "+919876543210"

		uc := usecase.NewContactUsecase(sender)
		require.NoError(t, uc.SendContactMessage(context.Background(), req))
	})

	t.Run("rejects invalid input without touching the sender", func(t *testing.T) {
		sender := &MockSender{configured: true}

		req := validRequest()
		req.Name = "J"

		uc := usecase.NewContactUsecase(sender)
		err := uc.SendContactMessage(context.Background(), req)

		var fieldErrs validation.Errors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, validation.FieldName)
		sender.AssertNotCalled(t, "SendContactEmail")
	})

	t.Run("reports missing configuration distinctly", func(t *testing.T) {
		sender := &MockSender{configured: false}

		uc := usecase.NewContactUsecase(sender)
		err := uc.SendContactMessage(context.Background(), validRequest())

		assert.ErrorIs(t, err, usecase.ErrEmailNotConfigured)
		sender.AssertNotCalled(t, "SendContactEmail")
	})

	t.Run("wraps delivery failures", func(t *testing.T) {
		sendErr := errors.New("smtp: connection refused")
		sender := &MockSender{configured: true}
		sender.On("SendContactEmail", mock.Anything, mock.Anything).Return(sendErr)

		uc := usecase.NewContactUsecase(sender)
		err := uc.SendContactMessage(context.Background(), validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, sendErr)
	})
}
