package email_test

import (
	"testing"
	"time"

	"fluxcapital-backend/config"
	"fluxcapital-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *email.EmailService {
	return email.NewEmailService(&config.Config{
		SMTPHost:       "smtp-relay.brevo.com",
		SMTPPort:       "587",
		SMTPUsername:   "apikey",
		SMTPPassword:   "secret",
		SMTPFromEmail:  "noreply@fluxtrading.in",
		ContactEmailTo: "fluxcapital11@gmail.com",
	})
}

func sampleData() email.ContactEmailData {
	return email.ContactEmailData{
		Name:        "Jo Smith",
		Email:       "jo@x.com",
		Message:     "I would like to know more about portfolio strategy.",
		SubmittedAt: time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestComposeRendersBothBodies(t *testing.T) {
	htmlBody, textBody, err := newService().Compose(sampleData())
	require.NoError(t, err)

	assert.Contains(t, htmlBody, "Jo Smith")
	assert.Contains(t, htmlBody, `mailto:jo@x.com`)
	assert.Contains(t, htmlBody, "portfolio strategy")
	assert.Contains(t, htmlBody, "FluxCapital")

	assert.Contains(t, textBody, "Name: Jo Smith")
	assert.Contains(t, textBody, "Email: jo@x.com")
	assert.Contains(t, textBody, "portfolio strategy")
}

func TestComposePhoneLineIsConditional(t *testing.T) {
	svc := newService()

	htmlBody, textBody, err := svc.Compose(sampleData())
	require.NoError(t, err)
	assert.NotContains(t, htmlBody, "Phone:")
	assert.NotContains(t, textBody, "Phone:")

	data := sampleData()
	data.Phone = "+919876543210"
	htmlBody, textBody, err = svc.Compose(data)
	require.NoError(t, err)
	assert.Contains(t, htmlBody, "Phone:")
	assert.Contains(t, htmlBody, "+919876543210")
	assert.Contains(t, textBody, "Phone: +919876543210")
}

func TestComposeRendersISTTimestamp(t *testing.T) {
	// 09:30 UTC is 15:00 IST.
	htmlBody, textBody, err := newService().Compose(sampleData())
	require.NoError(t, err)

	assert.Contains(t, htmlBody, "Submitted on 14/03/2025, 3:00:00 PM IST")
	assert.Contains(t, textBody, "Submitted on 14/03/2025, 3:00:00 PM IST")
}

func TestComposeEscapesHTMLInMessage(t *testing.T) {
	data := sampleData()
	data.Message = "<script>alert('x')</script>\nsecond line"

	htmlBody, _, err := newService().Compose(data)
	require.NoError(t, err)

	assert.NotContains(t, htmlBody, "<script>")
	assert.Contains(t, htmlBody, "&lt;script&gt;")
	assert.Contains(t, htmlBody, "<br>", "newlines become line breaks in the HTML body")
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, newService().IsConfigured())

	unconfigured := email.NewEmailService(&config.Config{SMTPHost: "smtp-relay.brevo.com"})
	assert.False(t, unconfigured.IsConfigured())
}
