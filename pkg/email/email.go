package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"
	texttemplate "text/template"
	"time"

	"fluxcapital-backend/config"
)

// ContactEmailData holds everything embedded in a contact notification.
// Phone may be empty; the phone block is rendered only when it is not.
type ContactEmailData struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	SubmittedAt time.Time
}

// EmailService relays contact submissions to the business inbox via SMTP,
// rendering both an HTML and a plain-text body.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
	timeout   time.Duration
	loc       *time.Location
}

// NewEmailService creates a new email service with Brevo SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+1800)
	}
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
		timeout:   cfg.EmailSendTimeout,
		loc:       loc,
	}
}

// contactHTMLTemplate matches the FluxCapital brand palette used by the site.
var contactHTMLTemplate = template.Must(template.New("contact_html").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #0d1b2a; color: #f7f5ef; padding: 20px; text-align: center;">
    <h1 style="margin: 0; color: #c2a15a;">FluxCapital</h1>
    <p style="margin: 5px 0 0 0; opacity: 0.8;">New Contact Form Submission</p>
  </div>
  <div style="padding: 30px; background: #f7f5ef;">
    <h2 style="color: #0d1b2a; margin-top: 0;">Contact Details</h2>
    <div style="margin-bottom: 20px;">
      <strong style="color: #0d1b2a;">Name:</strong><br>
      <span style="color: #666;">{{.Name}}</span>
    </div>
    <div style="margin-bottom: 20px;">
      <strong style="color: #0d1b2a;">Email:</strong><br>
      <a href="mailto:{{.Email}}" style="color: #c2a15a;">{{.Email}}</a>
    </div>
    {{if .Phone}}<div style="margin-bottom: 20px;">
      <strong style="color: #0d1b2a;">Phone:</strong><br>
      <span style="color: #666;">{{.Phone}}</span>
    </div>
    {{end}}<div style="margin-bottom: 20px;">
      <strong style="color: #0d1b2a;">Message:</strong><br>
      <div style="background: white; padding: 15px; border-radius: 5px; border-left: 4px solid #c2a15a; margin-top: 10px;">
        {{.MessageHTML}}
      </div>
    </div>
    <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd;">
      <p style="color: #666; font-size: 14px; margin: 0;">Submitted on {{.SubmittedAt}}</p>
    </div>
  </div>
</div>`))

var contactTextTemplate = texttemplate.Must(texttemplate.New("contact_text").Parse(`New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
{{if .Phone}}Phone: {{.Phone}}
{{end}}
Message:
{{.Message}}

Submitted on {{.SubmittedAt}}
`))

type renderData struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	MessageHTML template.HTML
	SubmittedAt string
}

// Compose renders the HTML and plain-text bodies for a submission.
func (s *EmailService) Compose(data ContactEmailData) (htmlBody, textBody string, err error) {
	// Escape first, then turn newlines into <br> so multi-line messages keep
	// their shape in the HTML rendering.
	escaped := template.HTMLEscapeString(data.Message)
	rd := renderData{
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		Message:     data.Message,
		MessageHTML: template.HTML(strings.ReplaceAll(escaped, "\n", "<br>")),
		SubmittedAt: data.SubmittedAt.In(s.loc).Format("02/01/2006, 3:04:05 PM") + " IST",
	}

	var html bytes.Buffer
	if err := contactHTMLTemplate.Execute(&html, rd); err != nil {
		return "", "", fmt.Errorf("failed to render HTML body: %w", err)
	}

	var text bytes.Buffer
	if err := contactTextTemplate.Execute(&text, rd); err != nil {
		return "", "", fmt.Errorf("failed to render text body: %w", err)
	}

	return html.String(), text.String(), nil
}

// SendContactEmail composes and delivers a contact notification with a fixed
// sender identity and the business inbox as recipient. The context bounds
// the SMTP exchange; a hung relay surfaces as an error instead of blocking
// the handler.
func (s *EmailService) SendContactEmail(ctx context.Context, data ContactEmailData) error {
	htmlBody, textBody, err := s.Compose(data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("New Contact Form Submission from %s", data.Name)
	msg, err := buildMIMEMessage(s.fromEmail, s.toEmail, data.Email, subject, htmlBody, textBody)
	if err != nil {
		return fmt.Errorf("failed to build email message: %w", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	// net/smtp has no context support; run the exchange on the side and
	// abandon it when the deadline fires.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email delivery timed out: %w", ctx.Err())
	}
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// buildMIMEMessage assembles a multipart/alternative message carrying both
// renderings, with Reply-To pointing at the submitter.
func buildMIMEMessage(from, to, replyTo, subject, htmlBody, textBody string) ([]byte, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Reply-To: %s\r\n", replyTo)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n", w.Boundary())
	msg.WriteString("\r\n")

	// Plain text first so clients preferring it stop there.
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte(textBody)); err != nil {
		return nil, err
	}

	part, err = w.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte(htmlBody)); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	msg.Write(body.Bytes())
	return msg.Bytes(), nil
}
