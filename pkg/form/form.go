// Package form implements the contact-form client: field state, local
// validation through the shared schema, and submission to the backend
// endpoint. It mirrors the browser form's state machine so any Go frontend
// (CLI, TUI, SSR layer) behaves exactly like the web form.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fluxcapital-backend/internal/domain"
	"fluxcapital-backend/pkg/validation"
)

// State is the form's submission state.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrorKind distinguishes a transport failure from a server-reported error.
// Both are presented similarly to the user; callers that care (retry logic,
// diagnostics) can tell them apart.
type ErrorKind int

const (
	ErrKindNone ErrorKind = iota
	ErrKindNetwork
	ErrKindServer
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not resolved yet.
var ErrSubmitInFlight = errors.New("form: submission already in flight")

const (
	networkErrorMessage = "Network error. Please check your connection and try again."
	genericErrorMessage = "Something went wrong. Please try again."
)

// Form owns the contact-form values and state machine:
// idle -> submitting -> {success, error}, error -> idle via Reset,
// success -> idle via SendAnother. Not safe for concurrent use; a form has
// a single owner, and the submitting state blocks re-entry.
type Form struct {
	endpoint string
	client   *http.Client

	fields    domain.ContactRequest
	fieldErrs map[string]string

	state   State
	message string
	errKind ErrorKind
}

// New creates a form posting to the given endpoint URL.
func New(endpoint string) *Form {
	return NewWithClient(endpoint, &http.Client{Timeout: 15 * time.Second})
}

// NewWithClient creates a form using the provided HTTP client.
func NewWithClient(endpoint string, client *http.Client) *Form {
	return &Form{
		endpoint:  endpoint,
		client:    client,
		fieldErrs: make(map[string]string),
	}
}

// Field setters update the value and clear only that field's prior error.
// Clearing is optimistic: no re-validation happens until the next Submit.

func (f *Form) SetName(v string) {
	f.fields.Name = v
	delete(f.fieldErrs, validation.FieldName)
}

func (f *Form) SetEmail(v string) {
	f.fields.Email = v
	delete(f.fieldErrs, validation.FieldEmail)
}

func (f *Form) SetPhone(v string) {
	f.fields.Phone = v
	delete(f.fieldErrs, validation.FieldPhone)
}

func (f *Form) SetMessage(v string) {
	f.fields.Message = v
	delete(f.fieldErrs, validation.FieldMessage)
}

// Submit validates locally and, only if every field passes, posts the
// submission. Invalid input populates FieldErrors and stays off the network.
// The outcome lands in State/Message; the only error return is the
// re-entrancy guard.
func (f *Form) Submit(ctx context.Context) error {
	if f.state == StateSubmitting {
		return ErrSubmitInFlight
	}

	if _, err := validation.Validate(f.fields); err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			f.fieldErrs = make(map[string]string, len(fieldErrs))
			for field, msg := range fieldErrs {
				f.fieldErrs[field] = msg
			}
		}
		return nil
	}

	f.state = StateSubmitting
	f.message = ""
	f.errKind = ErrKindNone

	body, err := json.Marshal(f.fields)
	if err != nil {
		f.fail(ErrKindNetwork, genericErrorMessage)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		f.fail(ErrKindNetwork, genericErrorMessage)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		// No response received at all
		f.fail(ErrKindNetwork, networkErrorMessage)
		return nil
	}
	defer resp.Body.Close()

	// Never assume the body is well-formed JSON.
	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode == http.StatusOK && decodeErr == nil && result.Success {
		f.state = StateSuccess
		f.message = result.Message
		f.fields = domain.ContactRequest{}
		f.fieldErrs = make(map[string]string)
		return nil
	}

	msg := genericErrorMessage
	if decodeErr == nil && result.Error != "" {
		msg = result.Error
	}
	// Entered values are preserved so the user can correct and resubmit.
	f.fail(ErrKindServer, msg)
	return nil
}

// Reset returns the form to idle after a failed submission, keeping the
// entered values.
func (f *Form) Reset() {
	if f.state != StateError {
		return
	}
	f.state = StateIdle
	f.message = ""
	f.errKind = ErrKindNone
}

// SendAnother returns the form to idle after a successful submission.
func (f *Form) SendAnother() {
	if f.state != StateSuccess {
		return
	}
	f.state = StateIdle
	f.message = ""
}

func (f *Form) State() State { return f.state }

// Message is the status text from the last submission outcome.
func (f *Form) Message() string { return f.message }

// LastErrorKind reports whether the last failure was a transport failure or
// a server-returned error.
func (f *Form) LastErrorKind() ErrorKind { return f.errKind }

// Values returns a copy of the current field values.
func (f *Form) Values() domain.ContactRequest { return f.fields }

// FieldErrors returns a copy of the per-field error messages.
func (f *Form) FieldErrors() map[string]string {
	out := make(map[string]string, len(f.fieldErrs))
	for k, v := range f.fieldErrs {
		out[k] = v
	}
	return out
}

func (f *Form) fail(kind ErrorKind, message string) {
	f.state = StateError
	f.errKind = kind
	f.message = message
}
