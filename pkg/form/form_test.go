package form_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fluxcapital-backend/pkg/form"
	"fluxcapital-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillValid(f *form.Form) {
	f.SetName("Jo")
	f.SetEmail("jo@x.com")
	f.SetMessage("1234567890")
}

func TestSubmitInvalidStaysOffTheNetwork(t *testing.T) {
	// Any request reaching the server fails the test.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid form must not contact the server")
	}))
	defer srv.Close()

	f := form.New(srv.URL)
	f.SetName("J")
	f.SetEmail("not-an-email")
	f.SetMessage("short")

	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, form.StateIdle, f.State())
	errs := f.FieldErrors()
	assert.Equal(t, "Name must be at least 2 characters", errs[validation.FieldName])
	assert.Equal(t, "Please enter a valid email address", errs[validation.FieldEmail])
	assert.Equal(t, "Message must be at least 10 characters", errs[validation.FieldMessage])
}

func TestSetFieldClearsOnlyThatError(t *testing.T) {
	f := form.New("http://unused.invalid")
	f.SetName("J")
	f.SetEmail("bad")
	f.SetMessage("short")
	require.NoError(t, f.Submit(context.Background()))
	require.Len(t, f.FieldErrors(), 3)

	f.SetName("Joanna")

	errs := f.FieldErrors()
	assert.NotContains(t, errs, validation.FieldName)
	assert.Contains(t, errs, validation.FieldEmail)
	assert.Contains(t, errs, validation.FieldMessage)
}

func TestSubmitSuccessClearsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"Thank you for your message! We'll get back to you within 24 hours."}`))
	}))
	defer srv.Close()

	f := form.New(srv.URL)
	fillValid(f)
	f.SetPhone("+919876543210")

	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, form.StateSuccess, f.State())
	assert.Contains(t, f.Message(), "Thank you")
	assert.Empty(t, f.Values().Name, "fields are cleared after success")
	assert.Empty(t, f.Values().Phone)

	f.SendAnother()
	assert.Equal(t, form.StateIdle, f.State())
	assert.Empty(t, f.Message())
}

func TestSubmitServerErrorPreservesFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"Too many requests. Please try again later."}`))
	}))
	defer srv.Close()

	f := form.New(srv.URL)
	fillValid(f)

	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, form.StateError, f.State())
	assert.Equal(t, form.ErrKindServer, f.LastErrorKind())
	assert.Equal(t, "Too many requests. Please try again later.", f.Message())
	assert.Equal(t, "Jo", f.Values().Name, "fields survive a failed submission")

	f.Reset()
	assert.Equal(t, form.StateIdle, f.State())
	assert.Equal(t, form.ErrKindNone, f.LastErrorKind())
	assert.Equal(t, "Jo", f.Values().Name)
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close() // nothing listening anymore

	f := form.New(endpoint)
	fillValid(f)

	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, form.StateError, f.State())
	assert.Equal(t, form.ErrKindNetwork, f.LastErrorKind())
	assert.Contains(t, f.Message(), "Network error")
}

func TestSubmitMalformedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	f := form.New(srv.URL)
	fillValid(f)

	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, form.StateError, f.State())
	assert.Equal(t, "Something went wrong. Please try again.", f.Message())
}

func TestResetAndSendAnotherAreStateGuarded(t *testing.T) {
	f := form.New("http://unused.invalid")
	fillValid(f)

	// No-ops outside their source states.
	f.Reset()
	assert.Equal(t, form.StateIdle, f.State())
	f.SendAnother()
	assert.Equal(t, form.StateIdle, f.State())
}
