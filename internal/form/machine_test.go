package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okSubmitter(got *map[string]string) Submitter {
	return SubmitterFunc(func(_ context.Context, data map[string]string) error {
		if got != nil {
			*got = data
		}
		return nil
	})
}

var errDown = errors.New("mail server down")

func failSubmitter() Submitter {
	return SubmitterFunc(func(context.Context, map[string]string) error { return errDown })
}

func fillValid(m *Machine) {
	m.Set("name", "Ada")
	m.Set("email", "ada@example.com")
	m.Set("service", "Website copy")
	m.Set("message", "Hello there")
}

func TestValidateField(t *testing.T) {
	email := Field{ID: "email", Label: "Email", Type: Email, Required: true}
	optionalEmail := Field{ID: "email", Label: "Email", Type: Email}
	name := Field{ID: "name", Label: "Name", Type: Text, Required: true}

	tests := []struct {
		name  string
		field Field
		value string
		want  string
	}{
		{"required empty", name, "", "Name is required"},
		{"required whitespace", name, "  \t", "Name is required"},
		{"required filled", name, "Ada", ""},
		{"bad email", email, "not-an-email", emailMessage},
		{"email without tld", email, "user@example", emailMessage},
		{"email with space", email, "us er@example.com", emailMessage},
		{"good email", email, "user@example.com", ""},
		{"optional empty email", optionalEmail, "", ""},
		{"optional bad email", optionalEmail, "nope", emailMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateField(tt.field, tt.value))
		})
	}
}

func TestSubmit_RequiredFieldEmpty(t *testing.T) {
	m := NewMachine(ContactFields())
	fillValid(m)
	m.Set("message", "   ")

	called := false
	err := m.Submit(context.Background(), SubmitterFunc(func(context.Context, map[string]string) error {
		called = true
		return nil
	}))

	assert.ErrorIs(t, err, ErrInvalid)
	assert.False(t, called)
	assert.Equal(t, Idle, m.State())
	assert.True(t, m.Touched("message"))
	assert.Equal(t, "Message is required", m.FieldError("message"))
	for _, id := range []string{"name", "email", "company", "service"} {
		assert.True(t, m.Touched(id), id)
		assert.Empty(t, m.FieldError(id), id)
	}
	assert.Len(t, m.Errors(), 1)
}

func TestSubmit_Success(t *testing.T) {
	m := NewMachine(ContactFields())
	fillValid(m)
	m.Set("name", "  Ada  ")

	var got map[string]string
	require.NoError(t, m.Submit(context.Background(), okSubmitter(&got)))

	assert.Equal(t, Success, m.State())
	assert.Equal(t, "Ada", got["name"])
	assert.Equal(t, "", got["company"])
	for _, f := range m.Fields() {
		assert.Empty(t, m.Value(f.ID), f.ID)
		assert.False(t, m.Touched(f.ID), f.ID)
	}

	assert.ErrorIs(t, m.Submit(context.Background(), okSubmitter(nil)), ErrBusy)

	m.Reset()
	assert.Equal(t, Idle, m.State())
}

func TestSubmit_FailurePreservesValues(t *testing.T) {
	m := NewMachine(ContactFields())
	fillValid(m)
	before := m.Values()

	require.NoError(t, m.Submit(context.Background(), failSubmitter()))

	assert.Equal(t, Failed, m.State())
	assert.Equal(t, before, m.Values())
	assert.ErrorIs(t, m.SubmitErr(), errDown)
	assert.Equal(t, FailureMessage, m.Banner())

	m.Set("message", "Hello again")
	assert.Equal(t, Idle, m.State(), "editing after an error makes the form editable again")
	assert.Empty(t, m.Banner())

	require.NoError(t, m.Submit(context.Background(), okSubmitter(nil)))
	assert.Equal(t, Success, m.State())
}

func TestSubmit_RetryDirectlyFromError(t *testing.T) {
	m := NewMachine(ContactFields())
	fillValid(m)
	require.NoError(t, m.Submit(context.Background(), failSubmitter()))
	require.NoError(t, m.Submit(context.Background(), okSubmitter(nil)))
	assert.Equal(t, Success, m.State())
	assert.Nil(t, m.SubmitErr())
}

func TestSubmit_DuplicateWhileSubmitting(t *testing.T) {
	m := NewMachine(ContactFields())
	fillValid(m)

	entered := make(chan struct{})
	release := make(chan struct{})
	slow := SubmitterFunc(func(context.Context, map[string]string) error {
		close(entered)
		<-release
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- m.Submit(context.Background(), slow) }()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("submitter never called")
	}
	assert.Equal(t, Submitting, m.State())
	assert.ErrorIs(t, m.Submit(context.Background(), okSubmitter(nil)), ErrBusy)

	m.Set("name", "changed mid-flight")
	m.Reset()
	assert.Equal(t, Submitting, m.State())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, Success, m.State())
}

func TestSubmit_ContextCancelled(t *testing.T) {
	m := NewMachine(ContactFields())
	fillValid(m)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Submit(ctx, SubmitterFunc(func(ctx context.Context, _ map[string]string) error {
		return ctx.Err()
	}))
	require.NoError(t, err)
	assert.Equal(t, Failed, m.State())
	assert.ErrorIs(t, m.SubmitErr(), context.Canceled)
	assert.Equal(t, "Ada", m.Value("name"))
}

func TestBlur(t *testing.T) {
	m := NewMachine(ContactFields())

	m.Set("email", "nope")
	assert.Empty(t, m.FieldError("email"), "untouched fields show no error")

	m.Blur("email")
	assert.Equal(t, emailMessage, m.FieldError("email"))

	m.Set("email", "ok@example.com")
	assert.Empty(t, m.FieldError("email"), "error clears as soon as the field is valid")
	assert.Empty(t, m.Errors())
}

func TestUnknownFieldIgnored(t *testing.T) {
	m := NewMachine(ContactFields())
	m.Set("phone", "123")
	m.Blur("phone")
	assert.NotContains(t, m.Values(), "phone")
	assert.False(t, m.Touched("phone"))
}

func TestFill(t *testing.T) {
	m := NewMachine(ContactFields())
	m.Fill(map[string]string{"name": "Ada", "email": "a@b.co", "extra": "x"})
	assert.Equal(t, "Ada", m.Value("name"))
	assert.NotContains(t, m.Values(), "extra")
	assert.False(t, m.ValidateForm())
	assert.Contains(t, m.Errors(), "message")
}

func TestNewsletter(t *testing.T) {
	t.Run("empty is refused", func(t *testing.T) {
		n := NewNewsletter()
		assert.ErrorIs(t, n.Submit(context.Background(), okSubmitter(nil)), ErrInvalid)
		assert.Equal(t, "Email is required", n.FieldError("email"))
		assert.Equal(t, Idle, n.State())
	})

	t.Run("no pattern check", func(t *testing.T) {
		n := NewNewsletter()
		n.SetEmail("not-an-email")
		require.NoError(t, n.Submit(context.Background(), okSubmitter(nil)))
		assert.Equal(t, Success, n.State())
		assert.Empty(t, n.Email())
	})

	t.Run("error keeps the address", func(t *testing.T) {
		n := NewNewsletter()
		n.SetEmail("reader@example.com")
		require.NoError(t, n.Submit(context.Background(), failSubmitter()))
		assert.Equal(t, Failed, n.State())
		assert.Equal(t, "reader@example.com", n.Email())
		assert.Equal(t, NewsletterFailureMessage, n.Banner())
		assert.NotContains(t, n.Banner(), "message")
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "error", Failed.String())
}
