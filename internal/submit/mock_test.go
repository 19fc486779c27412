package submit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Gamikaru/thecopysocial/internal/form"
)

func TestMock_Accepts(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewMock("contact", 0, false, zap.New(core))

	require.NoError(t, m.Submit(context.Background(), map[string]string{"email": "a@b.co"}))
	entries := logs.FilterMessage("submission accepted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "contact", entries[0].ContextMap()["form"])
	assert.NotEmpty(t, entries[0].ContextMap()["submission"])
}

func TestMock_Fails(t *testing.T) {
	m := NewMock("contact", 0, true, nil)
	assert.ErrorIs(t, m.Submit(context.Background(), nil), ErrRejected)
}

func TestMock_DelayHonoursContext(t *testing.T) {
	m := NewMock("contact", time.Hour, false, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := m.Submit(ctx, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestMock_DrivesFormMachine(t *testing.T) {
	n := form.NewNewsletter()
	n.SetEmail("reader@example.com")

	require.NoError(t, n.Submit(context.Background(), NewMock("newsletter", time.Millisecond, true, nil)))
	assert.Equal(t, form.Failed, n.State())
	assert.Equal(t, "reader@example.com", n.Email())

	require.NoError(t, n.Submit(context.Background(), NewMock("newsletter", time.Millisecond, false, nil)))
	assert.Equal(t, form.Success, n.State())
}
