// Package submit provides the Submitter the site runs with. Nothing here
// talks to the network: a submission is logged after an artificial delay.
package submit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrRejected is returned by a Mock configured to fail.
var ErrRejected = errors.New("submission rejected")

// Mock waits Delay and then accepts the submission, or rejects it when Fail
// is set. Only field names are logged, never values.
type Mock struct {
	Name  string
	Delay time.Duration
	Fail  bool
	Log   *zap.Logger
}

func NewMock(name string, delay time.Duration, fail bool, log *zap.Logger) *Mock {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mock{Name: name, Delay: delay, Fail: fail, Log: log}
}

func (m *Mock) Submit(ctx context.Context, data map[string]string) error {
	id := uuid.NewString()
	fields := make([]string, 0, len(data))
	for k, v := range data {
		if v != "" {
			fields = append(fields, k)
		}
	}
	log := m.Log.With(zap.String("form", m.Name), zap.String("submission", id))
	log.Debug("submission received", zap.Strings("fields", fields))

	if m.Delay > 0 {
		t := time.NewTimer(m.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			log.Warn("submission abandoned", zap.Error(ctx.Err()))
			return ctx.Err()
		case <-t.C:
		}
	}

	if m.Fail {
		log.Warn("submission rejected")
		return ErrRejected
	}
	log.Info("submission accepted")
	return nil
}
