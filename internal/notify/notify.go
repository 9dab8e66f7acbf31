package notify

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Notifier delivers one text message to a chat endpoint.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Multi fans a message out to every notifier and reports all failures.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, text string) error {
	var err error
	for _, n := range m {
		if n == nil {
			continue
		}
		err = multierr.Append(err, n.Send(ctx, text))
	}
	return err
}

// BestEffort never surfaces delivery errors: they are logged and the
// message is dropped.
type BestEffort struct {
	Inner   Notifier
	Logger  *zap.Logger
	Timeout time.Duration
}

func NewBestEffort(inner Notifier, logger *zap.Logger, timeout time.Duration) *BestEffort {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BestEffort{Inner: inner, Logger: logger, Timeout: timeout}
}

// Notify sends text once. It returns normally whatever happens downstream.
func (b *BestEffort) Notify(ctx context.Context, text string) {
	if b.Inner == nil {
		b.Logger.Warn("notify_skipped", zap.Error(ErrDisabled))
		return
	}
	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}
	err := b.Inner.Send(ctx, text)
	switch {
	case err == nil:
	case errors.Is(err, ErrDisabled):
		b.Logger.Warn("notify_skipped", zap.Error(err))
	default:
		b.Logger.Error("notify_failed", zap.Error(err))
	}
}
