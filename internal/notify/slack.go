package notify

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ErrDisabled is returned when no webhook is configured.
var ErrDisabled = errors.New("slack disabled")

// Placeholder is the webhook value meaning "not configured".
const Placeholder = "#"

type Slack struct {
	Webhook string
	Client  *http.Client
}

// Enabled reports whether webhook points somewhere real.
func Enabled(webhook string) bool {
	w := strings.TrimSpace(webhook)
	return w != "" && w != Placeholder
}

// AnyEnabled reports whether at least one webhook is usable.
func AnyEnabled(webhooks []string) bool {
	for _, w := range webhooks {
		if Enabled(w) {
			return true
		}
	}
	return false
}

func NewSlack(webhook string, timeout time.Duration) *Slack {
	if !Enabled(webhook) {
		return nil
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Slack{
		Webhook: strings.TrimSpace(webhook),
		Client:  &http.Client{Timeout: timeout},
	}
}

// FromWebhooks builds a notifier for every configured webhook. With none
// configured the result is a disabled Slack, so sends fail with ErrDisabled.
func FromWebhooks(webhooks []string, timeout time.Duration) Notifier {
	var m Multi
	for _, w := range webhooks {
		if s := NewSlack(w, timeout); s != nil {
			m = append(m, s)
		}
	}
	switch len(m) {
	case 0:
		return (*Slack)(nil)
	case 1:
		return m[0]
	default:
		return m
	}
}

func payload(text string) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("text")
	e.Str(text)
	e.ObjEnd()
	return e.Bytes()
}

func (s *Slack) Send(ctx context.Context, text string) error {
	if s == nil || s.Webhook == "" {
		return ErrDisabled
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Webhook, bytes.NewReader(payload(text)))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return errors.Wrap(err, "post webhook")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode/100 != 2 {
		return errors.Errorf("slack non-2xx: %s", resp.Status)
	}
	return nil
}
