package probe

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultStatusURL is the public lookup endpoint.
const DefaultStatusURL = "https://check.skiddle.id/"

const maxResponseBytes = 1 << 20

// StatusChecker asks a remote lookup service whether a domain is blocked.
// It is safe for concurrent use.
type StatusChecker struct {
	Client  *http.Client
	BaseURL string
	Logger  *zap.Logger
}

func NewStatusChecker(baseURL string, timeout time.Duration, logger *zap.Logger) *StatusChecker {
	if baseURL == "" {
		baseURL = DefaultStatusURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusChecker{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: baseURL,
		Logger:  logger,
	}
}

var _ Checker = (*StatusChecker)(nil)

// Check normalizes raw and performs exactly one lookup. Anything short of an
// explicit "blocked": false for the domain is reported as blocked.
func (s *StatusChecker) Check(ctx context.Context, raw string) CheckResult {
	domain := Normalize(raw)
	start := time.Now()
	blocked, reason, err := s.lookup(ctx, domain)
	latency := time.Since(start).Seconds() * 1000 // ms

	out := CheckResult{Domain: domain, Blocked: blocked, Reason: reason, LatencyMS: latency}
	switch {
	case err != nil:
		out.Blocked = true
		s.Logger.Error("check_failed",
			zap.String("domain", domain),
			zap.String("reason", reason),
			zap.Error(err),
		)
	case reason != ReasonAPI:
		s.Logger.Warn("check_inconclusive",
			zap.String("domain", domain),
			zap.String("reason", reason),
		)
	}
	return out
}

func (s *StatusChecker) lookup(ctx context.Context, domain string) (bool, string, error) {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return true, ReasonHTTPError, errors.Wrap(err, "parse lookup url")
	}
	q := u.Query()
	q.Set("domain", domain)
	q.Set("json", "true")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return true, ReasonHTTPError, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return true, ReasonHTTPError, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return true, ReasonHTTPStatus, errors.Errorf("lookup returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return true, ReasonHTTPError, errors.Wrap(err, "read response body")
	}
	return parseStatus(body, domain)
}

// parseStatus reads body[domain].blocked. Only a JSON bool counts as an
// answer; every other shape stays blocked.
func parseStatus(body []byte, domain string) (blocked bool, reason string, err error) {
	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return true, ReasonBadResponse, errors.New("response is not a JSON object")
	}

	blocked, reason = true, ReasonMissingKey
	err = d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != domain {
			return d.Skip()
		}
		blocked, reason = true, ReasonMissingField
		if d.Next() != jx.Object {
			return d.Skip()
		}
		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if string(key) != "blocked" || d.Next() != jx.Bool {
				return d.Skip()
			}
			v, err := d.Bool()
			if err != nil {
				return err
			}
			blocked, reason = v, ReasonAPI
			return nil
		})
	})
	if err != nil {
		return true, ReasonBadResponse, errors.Wrap(err, "decode response")
	}
	return blocked, reason, nil
}
