package probe

import "context"

// CheckResult is the classification of a single domain.
//
// Fields:
//   - Domain: the normalized lookup key.
//   - Blocked: true when the lookup service says so, and also whenever the
//     lookup could not prove the domain safe.
//   - Reason: short cause for the classification ("api", "missing_key",
//     "http_error", ...).
type CheckResult struct {
	Domain    string
	Blocked   bool
	Reason    string
	LatencyMS float64
}

// Checker classifies one domain. Implementations never fail: any error
// collapses into Blocked=true.
type Checker interface {
	Check(ctx context.Context, domain string) CheckResult
}

// Reasons reported in CheckResult.Reason.
const (
	ReasonAPI          = "api"
	ReasonMissingKey   = "missing_key"
	ReasonMissingField = "missing_field"
	ReasonHTTPError    = "http_error"
	ReasonHTTPStatus   = "http_status"
	ReasonBadResponse  = "bad_response"
)
