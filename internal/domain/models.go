package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout renders as e.g. "Monday / 18 August 2025 19:00:00".
const TimestampLayout = "Monday / 02 January 2006 15:04:05"

// Outcome is the classification of one input entry. It is produced on
// every path, including failures, which leave Blocked set.
type Outcome struct {
	Input   string `json:"input"`
	Domain  string `json:"domain"`
	Blocked bool   `json:"blocked"`
	Reason  string `json:"reason,omitempty"`
}

// Summary aggregates a finished run.
type Summary struct {
	Total   int      `json:"total"`   // entries loaded
	Checked int      `json:"checked"` // outcomes collected
	Blocked []string `json:"blocked"`
}

// Summarize counts outcomes and lists blocked domains in the given order.
func Summarize(total int, outcomes []Outcome) Summary {
	s := Summary{Total: total, Checked: len(outcomes)}
	for _, o := range outcomes {
		if o.Blocked {
			s.Blocked = append(s.Blocked, o.Domain)
		}
	}
	return s
}

// Clock stamps messages in a fixed zone.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func (c Clock) Stamp() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc).Format(TimestampLayout)
}

func BlockedMessage(ts, domain string) string {
	return fmt.Sprintf("[%s] Domain %s is BLOCKED - NEEDS REPLACEMENT", ts, domain)
}

func SafeMessage(ts, domain string) string {
	return fmt.Sprintf("[%s] Domain %s is safe.", ts, domain)
}

// OutcomeMessage picks the blocked or safe template.
func OutcomeMessage(ts string, o Outcome) string {
	if o.Blocked {
		return BlockedMessage(ts, o.Domain)
	}
	return SafeMessage(ts, o.Domain)
}

// SummaryMessage lists blocked domains joined by ", "; none renders empty.
func SummaryMessage(ts string, s Summary) string {
	return fmt.Sprintf("Checked %d domains successfully at [%s]. Blocked domains: %s",
		s.Total, ts, strings.Join(s.Blocked, ", "))
}
