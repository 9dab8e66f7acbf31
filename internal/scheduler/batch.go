package scheduler

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/hamed0406/blockchecker/internal/domain"
	"github.com/hamed0406/blockchecker/internal/probe"
	"github.com/hamed0406/blockchecker/internal/source"
	"github.com/hamed0406/blockchecker/internal/worker"
)

// ErrLoad marks the one failure that aborts a run: the domain list could
// not be read.
var ErrLoad = errors.New("load domain list")

// Notifier is the delivery contract the batch relies on. It must not fail.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// Batch checks every domain from Source once and reports to Notifier.
type Batch struct {
	Logger   *zap.Logger
	Source   source.LinkSource
	Checker  probe.Checker
	Notifier Notifier
	Pool     *worker.Pool
	Clock    domain.Clock
}

func NewBatch(
	logger *zap.Logger,
	src source.LinkSource,
	checker probe.Checker,
	notifier Notifier,
	concurrency int,
	clock domain.Clock,
) *Batch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batch{
		Logger:   logger,
		Source:   src,
		Checker:  checker,
		Notifier: notifier,
		Pool:     worker.New(concurrency),
		Clock:    clock,
	}
}

// Run performs one full pass. Only a load failure is returned; every other
// problem is logged and folded into the outcomes.
func (b *Batch) Run(ctx context.Context) (domain.Summary, error) {
	b.Logger.Info("batch_started")

	links, err := b.Source.List(ctx)
	if err != nil {
		b.Logger.Error("load_failed", zap.Error(err))
		return domain.Summary{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	b.Logger.Info("domains_loaded",
		zap.Int("count", len(links)),
		zap.Int("workers", b.Pool.Size),
	)

	results := worker.Run(ctx, b.Pool, links, b.checkOne)

	collected := make([]worker.Result[domain.Outcome], 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			b.Logger.Error("collect_failed",
				zap.String("input", links[r.Index]),
				zap.Error(r.Err),
			)
			continue
		}
		collected = append(collected, r)
	}
	// report blocked domains in the order they were listed
	sort.Slice(collected, func(i, j int) bool { return collected[i].Index < collected[j].Index })
	outcomes := make([]domain.Outcome, len(collected))
	for i, r := range collected {
		outcomes[i] = r.Value
	}

	summary := domain.Summarize(len(links), outcomes)
	// the summary goes out even if the run was interrupted
	b.Notifier.Notify(context.WithoutCancel(ctx), domain.SummaryMessage(b.Clock.Stamp(), summary))

	b.Logger.Info("batch_completed",
		zap.Int("total", summary.Total),
		zap.Int("checked", summary.Checked),
		zap.Int("blocked", len(summary.Blocked)),
	)
	return summary, nil
}

// checkOne is a single unit of work. It always yields an outcome; a panic
// in the checker or notifier leaves the domain classified as blocked.
func (b *Batch) checkOne(ctx context.Context, link string) (out domain.Outcome) {
	out = domain.Outcome{Input: link, Domain: probe.Normalize(link), Blocked: true}
	defer func() {
		if p := recover(); p != nil {
			b.Logger.Error("check_panicked",
				zap.String("domain", link),
				zap.Any("panic", p),
			)
			out.Blocked = true
			out.Reason = "panic"
		}
	}()

	b.Logger.Info("check_started", zap.String("domain", link))

	res := b.Checker.Check(ctx, link)
	out.Blocked = res.Blocked
	out.Reason = res.Reason
	if res.Domain != "" {
		out.Domain = res.Domain
	}

	msg := domain.OutcomeMessage(b.Clock.Stamp(), out)
	b.Logger.Info("check_outcome",
		zap.String("message", msg),
		zap.Bool("blocked", out.Blocked),
		zap.String("reason", out.Reason),
		zap.Float64("latency_ms", res.LatencyMS),
	)
	b.Notifier.Notify(ctx, msg)
	return out
}
