package main

import (
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/hamed0406/blockchecker/internal/notify"
)

func newPreflightCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Check that the configuration is usable without contacting any service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ok := func(msg string) { fmt.Fprintln(out, "✔", msg) }
			warn := func(msg string) { fmt.Fprintln(out, "⚠", msg) }

			cfg, err := opts.load(cmd)
			if err != nil {
				return fail(out, "config: "+err.Error())
			}

			if notify.AnyEnabled(cfg.Webhooks) {
				ok(fmt.Sprintf("SLACK_WEBHOOK_URL set (%d endpoint(s))", countEnabled(cfg.Webhooks)))
			} else {
				warn("SLACK_WEBHOOK_URL is empty or '#'; notifications will be dropped.")
			}

			domains, err := opts.linkSource(cfg).List(cmd.Context())
			if err != nil {
				return fail(out, "domain list: "+err.Error())
			}
			if len(domains) == 0 {
				warn("domain list is empty; the run will only send a summary.")
			} else {
				ok(fmt.Sprintf("%d domain(s) loaded", len(domains)))
			}

			ok(fmt.Sprintf("MAX_WORKERS=%d CHECK_API_URL=%s", cfg.MaxWorkers, cfg.CheckAPIURL))
			ok("preflight passed")
			return nil
		},
	}
}

func fail(out io.Writer, msg string) error {
	fmt.Fprintln(out, "✖", msg)
	return errors.New("preflight failed")
}

func countEnabled(webhooks []string) int {
	n := 0
	for _, w := range webhooks {
		if notify.Enabled(w) {
			n++
		}
	}
	return n
}
