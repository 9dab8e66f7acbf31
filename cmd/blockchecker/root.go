package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/blockchecker/internal/config"
	"github.com/hamed0406/blockchecker/internal/domain"
	"github.com/hamed0406/blockchecker/internal/logging"
	"github.com/hamed0406/blockchecker/internal/notify"
	"github.com/hamed0406/blockchecker/internal/probe"
	"github.com/hamed0406/blockchecker/internal/scheduler"
	"github.com/hamed0406/blockchecker/internal/source"
)

type rootOptions struct {
	configPath  string
	domainsFile string
	domains     []string
	workers     int
}

// load resolves configuration and applies any flags set on cmd.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("domains-file") {
		cfg.DomainsFile = o.domainsFile
	}
	if cmd.Flags().Changed("workers") {
		cfg.MaxWorkers = o.workers
	}
	return cfg, cfg.Validate()
}

// linkSource prefers explicit --domain flags over the domain file.
func (o *rootOptions) linkSource(cfg *config.Config) source.LinkSource {
	if len(o.domains) > 0 {
		return source.Memory(o.domains)
	}
	return source.NewFile(cfg.DomainsFile)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "blockchecker",
		Short:         "Check domains for blocking and report the results to Slack",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			logger, err := logging.NewLogger(logging.Options{
				Dir:       cfg.LogDir,
				File:      cfg.LogFile,
				Level:     cfg.LogLevel,
				MaxSizeMB: cfg.LogMaxSizeMB,
				Console:   cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			batch := scheduler.NewBatch(
				logger,
				opts.linkSource(cfg),
				probe.NewStatusChecker(cfg.CheckAPIURL, cfg.CheckTimeout, logger),
				notify.NewBestEffort(notify.FromWebhooks(cfg.Webhooks, cfg.NotifyTimeout), logger, cfg.NotifyTimeout),
				cfg.MaxWorkers,
				domain.Clock{Location: cfg.Location()},
			)
			if !notify.AnyEnabled(cfg.Webhooks) {
				logger.Warn("webhook_disabled", zap.String("env", "SLACK_WEBHOOK_URL"))
			}

			_, err = batch.Run(ctx)
			return err
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "optional YAML config file (environment variables override it)")
	f.StringVar(&opts.domainsFile, "domains-file", "", "file with one domain per line (overrides DOMAINS_FILE)")
	f.StringArrayVarP(&opts.domains, "domain", "d", nil, "domain to check; repeatable, replaces the domain file")
	f.IntVarP(&opts.workers, "workers", "w", 5, "maximum concurrent checks (overrides MAX_WORKERS)")

	cmd.AddCommand(newPreflightCmd(opts))
	return cmd
}
