package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/deepsoc/deepsoc/pkg/config"
	"github.com/deepsoc/deepsoc/pkg/llm"
	"github.com/deepsoc/deepsoc/pkg/prompts"
	"github.com/deepsoc/deepsoc/pkg/services"
	"github.com/deepsoc/deepsoc/pkg/soar"
	"github.com/deepsoc/deepsoc/pkg/workers"
)

func captainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "captain",
		Short: "Run the captain agent: triage pending events into tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoles(func(b *bootstrap) []*workers.Runner {
				captain := workers.NewCaptain(b.db.Client,
					services.NewTaskService(b.db.Client),
					services.NewSummaryService(b.db.Client),
					llm.NewClient(b.cfg.LLM, b.db.Client, slog.Default()),
					prompts.NewStore(b.db.Client),
					b.notifier)
				return []*workers.Runner{workers.NewRunner(captain, b.cfg.Worker)}
			})
		},
	}
}

func managerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manager",
		Short: "Run the manager agent: break tasks into actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoles(func(b *bootstrap) []*workers.Runner {
				manager := workers.NewManager(b.db.Client,
					llm.NewClient(b.cfg.LLM, b.db.Client, slog.Default()),
					prompts.NewStore(b.db.Client),
					b.notifier, b.engine, b.cfg.Worker.TaskRetryLimit)
				return []*workers.Runner{workers.NewRunner(manager, b.cfg.Worker)}
			})
		},
	}
}

func operatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operator",
		Short: "Run the operator agent: turn actions into concrete commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoles(func(b *bootstrap) []*workers.Runner {
				operator := workers.NewOperator(b.db.Client,
					llm.NewClient(b.cfg.LLM, b.db.Client, slog.Default()),
					prompts.NewStore(b.db.Client),
					b.notifier, b.engine, b.cfg.Worker.TaskRetryLimit)
				return []*workers.Runner{workers.NewRunner(operator, b.cfg.Worker)}
			})
		},
	}
}

func executorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "executor",
		Short: "Run the executor agent: run playbook commands on the SOAR platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoles(func(b *bootstrap) []*workers.Runner {
				executor := workers.NewExecutor(b.db.Client,
					soar.NewClient(b.cfg.SOAR, slog.Default()),
					b.notifier, b.engine)
				return []*workers.Runner{workers.NewRunner(executor, b.cfg.Worker)}
			})
		},
	}
}

func expertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expert",
		Short: "Run the expert agent: digest execution results and close out rounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoles(func(b *bootstrap) []*workers.Runner {
				caller := llm.NewClient(b.cfg.LLM, b.db.Client, slog.Default())
				summarizer := workers.NewSummarizer(b.db.Client, caller, b.notifier, b.engine)
				lifecycle := workers.NewLifecycle(b.db.Client, caller, b.notifier, b.engine,
					services.NewSettingService(b.db.Client),
					services.NewSummaryService(b.db.Client),
					b.cfg.Worker.EventMaxRound)
				return []*workers.Runner{
					workers.NewRunner(summarizer, b.cfg.Worker),
					workers.NewRunner(lifecycle, lifecycleWorkerConfig(b.cfg.Worker)),
				}
			})
		},
	}
}

// lifecycleWorkerConfig slows the polling cadence down to the lifecycle
// sweep interval.
func lifecycleWorkerConfig(cfg config.WorkerConfig) config.WorkerConfig {
	cfg.PollInterval = cfg.LifecycleInterval
	if cfg.MaxBackoff < cfg.PollInterval {
		cfg.MaxBackoff = cfg.PollInterval
	}
	return cfg
}

// runRoles opens the shared dependencies, starts the given role loops,
// and drains them when the process is signalled. Workers finish the
// unit of work in hand before exiting; rows claimed by an abandoned
// cycle stay in their input status and are simply picked up again.
func runRoles(build func(b *bootstrap) []*workers.Runner) error {
	ctx, stop := signalContext(context.Background())
	defer stop()

	boot, err := connect(ctx)
	if err != nil {
		return err
	}
	defer boot.close()

	runners := build(boot)
	for _, r := range runners {
		// Background, not the signal context: a signal stops the loop
		// after the current tick instead of aborting it midway.
		r.Start(context.Background())
	}

	<-ctx.Done()
	slog.Info("Shutdown signal received")

	done := make(chan struct{})
	go func() {
		for _, r := range runners {
			r.Stop()
		}
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Workers stopped gracefully")
	case <-time.After(boot.cfg.Worker.GracefulShutdownTimeout):
		slog.Warn("Shutdown timeout exceeded, abandoning in-flight work")
	}
	return nil
}
