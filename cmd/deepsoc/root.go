package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/deepsoc/deepsoc/pkg/version"
)

// globalOpts are the persistent flags shared by every subcommand.
type globalOpts struct {
	envFile  string
	logLevel string
}

func rootCmd() *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:   "deepsoc",
		Short: "AI-driven security operations center",
		Long: `DeepSOC decomposes security events through five AI roles — captain,
manager, operator, executor and expert — that cooperate over a shared
database. Each role runs as its own polling loop; the serve command
exposes the warroom HTTP API and WebSocket gateway.

Run "deepsoc init" once to apply migrations and seed the admin account,
then start serve and the role agents in any order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.logLevel)
			loadEnvFile(opts.envFile)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.envFile, "env-file", ".env", "environment file loaded before configuration")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		serveCmd(),
		captainCmd(),
		managerCmd(),
		operatorCmd(),
		executorCmd(),
		expertCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Full())
		},
	}
}

// setupLogging installs the process-wide slog handler.
func setupLogging(level string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// loadEnvFile reads the env file into the process environment. A
// missing file is normal outside development.
func loadEnvFile(path string) {
	if err := godotenv.Load(path); err != nil {
		slog.Debug("No env file loaded, using existing environment", "path", path)
		return
	}
	slog.Info("Loaded environment", "path", path)
}

// signalContext returns a context cancelled on SIGTERM or SIGINT.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT)
}
