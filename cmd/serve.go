package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/kamusis/skillscan/internal/config"
	"github.com/kamusis/skillscan/internal/extract"
	"github.com/kamusis/skillscan/internal/log"
	"github.com/kamusis/skillscan/internal/server"
	"github.com/spf13/cobra"
)

var (
	flagServeConfig      string
	flagServeLockTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the skill extraction HTTP service",
	Long: `Run the HTTP service.

Configuration is read from ~/.skillscan/skillscand.yaml (or --config),
then ~/.skillscan/.env, then SKILLSCAN_* environment variables.

Endpoints (under /api/v1):
  GET  /health          liveness
  GET  /skills          recognized skills by category
  POST /skills/extract  {"text": "..."}  → ["skill", ...]
  POST /skills/match    {"job_skills": [...], "applicant_skills": [...]}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to skillscand.yaml (default ~/.skillscan/skillscand.yaml)")
	serveCmd.Flags().DurationVar(&flagServeLockTimeout, "lock-timeout", 0, "Wait this long for another skillscand to exit before giving up")
	daemonCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagServeConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	log.Configure(log.Config{Level: cfg.LogLevel, Version: version})
	logger := log.WithComponent("server")

	_, release, err := acquireServeLock(flagServeLockTimeout)
	if err != nil {
		return err
	}
	defer release()

	ex, err := extract.NewDefault()
	if err != nil {
		return err
	}
	srv, err := server.New(server.Options{
		Config:    cfg,
		Extractor: ex,
		Logger:    logger,
		Version:   version,
	})
	if err != nil {
		return err
	}
	logger.Info().
		Int("skills", ex.Catalog().Len()).
		Bool("auth", cfg.AuthEnabled()).
		Msg("skill extractor ready")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}

// acquireServeLock obtains the per-user skillscand lock so only one service
// runs per state directory.
func acquireServeLock(timeout time.Duration) (*flock.Flock, func(), error) {
	lockPath, err := config.LockPath()
	if err != nil {
		return nil, func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create %s: %w", filepath.Dir(lockPath), err)
	}

	l := flock.New(lockPath)
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	locked, err := l.TryLock()
	if err == nil && !locked && timeout > 0 {
		locked, err = l.TryLockContext(ctx, 200*time.Millisecond)
	}
	if err != nil && ctx.Err() == nil {
		return nil, func() {}, fmt.Errorf("cannot acquire lock %s: %w", lockPath, err)
	}
	if !locked {
		return nil, func() {}, fmt.Errorf("another skillscand is already running (lock: %s)", lockPath)
	}
	return l, func() { _ = l.Unlock() }, nil
}
