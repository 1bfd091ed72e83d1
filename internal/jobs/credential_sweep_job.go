package jobs

import (
	"context"
	"log/slog"
	"time"

	"eventsupply/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// credentialRetention is how long expired credentials stay queryable before
// the sweep removes them. Expiry itself is enforced at claim time; the
// retention window only keeps recent rows around for support lookups.
const credentialRetention = 24 * time.Hour

// CredentialSweepJob periodically deletes long-expired credentials.
// Runs hourly; the claim predicate makes the exact schedule uncritical.
type CredentialSweepJob struct {
	handler commands.PurgeCredentialsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCredentialSweepJob creates the hourly credential sweep.
func NewCredentialSweepJob(handler commands.PurgeCredentialsCommandHandler, logger *slog.Logger) *CredentialSweepJob {
	return &CredentialSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "credential_sweep_job"),
	}
}

// Start begins the sweep on an hourly schedule.
func (j *CredentialSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeCredentialsCommand(time.Now().Add(-credentialRetention))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Credential sweep job failed to build command", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Credential sweep job failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Credential sweep removed expired rows", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Credential sweep job started (running hourly)")
	return nil
}

// Stop stops the sweep job.
func (j *CredentialSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Credential sweep job stopped")
}
