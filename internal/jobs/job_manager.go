package jobs

import (
	"fmt"
	"log/slog"

	"eventsupply/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	credentialSweepJob *CredentialSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	purgeCredentialsHandler commands.PurgeCredentialsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		credentialSweepJob: NewCredentialSweepJob(purgeCredentialsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.credentialSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start credential sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.credentialSweepJob.Stop()
}
