// Package jobs provides scheduled background tasks for the supply service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the service requires.
//
// # Available Jobs
//
// 1. CredentialSweepJob - Runs every hour to delete credentials whose expiry
// is older than the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeCredentialsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "0 0 * * * *", the top of every hour.
// Expired codes are already unclaimable; the sweep only keeps the table from
// growing without bound, so hourly is more than frequent enough.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick. A failed job start
// stops any already running jobs.
package jobs
