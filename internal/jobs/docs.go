// Package jobs provides scheduled background tasks for the burger shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the order service needs.
//
// # Available Jobs
//
// 1. StaleOrderExpiryJob - Runs every minute to cancel pending orders that
// have been waiting longer than the configured maximum age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireStaleOrdersHandler, 30*time.Minute, logger)
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
// The expiry job uses the cron expression "* * * * *" and runs once a
// minute. Expiry is idempotent, so overlapping runs after a slow database
// round trip only see orders the previous run already cancelled.
//
// # Error Handling
//
// The expiry job logs failures and keeps running; a transient database
// error only delays cancellation until the next tick.
package jobs
