// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and are managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(expireStaleOrdersHandler, staleOrderMaxAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The stale order sweep runs hourly and cancels Pending orders whose seller
// never reacted within the configured age. Sweep conflicts with concurrent
// user actions are expected and resolved by the optimistic concurrency check
// in the repository; the sweep simply retries on its next run.
package jobs
