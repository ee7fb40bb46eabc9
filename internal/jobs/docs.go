// Package jobs provides scheduled background tasks for the label service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// ExpressTableReloadJob re-reads the express availability CSV named by
// EXPRESS_TABLE_PATH and swaps it into the eligibility.ExpressRegistry used by
// the service list composer. The schedule comes from EXPRESS_TABLE_RELOAD_SPEC
// and defaults to "@every 1h". Without a path no job is scheduled and the
// embedded table is used.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reloadJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A reload that cannot open or parse the file is logged and the previous
// table stays in place. Failed job starts stop any already running jobs.
package jobs
