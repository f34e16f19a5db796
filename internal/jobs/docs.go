// Package jobs provides scheduled background tasks over active orders.
//
// Jobs use github.com/robfig/cron/v3 with second-precision expressions.
//
// # Available Jobs
//
//  1. OverdueOrdersJob - every five minutes by default, warns about each active order whose
//     delivery date has passed
//  2. ActiveOrdersSummaryJob - hourly by default, logs the number of active orders per status
//
// # Usage
//
//	jobManager := jobs.NewJobManager(getActiveOrdersHandler, jobs.Schedules{
//		OverdueOrders:       cfg.OverdueOrdersSchedule,
//		ActiveOrdersSummary: cfg.ActiveOrdersSummarySchedule,
//	}, nil, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing pass is logged and the next pass runs as scheduled.
package jobs
