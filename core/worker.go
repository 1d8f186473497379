package core

import "time"

// Worker is a job run by the Orchestrator. Schedule is a cron spec; "@every 1s"
// style descriptors are accepted. A true Ready claims the worker and is always
// followed by Execute, which releases it.
type Worker interface {
	Schedule() string
	Ready(now time.Time) bool
	Execute()
}
