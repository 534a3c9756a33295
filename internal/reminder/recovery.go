package reminder

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

const DefaultRecoverySchedule = "@every 5m"

var sweeper *cron.Cron

// StartRecovery runs Sweep on the given cron schedule. It picks up
// reminders whose timers were lost, for example across a suspend or a clock
// jump.
func StartRecovery(schedule string) error {
	if schedule == "" {
		schedule = DefaultRecoverySchedule
	}
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { Sweep() }); err != nil {
		return fmt.Errorf("reminder: recovery schedule %q: %w", schedule, err)
	}
	StopRecovery()
	sweeper = c
	c.Start()
	return nil
}

// StopRecovery stops the sweep and waits for a running pass to finish.
func StopRecovery() {
	if sweeper == nil {
		return
	}
	<-sweeper.Stop().Done()
	sweeper = nil
}

// Sweep fires every overdue reminder and returns how many it delivered.
func Sweep() int {
	due, err := Due()
	if err != nil {
		log.Printf("reminder: recovery sweep: %v", err)
		return 0
	}
	fired := 0
	for _, r := range due {
		ok, err := Fire(r.ID, r.NextFire)
		if err != nil {
			log.Printf("reminder: recovery fire %d: %v", r.ID, err)
			continue
		}
		if ok {
			fired++
		}
	}
	if fired > 0 {
		log.Printf("reminder: recovered %d missed reminders", fired)
	}
	return fired
}
