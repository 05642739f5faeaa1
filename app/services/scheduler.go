package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"school-management-system/app/database"
)

// StartScheduler runs the background jobs: a nightly sweep that flags unpaid
// fees past their due date as overdue. Returns the cron so callers can stop
// it on shutdown.
func StartScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	// Nightly at 00:10, after the date has rolled over.
	_, err := c.AddFunc("10 0 * * *", func() {
		flipped, err := database.SweepOverdueFees(db, time.Now())
		if err != nil {
			log.Printf("Error sweeping overdue fees: %v", err)
			return
		}
		if flipped > 0 {
			log.Printf("Marked %d fees overdue", flipped)
		}
	})
	if err != nil {
		log.Printf("Failed to register overdue fee sweep: %v", err)
	}

	c.Start()
	log.Println("Scheduler started...")
	return c
}
