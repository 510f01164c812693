package utils

import (
	"lms/database"
	"lms/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeSessionCleanup starts a daily job that deletes expired
// session rows. Housekeeping only: session validity is always checked
// at request time, so correctness never depends on this job running.
func InitializeSessionCleanup() {
	c := cron.New()

	c.AddFunc("30 3 * * *", func() {
		PurgeExpiredSessions()
	})

	c.Start()
	log.Println("[SESSION-CLEANUP] Scheduler started - runs daily at 03:30")
}

// PurgeExpiredSessions removes sessions past their expiry.
func PurgeExpiredSessions() {
	result := database.Database.Db.Delete(&models.Session{}, "expires_at < ?", time.Now())
	if result.Error != nil {
		log.Printf("[SESSION-CLEANUP] Error purging expired sessions: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[SESSION-CLEANUP] Purged %d expired sessions", result.RowsAffected)
	}
}
