package utils

import (
	"log"
	"time"

	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"

	"github.com/robfig/cron/v3"
)

// InitializeAppointmentScheduler sets up the daily consultation reminder job
func InitializeAppointmentScheduler() {
	log.Println("[APPOINTMENT-SCHEDULER] Initializing appointment scheduler...")

	c := cron.New()

	// Run daily at 9 AM to remind tomorrow's confirmed consultations
	c.AddFunc("0 9 * * *", func() {
		log.Println("[APPOINTMENT-SCHEDULER] Running daily reminder check...")
		SendUpcomingAppointmentReminders()
	})

	c.Start()
	log.Println("[APPOINTMENT-SCHEDULER] Appointment scheduler started - runs daily at 9 AM")
}

// SendUpcomingAppointmentReminders sends reminder emails for confirmed
// appointments scheduled within the next day
func SendUpcomingAppointmentReminders() {
	db := database.Database.Db
	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)

	var upcoming []models.Appointment
	if err := db.
		Where("status = ? AND reminder_sent = false AND is_deleted = false", models.AppointmentConfirmed).
		Where("preferred_date BETWEEN ? AND ?", now, tomorrow).
		Find(&upcoming).Error; err != nil {
		log.Printf("[APPOINTMENT-SCHEDULER] Error fetching upcoming appointments: %v", err)
		return
	}

	log.Printf("[APPOINTMENT-SCHEDULER] Found %d appointments due tomorrow", len(upcoming))

	for _, appt := range upcoming {
		SendAppointmentReminder(appt.Name, appt.Email, appt.BookingReference, appt.PreferredDate, appt.PreferredSlot)

		if err := db.Model(&models.Appointment{}).Where("id = ?", appt.ID).Update("reminder_sent", true).Error; err != nil {
			log.Printf("[APPOINTMENT-SCHEDULER] Error marking reminder sent for appointment %d: %v", appt.ID, err)
		}
	}
}
