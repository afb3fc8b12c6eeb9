package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/scheduler"
	"github.com/sparklean/cleaning-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler for
// recurrence materialization and appointment reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()

	// Materialize due recurring services every 15 minutes
	_, err := c.AddFunc("*/15 * * * *", materializeDueRecurrences)
	if err != nil {
		log.Fatalf("Failed to add materialization cron job: %v", err)
	}

	// Run every minute to check for appointments in the next hour
	_, err = c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add reminder cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}

// materializeDueRecurrences creates appointments for every active
// recurrence whose next execution has arrived
func materializeDueRecurrences() {
	now := time.Now()

	var due []models.Recurrence
	err := db.DB.Preload("Customer").
		Where("status = ? AND next_execution IS NOT NULL AND next_execution <= ?", models.RecurrenceActive, now).
		Find(&due).Error
	if err != nil {
		log.Printf("Error fetching due recurrences: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	orchestrator := scheduler.NewOrchestrator(db.NewSchedulerStore())
	report := orchestrator.RunDue(due, now)

	log.Printf("Materialization run: %d created, %d skipped, %d failed",
		len(report.Created), len(report.Skipped), len(report.Failures))
	for _, failure := range report.Failures {
		log.Printf("Recurrence %d failed to materialize: %s", failure.RecurrenceID, failure.Error)
	}
}

// sendAppointmentReminders checks for appointments and sends reminders
func sendAppointmentReminders() {
	var appointments []models.Appointment
	now := time.Now()
	// Look for appointments starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Customer").Preload("Team").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.StatusScheduled, startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.Customer.Email == "" {
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Customer.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Cleaning Service - %s", appointment.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your cleaning service scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s cleaning</li>
			<li><strong>Team:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>Please make sure the team can access the premises. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Cleaning Team</p>
	`, appointment.Customer.Name, appointment.CleaningType, appointment.Team.Name,
		appointment.StartTime.Format("2006-01-02 15:04:05"),
		appointment.Address)

	return utils.SendEmail(appointment.Customer.Email, subject, body)
}
