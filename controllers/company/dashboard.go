package company

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/redis"
)

const dashboardCacheTTL = 2 * time.Minute

// appointmentCountQuery builds the counter query for one status. Each
// call starts from a fresh statement; a chained query would keep the
// SQL built for the first count and ignore later conditions.
func appointmentCountQuery(tx *gorm.DB, companyID uint, status models.AppointmentStatus) *gorm.DB {
	return tx.Model(&models.Appointment{}).
		Where("company_id = ? AND status = ?", companyID, status)
}

type dashboardStats struct {
	TotalAppointments  int64     `json:"total_appointments"`
	ScheduledCount     int64     `json:"scheduled_count"`
	InProgressCount    int64     `json:"in_progress_count"`
	CompletedCount     int64     `json:"completed_count"`
	CancelledCount     int64     `json:"cancelled_count"`
	ActiveRecurrences  int64     `json:"active_recurrences"`
	PendingRefunds     int64     `json:"pending_refunds"`
	ActiveCustomers    int64     `json:"active_customers"`
	TotalRevenue       float64   `json:"total_revenue"`
	AverageRating      float64   `json:"average_rating"`
	LastUpdated        time.Time `json:"last_updated"`
}

// GetDashboardOverview returns appointment, recurrence and revenue
// statistics for the logged-in company. Results are cached briefly in
// Redis since the queries fan out over several tables.
func GetDashboardOverview(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Company ID not found in context",
		})
	}

	cacheKey := fmt.Sprintf("dashboard:company:%d", companyID)
	var stats dashboardStats
	if hit, err := redis.GetJSON(cacheKey, &stats); err == nil && hit {
		return c.JSON(stats)
	}

	db.DB.Model(&models.Appointment{}).
		Where("company_id = ?", companyID).
		Count(&stats.TotalAppointments)
	appointmentCountQuery(db.DB, companyID, models.StatusScheduled).Count(&stats.ScheduledCount)
	appointmentCountQuery(db.DB, companyID, models.StatusInProgress).Count(&stats.InProgressCount)
	appointmentCountQuery(db.DB, companyID, models.StatusCompleted).Count(&stats.CompletedCount)
	appointmentCountQuery(db.DB, companyID, models.StatusCancelled).Count(&stats.CancelledCount)

	db.DB.Model(&models.Recurrence{}).
		Where("company_id = ? AND status = ?", companyID, models.RecurrenceActive).
		Count(&stats.ActiveRecurrences)
	db.DB.Model(&models.Cancellation{}).
		Where("company_id = ? AND refund_status = ?", companyID, models.RefundPending).
		Count(&stats.PendingRefunds)
	db.DB.Model(&models.Customer{}).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Count(&stats.ActiveCustomers)

	var revenue struct {
		Total float64
	}
	db.DB.Model(&models.Payment{}).
		Where("company_id = ? AND status = ?", companyID, models.PaymentPaid).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&revenue)
	stats.TotalRevenue = revenue.Total

	var rating struct {
		Average float64
	}
	db.DB.Model(&models.Feedback{}).
		Where("company_id = ?", companyID).
		Select("COALESCE(AVG(rating), 0) as average").
		Scan(&rating)
	stats.AverageRating = rating.Average

	stats.LastUpdated = time.Now()

	if err := redis.CacheJSON(cacheKey, stats, dashboardCacheTTL); err != nil {
		log.Printf("Failed to cache dashboard for company %d: %v", companyID, err)
	}

	return c.JSON(stats)
}

// GetRecentAppointments returns the most recent appointments for the
// logged-in company.
func GetRecentAppointments(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Company ID not found in context",
		})
	}

	limit := 5
	if parsed := c.QueryInt("limit"); parsed > 0 {
		limit = parsed
	}

	var appointments []models.Appointment
	if err := db.DB.Preload("Customer").Preload("Team").
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Limit(limit).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch recent appointments",
		})
	}
	return c.JSON(appointments)
}
