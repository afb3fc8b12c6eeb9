package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/scheduler"
)

// SchedulerStore backs the scheduler engine with the Postgres database.
type SchedulerStore struct {
	DB *gorm.DB
}

func NewSchedulerStore() *SchedulerStore {
	return &SchedulerStore{DB: DB}
}

func (s *SchedulerStore) CreateAppointment(appt models.Appointment) (models.Appointment, error) {
	err := s.DB.Create(&appt).Error
	return appt, err
}

func (s *SchedulerStore) UpdateAppointment(appt models.Appointment) (models.Appointment, error) {
	err := s.DB.Save(&appt).Error
	return appt, err
}

func (s *SchedulerStore) CreateCheckRecord(cr models.CheckRecord) (models.CheckRecord, error) {
	err := s.DB.Create(&cr).Error
	return cr, err
}

func (s *SchedulerStore) UpdateCheckRecord(cr models.CheckRecord) (models.CheckRecord, error) {
	err := s.DB.Save(&cr).Error
	return cr, err
}

func (s *SchedulerStore) CreateCancellation(c models.Cancellation) (models.Cancellation, error) {
	err := s.DB.Create(&c).Error
	return c, err
}

func (s *SchedulerStore) UpdateCancellation(c models.Cancellation) (models.Cancellation, error) {
	err := s.DB.Save(&c).Error
	return c, err
}

func (s *SchedulerStore) UpdateRecurrence(rec models.Recurrence) (models.Recurrence, error) {
	err := s.DB.Save(&rec).Error
	return rec, err
}

// FindAppointmentsByRecurrenceAndDate returns every appointment spawned
// by the recurrence on the given calendar date, regardless of status.
func (s *SchedulerStore) FindAppointmentsByRecurrenceAndDate(recurrenceID uint, date time.Time) ([]models.Appointment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	var appointments []models.Appointment
	err := s.DB.
		Where("recurrence_id = ?", recurrenceID).
		Where("start_time >= ? AND start_time < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Find(&appointments).Error
	return appointments, err
}

// SaveTransition persists the appointment and its transition effects in
// one database transaction, so a failure can never leave a cancelled
// appointment without its cancellation record (or the reverse).
func (s *SchedulerStore) SaveTransition(appt models.Appointment, effects []scheduler.Effect) (models.Appointment, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&appt).Error; err != nil {
			return err
		}
		for i := range effects {
			e := effects[i]
			switch e.Kind {
			case scheduler.EffectCreateCheckRecord:
				if err := tx.Create(e.CheckRecord).Error; err != nil {
					return err
				}
			case scheduler.EffectCloseCheckRecord, scheduler.EffectCancelCheckRecord:
				if err := tx.Save(e.CheckRecord).Error; err != nil {
					return err
				}
			case scheduler.EffectCreateCancellation:
				if err := tx.Create(e.Cancellation).Error; err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown effect kind %q", e.Kind)
			}
		}
		return nil
	})
	return appt, err
}

// ActiveCheckRecord loads the appointment's current non-cancelled check
// record, or nil when there is none.
func (s *SchedulerStore) ActiveCheckRecord(appointmentID uint) (*models.CheckRecord, error) {
	var cr models.CheckRecord
	err := s.DB.
		Where("appointment_id = ?", appointmentID).
		Where("status IN ?", []models.CheckStatus{models.CheckPending, models.CheckCheckedIn}).
		First(&cr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

// HasPaidPayment reports whether the appointment has a settled payment,
// which decides whether a cancellation needs a refund at all.
func (s *SchedulerStore) HasPaidPayment(appointmentID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Payment{}).
		Where("appointment_id = ? AND status = ?", appointmentID, models.PaymentPaid).
		Count(&count).Error
	return count > 0, err
}
