package repository

import (
	"errors"

	"clinicapi/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

// AppointmentFilter narrows staff list reads. Nil fields are ignored.
type AppointmentFilter struct {
	DoctorID *int
	Status   *string
	Date     *string
}

func (a *DefaultAppointmentRepository) FindByID(id int) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := a.db.First(&appt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appt, err
}

func (a *DefaultAppointmentRepository) FindAll(filter AppointmentFilter) ([]*entity.Appointment, error) {
	q := a.db.Model(&entity.Appointment{})
	if filter.DoctorID != nil {
		q = q.Where("doctor_id = ?", *filter.DoctorID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Date != nil {
		q = q.Where("date = ?", *filter.Date)
	}

	var appts []*entity.Appointment
	err := q.Order("date asc, time_slot asc").Find(&appts).Error
	return appts, err
}

func (a *DefaultAppointmentRepository) Save(appointment *entity.Appointment) error {
	return a.db.Save(appointment).Error
}

// UpdateStatusFrom applies a status transition as a conditional update guarded
// by the current status, so concurrent transitions on the same row cannot
// resurrect a terminal state. Returns false when the guard did not match.
func (a *DefaultAppointmentRepository) UpdateStatusFrom(id int, from, to string, now int64) (bool, error) {
	res := a.db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Where("status = ?", from).
		Updates(map[string]any{"status": to, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (a *DefaultAppointmentRepository) Delete(appointment *entity.Appointment) error {
	return a.db.Delete(appointment).Error
}
