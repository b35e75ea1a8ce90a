package repository

import (
	"errors"

	"clinicapi/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultDoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DefaultDoctorRepository {
	return &DefaultDoctorRepository{db: db}
}

func (d *DefaultDoctorRepository) FindByID(id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := d.db.First(&doctor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doctor, err
}

func (d *DefaultDoctorRepository) FindAll(onlyAvailable bool) ([]*entity.Doctor, error) {
	q := d.db.Model(&entity.Doctor{})
	if onlyAvailable {
		q = q.Where("available = ?", true)
	}

	var doctors []*entity.Doctor
	err := q.Order("name asc").Find(&doctors).Error
	return doctors, err
}

func (d *DefaultDoctorRepository) Save(doctor *entity.Doctor) error {
	return d.db.Save(doctor).Error
}

// Delete removes the doctor and clears the doctor reference on any
// appointment pointing at it, in one transaction. Appointments themselves
// are never cascaded.
func (d *DefaultDoctorRepository) Delete(doctor *entity.Doctor) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entity.Appointment{}).
			Where("doctor_id = ?", doctor.ID).
			Update("doctor_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(doctor).Error
	})
}
