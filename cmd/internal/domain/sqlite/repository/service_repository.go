package repository

import (
	"errors"

	"clinicapi/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *DefaultServiceRepository {
	return &DefaultServiceRepository{db: db}
}

func (s *DefaultServiceRepository) FindByID(id int) (*entity.Service, error) {
	var svc entity.Service
	err := s.db.First(&svc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &svc, err
}

func (s *DefaultServiceRepository) FindAll(onlyActive bool) ([]*entity.Service, error) {
	q := s.db.Model(&entity.Service{})
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var services []*entity.Service
	err := q.Order("name asc").Find(&services).Error
	return services, err
}

func (s *DefaultServiceRepository) Save(service *entity.Service) error {
	return s.db.Save(service).Error
}

// Delete clears the service reference on dependent appointments and removes
// the service in one transaction, mirroring the doctor repository.
func (s *DefaultServiceRepository) Delete(service *entity.Service) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entity.Appointment{}).
			Where("service_id = ?", service.ID).
			Update("service_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(service).Error
	})
}
