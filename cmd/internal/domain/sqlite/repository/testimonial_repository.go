package repository

import (
	"errors"

	"clinicapi/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultTestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *DefaultTestimonialRepository {
	return &DefaultTestimonialRepository{db: db}
}

func (t *DefaultTestimonialRepository) FindByID(id int) (*entity.Testimonial, error) {
	var tm entity.Testimonial
	err := t.db.First(&tm, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tm, err
}

func (t *DefaultTestimonialRepository) FindAll(onlyActive bool) ([]*entity.Testimonial, error) {
	q := t.db.Model(&entity.Testimonial{})
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var testimonials []*entity.Testimonial
	err := q.Order("created_at desc").Find(&testimonials).Error
	return testimonials, err
}

func (t *DefaultTestimonialRepository) Save(testimonial *entity.Testimonial) error {
	return t.db.Save(testimonial).Error
}

func (t *DefaultTestimonialRepository) Delete(testimonial *entity.Testimonial) error {
	return t.db.Delete(testimonial).Error
}
