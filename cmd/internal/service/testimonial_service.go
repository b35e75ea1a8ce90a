package service

import (
	"clinicapi/cmd/internal/authz"
	"clinicapi/cmd/internal/domain/entity"
	"clinicapi/cmd/internal/utils"
	"clinicapi/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type TestimonialRepository interface {
	FindByID(id int) (*entity.Testimonial, error)
	FindAll(onlyActive bool) ([]*entity.Testimonial, error)
	Save(testimonial *entity.Testimonial) error
	Delete(testimonial *entity.Testimonial) error
}

type TestimonialRequest struct {
	PatientName  string  `json:"patient_name" validate:"required,min=2,max=120"`
	PatientTitle string  `json:"patient_title" validate:"max=120"`
	Content      string  `json:"content" validate:"required,max=4000"`
	Rating       int     `json:"rating" validate:"required,min=1,max=5"`
	Image        *string `json:"image" validate:"omitempty,max=500"`
	Active       *bool   `json:"active"`
}

type TestimonialResponse struct {
	ID           int     `json:"id"`
	PatientName  string  `json:"patient_name"`
	PatientTitle string  `json:"patient_title"`
	Content      string  `json:"content"`
	Rating       int     `json:"rating"`
	Image        *string `json:"image"`
	Active       bool    `json:"active"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type DefaultTestimonialService struct {
	TestimonialRepo TestimonialRepository
	Validate        *validator.Validate
}

func NewTestimonialService(testimonialRepo TestimonialRepository, validate *validator.Validate) *DefaultTestimonialService {
	return &DefaultTestimonialService{TestimonialRepo: testimonialRepo, Validate: validate}
}

func (t *DefaultTestimonialService) GetTestimonials(actor authz.Actor) ([]*TestimonialResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindTestimonial, authz.OpRead) {
		return nil, apierror.AuthorizationError
	}

	testimonials, err := t.TestimonialRepo.FindAll(!actor.Staff)
	if err != nil {
		log.Errorf("failed to find testimonials: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*TestimonialResponse, len(testimonials))
	for i, tm := range testimonials {
		response[i] = toTestimonialResponse(tm)
	}
	return response, nil
}

func (t *DefaultTestimonialService) CreateTestimonial(actor authz.Actor, req *TestimonialRequest) (*TestimonialResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindTestimonial, authz.OpCreate) {
		return nil, apierror.AuthorizationError
	}

	utils.Sanitize(req)
	if valerr := t.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := utils.NowUTC()
	testimonial := &entity.Testimonial{
		PatientName:  req.PatientName,
		PatientTitle: req.PatientTitle,
		Content:      req.Content,
		Rating:       req.Rating,
		Image:        req.Image,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := t.TestimonialRepo.Save(testimonial); err != nil {
		log.Errorf("failed to save testimonial: %v", err)
		return nil, apierror.InternalServerError
	}
	return toTestimonialResponse(testimonial), nil
}

func (t *DefaultTestimonialService) UpdateTestimonial(actor authz.Actor, id int, req *TestimonialRequest) (*TestimonialResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindTestimonial, authz.OpUpdate) {
		return nil, apierror.AuthorizationError
	}

	utils.Sanitize(req)
	if valerr := t.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	testimonial, err := t.TestimonialRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch testimonial %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if testimonial == nil {
		return nil, apierror.NewNotFoundError("Testimonial")
	}

	testimonial.PatientName = req.PatientName
	testimonial.PatientTitle = req.PatientTitle
	testimonial.Content = req.Content
	testimonial.Rating = req.Rating
	testimonial.Image = req.Image
	if req.Active != nil {
		testimonial.Active = *req.Active
	}
	testimonial.UpdatedAt = utils.NowUTC()

	if err := t.TestimonialRepo.Save(testimonial); err != nil {
		log.Errorf("failed to update testimonial %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toTestimonialResponse(testimonial), nil
}

func (t *DefaultTestimonialService) DeleteTestimonial(actor authz.Actor, id int) apierror.ErrorResponse {
	if !authz.Allowed(actor, authz.KindTestimonial, authz.OpDelete) {
		return apierror.AuthorizationError
	}

	testimonial, err := t.TestimonialRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch testimonial %d: %v", id, err)
		return apierror.InternalServerError
	}
	if testimonial == nil {
		return apierror.NewNotFoundError("Testimonial")
	}

	if err := t.TestimonialRepo.Delete(testimonial); err != nil {
		log.Errorf("failed to delete testimonial %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func toTestimonialResponse(tm *entity.Testimonial) *TestimonialResponse {
	return &TestimonialResponse{
		ID:           tm.ID,
		PatientName:  tm.PatientName,
		PatientTitle: tm.PatientTitle,
		Content:      tm.Content,
		Rating:       tm.Rating,
		Image:        tm.Image,
		Active:       tm.Active,
		CreatedAt:    utils.FormatEpoch(tm.CreatedAt),
		UpdatedAt:    utils.FormatEpoch(tm.UpdatedAt),
	}
}
