package service

import (
	"clinicapi/cmd/internal/authz"
	"clinicapi/cmd/internal/domain/entity"
	"clinicapi/cmd/internal/utils"
	"clinicapi/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DoctorRepository interface {
	FindByID(id int) (*entity.Doctor, error)
	FindAll(onlyAvailable bool) ([]*entity.Doctor, error)
	Save(doctor *entity.Doctor) error
	Delete(doctor *entity.Doctor) error
}

type DoctorRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=120"`
	Specialty  string  `json:"specialty" validate:"required,max=120"`
	Bio        string  `json:"bio" validate:"max=4000"`
	Image      string  `json:"image" validate:"max=500"`
	SocialX    *string `json:"social_x" validate:"omitempty,url"`
	SocialFB   *string `json:"social_fb" validate:"omitempty,url"`
	SocialIG   *string `json:"social_ig" validate:"omitempty,url"`
	Experience int     `json:"experience" validate:"gte=0"`
	Available  *bool   `json:"available"`
}

type DoctorResponse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Bio        string  `json:"bio"`
	Image      string  `json:"image"`
	SocialX    *string `json:"social_x"`
	SocialFB   *string `json:"social_fb"`
	SocialIG   *string `json:"social_ig"`
	Experience int     `json:"experience"`
	Available  bool    `json:"available"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type DefaultDoctorService struct {
	DoctorRepo DoctorRepository
	Validate   *validator.Validate
}

func NewDoctorService(doctorRepo DoctorRepository, validate *validator.Validate) *DefaultDoctorService {
	return &DefaultDoctorService{DoctorRepo: doctorRepo, Validate: validate}
}

// GetDoctors lists doctors. Public callers only ever see available ones;
// the visibility filter is applied here, not left to the caller.
func (d *DefaultDoctorService) GetDoctors(actor authz.Actor) ([]*DoctorResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindDoctor, authz.OpRead) {
		return nil, apierror.AuthorizationError
	}

	doctors, err := d.DoctorRepo.FindAll(!actor.Staff)
	if err != nil {
		log.Errorf("failed to find doctors: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		response[i] = toDoctorResponse(doctor)
	}
	return response, nil
}

func (d *DefaultDoctorService) CreateDoctor(actor authz.Actor, req *DoctorRequest) (*DoctorResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindDoctor, authz.OpCreate) {
		return nil, apierror.AuthorizationError
	}

	utils.Sanitize(req)
	if valerr := d.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	now := utils.NowUTC()
	doctor := &entity.Doctor{
		Name:       req.Name,
		Specialty:  req.Specialty,
		Bio:        req.Bio,
		Image:      req.Image,
		SocialX:    req.SocialX,
		SocialFB:   req.SocialFB,
		SocialIG:   req.SocialIG,
		Experience: req.Experience,
		Available:  available,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := d.DoctorRepo.Save(doctor); err != nil {
		log.Errorf("failed to save doctor: %v", err)
		return nil, apierror.InternalServerError
	}
	return toDoctorResponse(doctor), nil
}

func (d *DefaultDoctorService) UpdateDoctor(actor authz.Actor, id int, req *DoctorRequest) (*DoctorResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindDoctor, authz.OpUpdate) {
		return nil, apierror.AuthorizationError
	}

	utils.Sanitize(req)
	if valerr := d.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	doctor, err := d.DoctorRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch doctor %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if doctor == nil {
		return nil, apierror.NewNotFoundError("Doctor")
	}

	doctor.Name = req.Name
	doctor.Specialty = req.Specialty
	doctor.Bio = req.Bio
	doctor.Image = req.Image
	doctor.SocialX = req.SocialX
	doctor.SocialFB = req.SocialFB
	doctor.SocialIG = req.SocialIG
	doctor.Experience = req.Experience
	if req.Available != nil {
		doctor.Available = *req.Available
	}
	doctor.UpdatedAt = utils.NowUTC()

	if err := d.DoctorRepo.Save(doctor); err != nil {
		log.Errorf("failed to update doctor %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toDoctorResponse(doctor), nil
}

func (d *DefaultDoctorService) DeleteDoctor(actor authz.Actor, id int) apierror.ErrorResponse {
	if !authz.Allowed(actor, authz.KindDoctor, authz.OpDelete) {
		return apierror.AuthorizationError
	}

	doctor, err := d.DoctorRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch doctor %d: %v", id, err)
		return apierror.InternalServerError
	}
	if doctor == nil {
		return apierror.NewNotFoundError("Doctor")
	}

	// Repository clears dependent appointment references in the same
	// transaction as the delete.
	if err := d.DoctorRepo.Delete(doctor); err != nil {
		log.Errorf("failed to delete doctor %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func toDoctorResponse(doctor *entity.Doctor) *DoctorResponse {
	return &DoctorResponse{
		ID:         doctor.ID,
		Name:       doctor.Name,
		Specialty:  doctor.Specialty,
		Bio:        doctor.Bio,
		Image:      doctor.Image,
		SocialX:    doctor.SocialX,
		SocialFB:   doctor.SocialFB,
		SocialIG:   doctor.SocialIG,
		Experience: doctor.Experience,
		Available:  doctor.Available,
		CreatedAt:  utils.FormatEpoch(doctor.CreatedAt),
		UpdatedAt:  utils.FormatEpoch(doctor.UpdatedAt),
	}
}
