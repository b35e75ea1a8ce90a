package service

import (
	"clinicapi/cmd/internal/authz"
	"clinicapi/cmd/internal/domain/entity"
	"clinicapi/cmd/internal/utils"
	"clinicapi/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ServiceRepository interface {
	FindByID(id int) (*entity.Service, error)
	FindAll(onlyActive bool) ([]*entity.Service, error)
	Save(service *entity.Service) error
	Delete(service *entity.Service) error
}

type ServiceRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Description string `json:"description" validate:"max=4000"`
	Icon        string `json:"icon" validate:"max=200"`
	Category    string `json:"category" validate:"max=80"`
	Active      *bool  `json:"active"`
}

type ServiceResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type DefaultServiceService struct {
	ServiceRepo ServiceRepository
	Validate    *validator.Validate
}

func NewServiceService(serviceRepo ServiceRepository, validate *validator.Validate) *DefaultServiceService {
	return &DefaultServiceService{ServiceRepo: serviceRepo, Validate: validate}
}

func (s *DefaultServiceService) GetServices(actor authz.Actor) ([]*ServiceResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindService, authz.OpRead) {
		return nil, apierror.AuthorizationError
	}

	services, err := s.ServiceRepo.FindAll(!actor.Staff)
	if err != nil {
		log.Errorf("failed to find services: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*ServiceResponse, len(services))
	for i, svc := range services {
		response[i] = toServiceResponse(svc)
	}
	return response, nil
}

func (s *DefaultServiceService) CreateService(actor authz.Actor, req *ServiceRequest) (*ServiceResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindService, authz.OpCreate) {
		return nil, apierror.AuthorizationError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	category := req.Category
	if category == "" {
		category = "general"
	}

	now := utils.NowUTC()
	svc := &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Category:    category,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.ServiceRepo.Save(svc); err != nil {
		log.Errorf("failed to save service: %v", err)
		return nil, apierror.InternalServerError
	}
	return toServiceResponse(svc), nil
}

func (s *DefaultServiceService) UpdateService(actor authz.Actor, id int, req *ServiceRequest) (*ServiceResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindService, authz.OpUpdate) {
		return nil, apierror.AuthorizationError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	svc, err := s.ServiceRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch service %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if svc == nil {
		return nil, apierror.NewNotFoundError("Service")
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Icon = req.Icon
	if req.Category != "" {
		svc.Category = req.Category
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	svc.UpdatedAt = utils.NowUTC()

	if err := s.ServiceRepo.Save(svc); err != nil {
		log.Errorf("failed to update service %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toServiceResponse(svc), nil
}

func (s *DefaultServiceService) DeleteService(actor authz.Actor, id int) apierror.ErrorResponse {
	if !authz.Allowed(actor, authz.KindService, authz.OpDelete) {
		return apierror.AuthorizationError
	}

	svc, err := s.ServiceRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch service %d: %v", id, err)
		return apierror.InternalServerError
	}
	if svc == nil {
		return apierror.NewNotFoundError("Service")
	}

	if err := s.ServiceRepo.Delete(svc); err != nil {
		log.Errorf("failed to delete service %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func toServiceResponse(svc *entity.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Icon:        svc.Icon,
		Category:    svc.Category,
		Active:      svc.Active,
		CreatedAt:   utils.FormatEpoch(svc.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(svc.UpdatedAt),
	}
}
