package routes

import (
	"net/http"

	"clinicapi/cmd/internal/auth"
	"clinicapi/cmd/internal/authz"
	"clinicapi/cmd/internal/service"
	"clinicapi/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type ServiceService interface {
	GetServices(actor authz.Actor) ([]*service.ServiceResponse, apierror.ErrorResponse)
	CreateService(actor authz.Actor, req *service.ServiceRequest) (*service.ServiceResponse, apierror.ErrorResponse)
	UpdateService(actor authz.Actor, id int, req *service.ServiceRequest) (*service.ServiceResponse, apierror.ErrorResponse)
	DeleteService(actor authz.Actor, id int) apierror.ErrorResponse
}

type DefaultServiceRoute struct {
	ServiceService ServiceService
}

func NewServiceDefault(serviceService ServiceService) *DefaultServiceRoute {
	return &DefaultServiceRoute{ServiceService: serviceService}
}

func (s *DefaultServiceRoute) GetServices(c echo.Context) error {
	services, apierr := s.ServiceService.GetServices(auth.ActorFromCtx(c))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"services": services}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultServiceRoute) CreateService(c echo.Context) error {
	var req service.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	svc, apierr := s.ServiceService.CreateService(auth.ActorFromCtx(c), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, svc)
}

func (s *DefaultServiceRoute) UpdateService(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	svc, apierr := s.ServiceService.UpdateService(auth.ActorFromCtx(c), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, svc)
}

func (s *DefaultServiceRoute) DeleteService(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := s.ServiceService.DeleteService(auth.ActorFromCtx(c), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
