package routes

import (
	"net/http"

	"clinicapi/cmd/internal/auth"
	"clinicapi/cmd/internal/authz"
	"clinicapi/cmd/internal/service"
	"clinicapi/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type DoctorService interface {
	GetDoctors(actor authz.Actor) ([]*service.DoctorResponse, apierror.ErrorResponse)
	CreateDoctor(actor authz.Actor, req *service.DoctorRequest) (*service.DoctorResponse, apierror.ErrorResponse)
	UpdateDoctor(actor authz.Actor, id int, req *service.DoctorRequest) (*service.DoctorResponse, apierror.ErrorResponse)
	DeleteDoctor(actor authz.Actor, id int) apierror.ErrorResponse
}

type DefaultDoctorRoute struct {
	DoctorService DoctorService
}

func NewDoctorDefault(doctorService DoctorService) *DefaultDoctorRoute {
	return &DefaultDoctorRoute{DoctorService: doctorService}
}

func (d *DefaultDoctorRoute) GetDoctors(c echo.Context) error {
	doctors, apierr := d.DoctorService.GetDoctors(auth.ActorFromCtx(c))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"doctors": doctors}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDoctorRoute) CreateDoctor(c echo.Context) error {
	var req service.DoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	doctor, apierr := d.DoctorService.CreateDoctor(auth.ActorFromCtx(c), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, doctor)
}

func (d *DefaultDoctorRoute) UpdateDoctor(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.DoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	doctor, apierr := d.DoctorService.UpdateDoctor(auth.ActorFromCtx(c), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doctor)
}

func (d *DefaultDoctorRoute) DeleteDoctor(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := d.DoctorService.DeleteDoctor(auth.ActorFromCtx(c), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
