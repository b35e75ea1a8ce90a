package routes

import (
	"net/http"
	"strconv"

	"clinicapi/cmd/internal/auth"
	"clinicapi/cmd/internal/authz"
	"clinicapi/cmd/internal/domain/sqlite/repository"
	"clinicapi/cmd/internal/service"
	"clinicapi/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	CreateAppointment(actor authz.Actor, req *service.AppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	GetAppointments(actor authz.Actor, filter repository.AppointmentFilter) ([]*service.AppointmentResponse, apierror.ErrorResponse)
	UpdateAppointment(actor authz.Actor, id int, req *service.AppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	UpdateStatus(actor authz.Actor, id int, req *service.StatusRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	DeleteAppointment(actor authz.Actor, id int) apierror.ErrorResponse
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) CreateAppointment(c echo.Context) error {
	var req service.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.CreateAppointment(auth.ActorFromCtx(c), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (a *DefaultAppointmentRoute) GetAppointments(c echo.Context) error {
	filter, apierr := parseAppointmentFilter(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	appts, apierr := a.AppointmentService.GetAppointments(auth.ActorFromCtx(c), filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"appointments": appts}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) UpdateAppointment(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.UpdateAppointment(auth.ActorFromCtx(c), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appt)
}

func (a *DefaultAppointmentRoute) UpdateStatus(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.UpdateStatus(auth.ActorFromCtx(c), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appt)
}

func (a *DefaultAppointmentRoute) DeleteAppointment(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := a.AppointmentService.DeleteAppointment(auth.ActorFromCtx(c), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func parseAppointmentFilter(c echo.Context) (repository.AppointmentFilter, apierror.ErrorResponse) {
	var filter repository.AppointmentFilter

	if raw := c.QueryParam("doctor_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apierror.NewSimple(http.StatusBadRequest, "doctor_id is not a number")
		}
		filter.DoctorID = &id
	}
	if status := c.QueryParam("status"); status != "" {
		filter.Status = &status
	}
	if date := c.QueryParam("date"); date != "" {
		filter.Date = &date
	}
	return filter, nil
}

func parseIDParam(c echo.Context) (int, apierror.ErrorResponse) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apierror.NewSimple(http.StatusBadRequest, "ID is not a number")
	}
	return id, nil
}
