package routes

import (
	"net/http"

	"clinicapi/cmd/internal/auth"
	"clinicapi/cmd/internal/authz"
	"clinicapi/cmd/internal/service"
	"clinicapi/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type TestimonialService interface {
	GetTestimonials(actor authz.Actor) ([]*service.TestimonialResponse, apierror.ErrorResponse)
	CreateTestimonial(actor authz.Actor, req *service.TestimonialRequest) (*service.TestimonialResponse, apierror.ErrorResponse)
	UpdateTestimonial(actor authz.Actor, id int, req *service.TestimonialRequest) (*service.TestimonialResponse, apierror.ErrorResponse)
	DeleteTestimonial(actor authz.Actor, id int) apierror.ErrorResponse
}

type DefaultTestimonialRoute struct {
	TestimonialService TestimonialService
}

func NewTestimonialDefault(testimonialService TestimonialService) *DefaultTestimonialRoute {
	return &DefaultTestimonialRoute{TestimonialService: testimonialService}
}

func (t *DefaultTestimonialRoute) GetTestimonials(c echo.Context) error {
	testimonials, apierr := t.TestimonialService.GetTestimonials(auth.ActorFromCtx(c))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"testimonials": testimonials}
	return c.JSON(http.StatusOK, &resp)
}

func (t *DefaultTestimonialRoute) CreateTestimonial(c echo.Context) error {
	var req service.TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	testimonial, apierr := t.TestimonialService.CreateTestimonial(auth.ActorFromCtx(c), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, testimonial)
}

func (t *DefaultTestimonialRoute) UpdateTestimonial(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	testimonial, apierr := t.TestimonialService.UpdateTestimonial(auth.ActorFromCtx(c), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, testimonial)
}

func (t *DefaultTestimonialRoute) DeleteTestimonial(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := t.TestimonialService.DeleteTestimonial(auth.ActorFromCtx(c), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
