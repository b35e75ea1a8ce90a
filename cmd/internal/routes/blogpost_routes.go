package routes

import (
	"net/http"

	"clinicapi/cmd/internal/auth"
	"clinicapi/cmd/internal/authz"
	"clinicapi/cmd/internal/service"
	"clinicapi/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type BlogPostService interface {
	GetPosts(actor authz.Actor) ([]*service.BlogPostResponse, apierror.ErrorResponse)
	GetPost(actor authz.Actor, id int) (*service.BlogPostResponse, apierror.ErrorResponse)
	CreatePost(actor authz.Actor, req *service.BlogPostRequest) (*service.BlogPostResponse, apierror.ErrorResponse)
	UpdatePost(actor authz.Actor, id int, req *service.BlogPostRequest) (*service.BlogPostResponse, apierror.ErrorResponse)
	DeletePost(actor authz.Actor, id int) apierror.ErrorResponse
}

type DefaultBlogPostRoute struct {
	BlogPostService BlogPostService
}

func NewBlogPostDefault(postService BlogPostService) *DefaultBlogPostRoute {
	return &DefaultBlogPostRoute{BlogPostService: postService}
}

func (b *DefaultBlogPostRoute) GetPosts(c echo.Context) error {
	posts, apierr := b.BlogPostService.GetPosts(auth.ActorFromCtx(c))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"posts": posts}
	return c.JSON(http.StatusOK, &resp)
}

func (b *DefaultBlogPostRoute) GetPost(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	post, apierr := b.BlogPostService.GetPost(auth.ActorFromCtx(c), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, post)
}

func (b *DefaultBlogPostRoute) CreatePost(c echo.Context) error {
	var req service.BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	post, apierr := b.BlogPostService.CreatePost(auth.ActorFromCtx(c), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, post)
}

func (b *DefaultBlogPostRoute) UpdatePost(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	post, apierr := b.BlogPostService.UpdatePost(auth.ActorFromCtx(c), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, post)
}

func (b *DefaultBlogPostRoute) DeletePost(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := b.BlogPostService.DeletePost(auth.ActorFromCtx(c), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
