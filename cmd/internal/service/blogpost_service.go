package service

import (
	"clinicapi/cmd/internal/authz"
	"clinicapi/cmd/internal/domain/entity"
	"clinicapi/cmd/internal/utils"
	"clinicapi/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type BlogPostRepository interface {
	FindByID(id int) (*entity.BlogPost, error)
	FindAll(onlyPublished bool) ([]*entity.BlogPost, error)
	Save(post *entity.BlogPost) error
	IncrementViews(id int) error
	Delete(post *entity.BlogPost) error
}

type BlogPostRequest struct {
	Title     string `json:"title" validate:"required,min=2,max=200"`
	Excerpt   string `json:"excerpt" validate:"max=500"`
	Content   string `json:"content" validate:"max=50000"`
	Image     string `json:"image" validate:"max=500"`
	Author    string `json:"author" validate:"max=120"`
	Category  string `json:"category" validate:"max=80"`
	Published *bool  `json:"published"`
}

type BlogPostResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Published bool   `json:"published"`
	Views     int64  `json:"views"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type DefaultBlogPostService struct {
	BlogPostRepo BlogPostRepository
	Validate     *validator.Validate
}

func NewBlogPostService(postRepo BlogPostRepository, validate *validator.Validate) *DefaultBlogPostService {
	return &DefaultBlogPostService{BlogPostRepo: postRepo, Validate: validate}
}

func (b *DefaultBlogPostService) GetPosts(actor authz.Actor) ([]*BlogPostResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindBlogPost, authz.OpRead) {
		return nil, apierror.AuthorizationError
	}

	posts, err := b.BlogPostRepo.FindAll(!actor.Staff)
	if err != nil {
		log.Errorf("failed to find blog posts: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*BlogPostResponse, len(posts))
	for i, post := range posts {
		response[i] = toBlogPostResponse(post)
	}
	return response, nil
}

// GetPost returns a single post. Public reads only see published posts and
// count as a view; staff reads see everything and leave the counter alone.
func (b *DefaultBlogPostService) GetPost(actor authz.Actor, id int) (*BlogPostResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindBlogPost, authz.OpRead) {
		return nil, apierror.AuthorizationError
	}

	post, err := b.BlogPostRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch blog post %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if post == nil || (!actor.Staff && !post.Published) {
		return nil, apierror.NewNotFoundError("Blog post")
	}

	if !actor.Staff {
		if err := b.BlogPostRepo.IncrementViews(id); err != nil {
			log.Errorf("failed to count view on blog post %d: %v", id, err)
		} else {
			post.Views++
		}
	}
	return toBlogPostResponse(post), nil
}

func (b *DefaultBlogPostService) CreatePost(actor authz.Actor, req *BlogPostRequest) (*BlogPostResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindBlogPost, authz.OpCreate) {
		return nil, apierror.AuthorizationError
	}

	utils.Sanitize(req)
	if valerr := b.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	now := utils.NowUTC()
	post := &entity.BlogPost{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Image:     req.Image,
		Author:    req.Author,
		Category:  req.Category,
		Published: published,
		Views:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := b.BlogPostRepo.Save(post); err != nil {
		log.Errorf("failed to save blog post: %v", err)
		return nil, apierror.InternalServerError
	}
	return toBlogPostResponse(post), nil
}

func (b *DefaultBlogPostService) UpdatePost(actor authz.Actor, id int, req *BlogPostRequest) (*BlogPostResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindBlogPost, authz.OpUpdate) {
		return nil, apierror.AuthorizationError
	}

	utils.Sanitize(req)
	if valerr := b.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	post, err := b.BlogPostRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch blog post %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if post == nil {
		return nil, apierror.NewNotFoundError("Blog post")
	}

	post.Title = req.Title
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.Image = req.Image
	post.Author = req.Author
	post.Category = req.Category
	if req.Published != nil {
		post.Published = *req.Published
	}
	post.UpdatedAt = utils.NowUTC()

	if err := b.BlogPostRepo.Save(post); err != nil {
		log.Errorf("failed to update blog post %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toBlogPostResponse(post), nil
}

func (b *DefaultBlogPostService) DeletePost(actor authz.Actor, id int) apierror.ErrorResponse {
	if !authz.Allowed(actor, authz.KindBlogPost, authz.OpDelete) {
		return apierror.AuthorizationError
	}

	post, err := b.BlogPostRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch blog post %d: %v", id, err)
		return apierror.InternalServerError
	}
	if post == nil {
		return apierror.NewNotFoundError("Blog post")
	}

	if err := b.BlogPostRepo.Delete(post); err != nil {
		log.Errorf("failed to delete blog post %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func toBlogPostResponse(post *entity.BlogPost) *BlogPostResponse {
	return &BlogPostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Excerpt:   post.Excerpt,
		Content:   post.Content,
		Image:     post.Image,
		Author:    post.Author,
		Category:  post.Category,
		Published: post.Published,
		Views:     post.Views,
		CreatedAt: utils.FormatEpoch(post.CreatedAt),
		UpdatedAt: utils.FormatEpoch(post.UpdatedAt),
	}
}
