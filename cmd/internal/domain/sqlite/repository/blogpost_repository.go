package repository

import (
	"errors"

	"clinicapi/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultBlogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) *DefaultBlogPostRepository {
	return &DefaultBlogPostRepository{db: db}
}

func (b *DefaultBlogPostRepository) FindByID(id int) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := b.db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &post, err
}

func (b *DefaultBlogPostRepository) FindAll(onlyPublished bool) ([]*entity.BlogPost, error) {
	q := b.db.Model(&entity.BlogPost{})
	if onlyPublished {
		q = q.Where("published = ?", true)
	}

	var posts []*entity.BlogPost
	err := q.Order("created_at desc").Find(&posts).Error
	return posts, err
}

func (b *DefaultBlogPostRepository) Save(post *entity.BlogPost) error {
	return b.db.Save(post).Error
}

// IncrementViews bumps the counter in place so concurrent reads never lose
// an increment and the counter never decreases.
func (b *DefaultBlogPostRepository) IncrementViews(id int) error {
	return b.db.Model(&entity.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (b *DefaultBlogPostRepository) Delete(post *entity.BlogPost) error {
	return b.db.Delete(post).Error
}
