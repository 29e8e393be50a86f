package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/teatime-labs/moodgate/pkg/domain"
	"github.com/teatime-labs/moodgate/pkg/domain/post"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) post.Repository {
	return &postRepository{db: db}
}

func (r *postRepository) Save(ctx context.Context, p *post.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	var p post.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("post", id)
		}
		return nil, err
	}
	return &p, nil
}
