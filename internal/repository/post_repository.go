package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blogapi/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) Update(post *model.Post) error {
	if err := r.db.Save(post).Error; err != nil {
		return fmt.Errorf("update post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&model.Post{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("delete post failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// List returns posts newest first.
func (r *PostRepository) List(offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&model.Post{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count posts failed: %w", err)
	}
	return total, nil
}
