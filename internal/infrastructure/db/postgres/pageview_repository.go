package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

type PageViewRepository struct {
	db *gorm.DB
}

func NewPageViewRepository(db *gorm.DB) *PageViewRepository {
	return &PageViewRepository{db: db}
}

func (r *PageViewRepository) Insert(ctx context.Context, in ports.PageViewInput) error {
	row := domain.PageView{
		ID:         uuid.NewString(),
		Path:       in.Path,
		VisitorKey: in.VisitorKey,
		ViewedAt:   in.ViewedAt,
	}
	if in.GalleryID != "" {
		row.GalleryID = &in.GalleryID
	}
	if in.UserID != "" {
		row.UserID = &in.UserID
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert page view: %w", err)
	}
	return nil
}
