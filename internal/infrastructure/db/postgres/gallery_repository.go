package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Create(ctx context.Context, gallery *domain.Gallery) error {
	if err := r.db.WithContext(ctx).Create(gallery).Error; err != nil {
		return fmt.Errorf("insert gallery: %w", err)
	}
	return nil
}

func (r *GalleryRepository) FindByID(ctx context.Context, id string, withImages bool) (*domain.Gallery, error) {
	q := r.db.WithContext(ctx).Preload("User")
	if withImages {
		q = q.Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		})
	}

	var gallery domain.Gallery
	if err := q.Where("id = ?", id).First(&gallery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGalleryNotFound
		}
		return nil, fmt.Errorf("find gallery: %w", err)
	}
	return &gallery, nil
}

func (r *GalleryRepository) ListWithCounts(ctx context.Context, filter ports.GalleryFilter) ([]ports.GalleryWithCounts, error) {
	q := r.db.WithContext(ctx).Model(&domain.Gallery{})

	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Visibility != "" {
		q = q.Where("visibility = ?", filter.Visibility)
	}

	var galleries []domain.Gallery
	if err := q.Preload("User").Order("created_at desc").Find(&galleries).Error; err != nil {
		return nil, fmt.Errorf("list galleries: %w", err)
	}

	out := make([]ports.GalleryWithCounts, 0, len(galleries))
	for _, g := range galleries {
		var imageCount, orderCount int64
		if err := r.db.WithContext(ctx).Model(&domain.Image{}).
			Where("gallery_id = ?", g.ID).Count(&imageCount).Error; err != nil {
			return nil, fmt.Errorf("count gallery images: %w", err)
		}
		if err := r.db.WithContext(ctx).Model(&domain.Order{}).
			Where("gallery_id = ?", g.ID).Count(&orderCount).Error; err != nil {
			return nil, fmt.Errorf("count gallery orders: %w", err)
		}
		out = append(out, ports.GalleryWithCounts{
			Gallery:    g,
			ImageCount: imageCount,
			OrderCount: orderCount,
		})
	}
	return out, nil
}

func (r *GalleryRepository) ListForUser(ctx context.Context, userID string, status domain.GalleryStatus) ([]domain.Gallery, error) {
	var galleries []domain.Gallery
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND visibility <> ?", userID, status, domain.VisibilityHidden).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Order("created_at desc").
		Find(&galleries).Error
	if err != nil {
		return nil, fmt.Errorf("list galleries for user: %w", err)
	}
	return galleries, nil
}

func (r *GalleryRepository) Update(ctx context.Context, gallery *domain.Gallery) error {
	res := r.db.WithContext(ctx).Model(&domain.Gallery{}).Where("id = ?", gallery.ID).Updates(map[string]any{
		"title":       gallery.Title,
		"description": gallery.Description,
		"status":      gallery.Status,
		"visibility":  gallery.Visibility,
		"price":       gallery.Price,
		"is_free":     gallery.IsFree,
		"updated_at":  gallery.UpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("update gallery: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrGalleryNotFound
	}
	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Gallery{})
	if res.Error != nil {
		return fmt.Errorf("delete gallery: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrGalleryNotFound
	}
	return nil
}

func (r *GalleryRepository) AddImage(ctx context.Context, image *domain.Image) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("insert image: %w", err)
	}
	return nil
}

func (r *GalleryRepository) ListImages(ctx context.Context, galleryID string) ([]domain.Image, error) {
	var images []domain.Image
	err := r.db.WithContext(ctx).
		Where("gallery_id = ?", galleryID).
		Order("sort_order asc").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}

func (r *GalleryRepository) FindImages(ctx context.Context, imageIDs []string) ([]domain.Image, error) {
	if len(imageIDs) == 0 {
		return nil, nil
	}
	var images []domain.Image
	if err := r.db.WithContext(ctx).Where("id IN ?", imageIDs).Find(&images).Error; err != nil {
		return nil, fmt.Errorf("find images: %w", err)
	}
	return images, nil
}

func (r *GalleryRepository) MaxSortOrder(ctx context.Context, galleryID string) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&domain.Image{}).
		Where("gallery_id = ?", galleryID).
		Select("MAX(sort_order)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("max sort order: %w", err)
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
