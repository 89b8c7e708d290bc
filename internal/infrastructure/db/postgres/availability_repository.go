package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Create(ctx context.Context, slot *domain.AvailabilitySlot) error {
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		return fmt.Errorf("insert availability slot: %w", err)
	}
	return nil
}

func (r *AvailabilityRepository) ListAvailable(ctx context.Context, from, to *time.Time) ([]domain.AvailabilitySlot, error) {
	q := r.db.WithContext(ctx).Where("is_available = ?", true)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var slots []domain.AvailabilitySlot
	if err := q.Order("date asc, start_time asc").Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("list availability slots: %w", err)
	}
	return slots, nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.AvailabilitySlot{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete availability slot: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSlotNotFound
	}
	return nil
}
