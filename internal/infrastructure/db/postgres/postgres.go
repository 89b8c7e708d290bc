package postgres

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
)

// Connect opens a GORM handle on the given postgres DSN and migrates the
// schema. The returned *gorm.DB owns its connection pool; it is passed
// explicitly to every repository; there is no ambient global client.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Booking{},
		&domain.Gallery{},
		&domain.Image{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.AvailabilitySlot{},
		&domain.PageView{},
	); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}

	return db, nil
}

// Ping verifies connectivity for the readiness probe.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}
