package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/routeburn/product-flow/internal/models"
	appErr "github.com/routeburn/product-flow/pkg/errors"
	"github.com/routeburn/product-flow/pkg/utils"
	"gorm.io/gorm"
)

type StudioRepository interface {
	// GetUserByEmail matches a membership record case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (*models.StudioUser, error)
	GetStudio(ctx context.Context, id uuid.UUID) (*models.Studio, error)
}

type studioRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewStudioRepository(db *gorm.DB, timeout time.Duration) StudioRepository {
	return &studioRepository{db: db, timeout: timeout}
}

func (r *studioRepository) GetUserByEmail(ctx context.Context, email string) (*models.StudioUser, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()
	var u models.StudioUser
	if err := r.db.WithContext(ctx).First(&u, "lower(email) = ?", utils.NormalizeEmail(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErr.NotFound("studio user")
		}
		return nil, storeErr(err, "get studio user failed")
	}
	return &u, nil
}

func (r *studioRepository) GetStudio(ctx context.Context, id uuid.UUID) (*models.Studio, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()
	var s models.Studio
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErr.NotFound("studio")
		}
		return nil, storeErr(err, "get studio failed")
	}
	return &s, nil
}
