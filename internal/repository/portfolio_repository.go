package repository

import (
	"context"
	"errors"
	"time"

	"github.com/routeburn/product-flow/internal/models"
	appErr "github.com/routeburn/product-flow/pkg/errors"
	"gorm.io/gorm"
)

type PortfolioRepository interface {
	Create(ctx context.Context, p *models.Portfolio) error
	Update(ctx context.Context, p *models.Portfolio) error
	GetByCode(ctx context.Context, code string) (*models.Portfolio, error)
	List(ctx context.Context) ([]models.Portfolio, error)
}

type portfolioRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// Portfolios are keyed by code rather than a surrogate id, so this
// repository does not embed the generic base.
func NewPortfolioRepository(db *gorm.DB, timeout time.Duration) PortfolioRepository {
	return &portfolioRepository{db: db, timeout: timeout}
}

func (r *portfolioRepository) Create(ctx context.Context, p *models.Portfolio) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return storeErr(err, "create portfolio failed")
	}
	return nil
}

func (r *portfolioRepository) Update(ctx context.Context, p *models.Portfolio) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return storeErr(err, "update portfolio failed")
	}
	return nil
}

func (r *portfolioRepository) GetByCode(ctx context.Context, code string) (*models.Portfolio, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()
	var p models.Portfolio
	if err := r.db.WithContext(ctx).First(&p, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErr.NotFound("portfolio")
		}
		return nil, storeErr(err, "get portfolio failed")
	}
	return &p, nil
}

func (r *portfolioRepository) List(ctx context.Context) ([]models.Portfolio, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()
	var out []models.Portfolio
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&out).Error; err != nil {
		return nil, storeErr(err, "list portfolios failed")
	}
	return out, nil
}
