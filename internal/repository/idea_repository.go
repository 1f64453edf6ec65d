package repository

import (
	"context"
	"time"

	"github.com/routeburn/product-flow/internal/models"
	appErr "github.com/routeburn/product-flow/pkg/errors"
	"github.com/routeburn/product-flow/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IdeaRepository interface {
	BaseRepository[models.Idea]
	// ListByProduct returns all ideas in one (portfolioCode, productCode)
	// scope, in store order.
	ListByProduct(ctx context.Context, portfolioCode, productCode string) ([]models.Idea, error)
	// GetByNumber resolves an idea by its per-product number.
	GetByNumber(ctx context.Context, portfolioCode, productCode string, ideaNumber int) (*models.Idea, error)
}

type ideaRepository struct {
	BaseRepository[models.Idea]
	db      *gorm.DB
	timeout time.Duration
}

func NewIdeaRepository(db *gorm.DB, timeout time.Duration) IdeaRepository {
	return &ideaRepository{
		BaseRepository: NewBaseRepository[models.Idea](db, timeout),
		db:             db,
		timeout:        timeout,
	}
}

// The secondary index covers product_code alone, so the query hits that
// index and the portfolio scoping happens over the fetched rows, matching
// how every surface reads this table.
func (r *ideaRepository) ListByProduct(ctx context.Context, portfolioCode, productCode string) ([]models.Idea, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	var rows []models.Idea
	if err := r.db.WithContext(ctx).Where("product_code = ?", productCode).Find(&rows).Error; err != nil {
		return nil, storeErr(err, "list ideas by product failed")
	}

	out := rows[:0]
	for _, idea := range rows {
		if idea.PortfolioCode == portfolioCode {
			out = append(out, idea)
		}
	}
	return out, nil
}

func (r *ideaRepository) GetByNumber(ctx context.Context, portfolioCode, productCode string, ideaNumber int) (*models.Idea, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	var rows []models.Idea
	err := r.db.WithContext(ctx).
		Where("product_code = ? AND idea_number = ?", productCode, ideaNumber).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storeErr(err, "get idea by number failed")
	}

	matches := make([]models.Idea, 0, 1)
	for _, idea := range rows {
		if idea.PortfolioCode == portfolioCode {
			matches = append(matches, idea)
		}
	}
	if len(matches) == 0 {
		return nil, appErr.NotFound("idea")
	}
	if len(matches) > 1 {
		// Numbering is read-max-then-write, so concurrent creates can
		// collide. The oldest record wins; the collision is logged, not
		// treated as a read error.
		logger.L().Warn("duplicate idea number",
			zap.String("portfolio_code", portfolioCode),
			zap.String("product_code", productCode),
			zap.Int("idea_number", ideaNumber),
			zap.Int("matches", len(matches)),
		)
	}
	return &matches[0], nil
}
