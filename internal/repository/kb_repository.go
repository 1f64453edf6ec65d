package repository

import (
	"context"
	"time"

	"github.com/routeburn/product-flow/internal/models"
	"gorm.io/gorm"
)

type KBRepository interface {
	BaseRepository[models.KBDocument]
	ListByProduct(ctx context.Context, portfolioCode, productCode string) ([]models.KBDocument, error)
}

type kbRepository struct {
	BaseRepository[models.KBDocument]
	db      *gorm.DB
	timeout time.Duration
}

func NewKBRepository(db *gorm.DB, timeout time.Duration) KBRepository {
	return &kbRepository{
		BaseRepository: NewBaseRepository[models.KBDocument](db, timeout),
		db:             db,
		timeout:        timeout,
	}
}

func (r *kbRepository) ListByProduct(ctx context.Context, portfolioCode, productCode string) ([]models.KBDocument, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	var rows []models.KBDocument
	if err := r.db.WithContext(ctx).Where("product_code = ?", productCode).Order("updated_at DESC").Find(&rows).Error; err != nil {
		return nil, storeErr(err, "list kb documents failed")
	}

	out := rows[:0]
	for _, doc := range rows {
		if doc.PortfolioCode == portfolioCode {
			out = append(out, doc)
		}
	}
	return out, nil
}
