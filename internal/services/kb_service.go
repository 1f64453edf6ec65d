package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/routeburn/product-flow/internal/models"
	"github.com/routeburn/product-flow/internal/repository"
	appErr "github.com/routeburn/product-flow/pkg/errors"
	"github.com/routeburn/product-flow/pkg/logger"
	"go.uber.org/zap"
)

// KBService is plain CRUD over knowledge-base documents.
type KBService interface {
	Create(ctx context.Context, input *CreateKBInput) (*models.KBDocument, error)
	Update(ctx context.Context, id uuid.UUID, patch *UpdateKBInput) (*models.KBDocument, error)
	Get(ctx context.Context, id uuid.UUID) (*models.KBDocument, error)
	List(ctx context.Context, portfolioCode, productCode string) ([]models.KBDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateKBInput struct {
	Title         string
	Content       string
	PortfolioCode string
	ProductCode   string
}

type UpdateKBInput struct {
	Title   *string
	Content *string
}

type kbService struct {
	docs repository.KBRepository
}

func NewKBService(docs repository.KBRepository) KBService {
	return &kbService{docs: docs}
}

var _ KBService = (*kbService)(nil)

func (s *kbService) Create(ctx context.Context, input *CreateKBInput) (*models.KBDocument, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)

	var missing []string
	if title == "" {
		missing = append(missing, "title")
	}
	if content == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return nil, appErr.Validation(missing...)
	}

	doc := &models.KBDocument{
		Title:         title,
		Content:       input.Content,
		PortfolioCode: input.PortfolioCode,
		ProductCode:   input.ProductCode,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, err
	}

	logger.L().Info("kb document created",
		zap.String("id", doc.ID.String()),
		zap.String("product_code", doc.ProductCode),
	)
	return doc, nil
}

func (s *kbService) Update(ctx context.Context, id uuid.UUID, patch *UpdateKBInput) (*models.KBDocument, error) {
	var doc models.KBDocument
	if err := s.docs.GetByID(ctx, id, &doc); err != nil {
		return nil, err
	}

	var empty []string
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		empty = append(empty, "title")
	}
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		empty = append(empty, "content")
	}
	if len(empty) > 0 {
		return nil, appErr.Validation(empty...)
	}

	if patch.Title != nil {
		doc.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		doc.Content = *patch.Content
	}

	if err := s.docs.Update(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *kbService) Get(ctx context.Context, id uuid.UUID) (*models.KBDocument, error) {
	var doc models.KBDocument
	if err := s.docs.GetByID(ctx, id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *kbService) List(ctx context.Context, portfolioCode, productCode string) ([]models.KBDocument, error) {
	return s.docs.ListByProduct(ctx, portfolioCode, productCode)
}

func (s *kbService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.docs.Delete(ctx, id)
}
