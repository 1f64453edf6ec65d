package services

import (
	"context"
	"strings"

	"github.com/routeburn/product-flow/internal/models"
	"github.com/routeburn/product-flow/internal/repository"
	appErr "github.com/routeburn/product-flow/pkg/errors"
	"github.com/routeburn/product-flow/pkg/logger"
	"github.com/routeburn/product-flow/pkg/utils"
	"go.uber.org/zap"
)

// PortfolioService manages tenants and their product lists. Owner and
// product appends are read-modify-write against the stored lists; concurrent
// appends can race and lose an entry, same as the original system.
type PortfolioService interface {
	Create(ctx context.Context, input *CreatePortfolioInput) (*models.Portfolio, error)
	Get(ctx context.Context, code string) (*models.Portfolio, error)
	List(ctx context.Context) ([]models.Portfolio, error)
	AddProduct(ctx context.Context, portfolioCode string, product models.Product) (*models.Portfolio, error)
	AddOwner(ctx context.Context, portfolioCode, ownerEmail string) (*models.Portfolio, error)
}

type CreatePortfolioInput struct {
	Code             string
	OrganizationName string
	Name             string
}

type portfolioService struct {
	portfolios repository.PortfolioRepository
}

func NewPortfolioService(portfolios repository.PortfolioRepository) PortfolioService {
	return &portfolioService{portfolios: portfolios}
}

var _ PortfolioService = (*portfolioService)(nil)

func (s *portfolioService) Create(ctx context.Context, input *CreatePortfolioInput) (*models.Portfolio, error) {
	code := strings.TrimSpace(input.Code)
	org := strings.TrimSpace(input.OrganizationName)
	name := strings.TrimSpace(input.Name)

	var missing []string
	if code == "" {
		missing = append(missing, "code")
	}
	if org == "" {
		missing = append(missing, "organizationName")
	}
	if name == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return nil, appErr.Validation(missing...)
	}
	if !utils.IsURLSafeCode(code) {
		return nil, appErr.New(appErr.CodeInvalid, "code must be lowercase letters, digits, and hyphens").
			WithMeta("code", code)
	}

	p := &models.Portfolio{
		Code:             code,
		OrganizationName: org,
		Name:             name,
		Owners:           []string{},
	}
	if err := p.SetProducts([]models.Product{}); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "encode products")
	}

	if err := s.portfolios.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.L().Info("portfolio created", zap.String("code", p.Code))
	return p, nil
}

func (s *portfolioService) Get(ctx context.Context, code string) (*models.Portfolio, error) {
	return s.portfolios.GetByCode(ctx, code)
}

func (s *portfolioService) List(ctx context.Context) ([]models.Portfolio, error) {
	return s.portfolios.List(ctx)
}

func (s *portfolioService) AddProduct(ctx context.Context, portfolioCode string, product models.Product) (*models.Portfolio, error) {
	product.Code = strings.TrimSpace(product.Code)
	product.Name = strings.TrimSpace(product.Name)

	var missing []string
	if product.Code == "" {
		missing = append(missing, "code")
	}
	if product.Name == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return nil, appErr.Validation(missing...)
	}
	if !utils.IsURLSafeCode(product.Code) {
		return nil, appErr.New(appErr.CodeInvalid, "product code must be lowercase letters, digits, and hyphens").
			WithMeta("code", product.Code)
	}

	p, err := s.portfolios.GetByCode(ctx, portfolioCode)
	if err != nil {
		return nil, err
	}
	if p.HasProduct(product.Code) {
		return nil, appErr.New(appErr.CodeConflict, "product code already exists in portfolio").
			WithMeta("code", product.Code)
	}

	if err := p.SetProducts(append(p.ParseProducts(), product)); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "encode products")
	}
	if err := s.portfolios.Update(ctx, p); err != nil {
		return nil, err
	}

	logger.L().Info("product added to portfolio",
		zap.String("portfolio_code", p.Code),
		zap.String("product_code", product.Code),
	)
	return p, nil
}

func (s *portfolioService) AddOwner(ctx context.Context, portfolioCode, ownerEmail string) (*models.Portfolio, error) {
	email := utils.NormalizeEmail(ownerEmail)
	if email == "" {
		return nil, appErr.Validation("email")
	}

	p, err := s.portfolios.GetByCode(ctx, portfolioCode)
	if err != nil {
		return nil, err
	}

	for _, o := range p.Owners {
		if o == email {
			return p, nil
		}
	}
	p.Owners = append(p.Owners, email)

	if err := s.portfolios.Update(ctx, p); err != nil {
		return nil, err
	}

	logger.L().Info("owner added to portfolio",
		zap.String("portfolio_code", p.Code),
		zap.String("owner", email),
	)
	return p, nil
}
