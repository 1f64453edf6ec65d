package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/routeburn/product-flow/internal/models"
	"github.com/routeburn/product-flow/internal/repository"
	appErr "github.com/routeburn/product-flow/pkg/errors"
	"github.com/routeburn/product-flow/pkg/logger"
	"go.uber.org/zap"
)

// IdeaService mutates ideas while preserving the backlog invariants:
// monotonic per-product numbering, a history entry per distinct status
// change, and a non-negative vote count.
type IdeaService interface {
	Create(ctx context.Context, input *CreateIdeaInput) (*models.Idea, error)
	Update(ctx context.Context, id uuid.UUID, patch *UpdateIdeaInput) (*models.Idea, error)
	Upvote(ctx context.Context, id uuid.UUID, observedCount int) (*models.Idea, error)
	List(ctx context.Context, portfolioCode, productCode string) ([]models.Idea, error)
	GetByNumber(ctx context.Context, portfolioCode, productCode string, ideaNumber int) (*models.Idea, error)
}

type CreateIdeaInput struct {
	PortfolioCode    string
	ProductCode      string
	Name             string
	Hypothesis       string
	ValidationStatus models.ValidationStatus // defaults to backlog
	Source           models.Source           // optional
}

type UpdateIdeaInput struct {
	Name             *string
	Hypothesis       *string
	ValidationStatus *models.ValidationStatus
	Source           *models.Source
}

type ideaService struct {
	ideas repository.IdeaRepository
}

func NewIdeaService(ideas repository.IdeaRepository) IdeaService {
	return &ideaService{ideas: ideas}
}

var _ IdeaService = (*ideaService)(nil)

// Create validates, numbers, and writes a new idea. Both required fields are
// checked independently so a form can show both errors at once.
//
// Numbering is read-max-then-write with no conditional guard: two creates
// racing in the same product can assign the same number. The store keeps
// both; reads resolve to the older record.
func (s *ideaService) Create(ctx context.Context, input *CreateIdeaInput) (*models.Idea, error) {
	name := strings.TrimSpace(input.Name)
	hypothesis := strings.TrimSpace(input.Hypothesis)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if hypothesis == "" {
		missing = append(missing, "hypothesis")
	}
	if len(missing) > 0 {
		return nil, appErr.Validation(missing...)
	}

	status := input.ValidationStatus
	if status == "" {
		status = models.StatusBacklog
	}
	if !status.Known() {
		return nil, appErr.New(appErr.CodeInvalid, "unknown validation status").
			WithMeta("validationStatus", string(status))
	}
	if input.Source != "" && !input.Source.Known() {
		return nil, appErr.New(appErr.CodeInvalid, "unknown source").
			WithMeta("source", string(input.Source))
	}

	existing, err := s.ideas.ListByProduct(ctx, input.PortfolioCode, input.ProductCode)
	if err != nil {
		return nil, err
	}

	idea := &models.Idea{
		IdeaNumber:       models.NextIdeaNumber(existing),
		Name:             name,
		Hypothesis:       hypothesis,
		ValidationStatus: status,
		StatusHistory: models.AppendStatusHistory(nil, models.StatusHistoryEntry{
			Status:    status,
			Timestamp: time.Now().UTC(),
		}),
		Upvotes:       0,
		Source:        input.Source,
		PortfolioCode: input.PortfolioCode,
		ProductCode:   input.ProductCode,
	}

	if err := s.ideas.Create(ctx, idea); err != nil {
		return nil, err
	}

	logger.L().Info("idea created",
		zap.String("portfolio_code", idea.PortfolioCode),
		zap.String("product_code", idea.ProductCode),
		zap.Int("idea_number", idea.IdeaNumber),
	)
	return idea, nil
}

// Update applies a partial patch. A history entry is appended only when the
// patch carries a status different from the current one; setting the current
// status again is a no-op for history. Any status may move to any other,
// including out of failed.
func (s *ideaService) Update(ctx context.Context, id uuid.UUID, patch *UpdateIdeaInput) (*models.Idea, error) {
	var idea models.Idea
	if err := s.ideas.GetByID(ctx, id, &idea); err != nil {
		return nil, err
	}

	var empty []string
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		empty = append(empty, "name")
	}
	if patch.Hypothesis != nil && strings.TrimSpace(*patch.Hypothesis) == "" {
		empty = append(empty, "hypothesis")
	}
	if len(empty) > 0 {
		return nil, appErr.Validation(empty...)
	}
	if patch.ValidationStatus != nil && !patch.ValidationStatus.Known() {
		return nil, appErr.New(appErr.CodeInvalid, "unknown validation status").
			WithMeta("validationStatus", string(*patch.ValidationStatus))
	}
	if patch.Source != nil && *patch.Source != "" && !patch.Source.Known() {
		return nil, appErr.New(appErr.CodeInvalid, "unknown source").
			WithMeta("source", string(*patch.Source))
	}

	if patch.Name != nil {
		idea.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Hypothesis != nil {
		idea.Hypothesis = strings.TrimSpace(*patch.Hypothesis)
	}
	if patch.Source != nil {
		idea.Source = *patch.Source
	}
	if patch.ValidationStatus != nil && *patch.ValidationStatus != idea.ValidationStatus {
		idea.ValidationStatus = *patch.ValidationStatus
		idea.StatusHistory = models.AppendStatusHistory(idea.StatusHistory, models.StatusHistoryEntry{
			Status:    *patch.ValidationStatus,
			Timestamp: time.Now().UTC(),
		})
	}

	if err := s.ideas.Update(ctx, &idea); err != nil {
		return nil, err
	}

	logger.L().Info("idea updated",
		zap.String("id", idea.ID.String()),
		zap.String("status", string(idea.ValidationStatus)),
	)
	return &idea, nil
}

// Upvote writes observedCount+1, the count the caller last displayed. This
// is deliberately a read-then-write, not an atomic increment: two callers
// that both observed 5 will both write 6 and one vote is lost. The original
// system behaves the same way.
func (s *ideaService) Upvote(ctx context.Context, id uuid.UUID, observedCount int) (*models.Idea, error) {
	var idea models.Idea
	if err := s.ideas.GetByID(ctx, id, &idea); err != nil {
		return nil, err
	}

	idea.Upvotes = observedCount + 1
	if err := s.ideas.Update(ctx, &idea); err != nil {
		return nil, err
	}

	logger.L().Info("idea upvoted",
		zap.String("id", idea.ID.String()),
		zap.Int("upvotes", idea.Upvotes),
	)
	return &idea, nil
}

func (s *ideaService) List(ctx context.Context, portfolioCode, productCode string) ([]models.Idea, error) {
	return s.ideas.ListByProduct(ctx, portfolioCode, productCode)
}

func (s *ideaService) GetByNumber(ctx context.Context, portfolioCode, productCode string, ideaNumber int) (*models.Idea, error) {
	return s.ideas.GetByNumber(ctx, portfolioCode, productCode, ideaNumber)
}
