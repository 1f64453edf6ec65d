package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/routeburn/product-flow/internal/models"
	appErr "github.com/routeburn/product-flow/pkg/errors"
)

// In-memory repositories standing in for the record store. Insertion order
// is preserved so list results are stable across calls.

type fakeIdeaRepo struct {
	ideas      []*models.Idea
	createErr  error
	updateErr  error
	updateHook func(*models.Idea)
}

func (f *fakeIdeaRepo) Create(ctx context.Context, obj *models.Idea) error {
	if f.createErr != nil {
		return f.createErr
	}
	obj.ID = uuid.New()
	cp := *obj
	f.ideas = append(f.ideas, &cp)
	return nil
}

func (f *fakeIdeaRepo) GetByID(ctx context.Context, id any, dest *models.Idea) error {
	for _, i := range f.ideas {
		if i.ID == id {
			*dest = *i
			return nil
		}
	}
	return appErr.NotFound("idea")
}

func (f *fakeIdeaRepo) Update(ctx context.Context, obj *models.Idea) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updateHook != nil {
		f.updateHook(obj)
	}
	for n, i := range f.ideas {
		if i.ID == obj.ID {
			cp := *obj
			f.ideas[n] = &cp
			return nil
		}
	}
	return appErr.NotFound("idea")
}

func (f *fakeIdeaRepo) Delete(ctx context.Context, id any) error {
	for n, i := range f.ideas {
		if i.ID == id {
			f.ideas = append(f.ideas[:n], f.ideas[n+1:]...)
			return nil
		}
	}
	return appErr.NotFound("idea")
}

func (f *fakeIdeaRepo) ListByProduct(ctx context.Context, portfolioCode, productCode string) ([]models.Idea, error) {
	var out []models.Idea
	for _, i := range f.ideas {
		if i.PortfolioCode == portfolioCode && i.ProductCode == productCode {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeIdeaRepo) GetByNumber(ctx context.Context, portfolioCode, productCode string, ideaNumber int) (*models.Idea, error) {
	for _, i := range f.ideas {
		if i.PortfolioCode == portfolioCode && i.ProductCode == productCode && i.IdeaNumber == ideaNumber {
			cp := *i
			return &cp, nil
		}
	}
	return nil, appErr.NotFound("idea")
}

type fakePortfolioRepo struct {
	portfolios map[string]*models.Portfolio
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{portfolios: map[string]*models.Portfolio{}}
}

func (f *fakePortfolioRepo) Create(ctx context.Context, p *models.Portfolio) error {
	if _, ok := f.portfolios[p.Code]; ok {
		return appErr.New(appErr.CodeConflict, "portfolio exists")
	}
	cp := *p
	f.portfolios[p.Code] = &cp
	return nil
}

func (f *fakePortfolioRepo) Update(ctx context.Context, p *models.Portfolio) error {
	cp := *p
	f.portfolios[p.Code] = &cp
	return nil
}

func (f *fakePortfolioRepo) GetByCode(ctx context.Context, code string) (*models.Portfolio, error) {
	p, ok := f.portfolios[code]
	if !ok {
		return nil, appErr.NotFound("portfolio")
	}
	cp := *p
	return &cp, nil
}

func (f *fakePortfolioRepo) List(ctx context.Context) ([]models.Portfolio, error) {
	var out []models.Portfolio
	for _, p := range f.portfolios {
		out = append(out, *p)
	}
	return out, nil
}

type fakeStudioRepo struct {
	users   map[string]*models.StudioUser
	studios map[uuid.UUID]*models.Studio
}

func (f *fakeStudioRepo) GetUserByEmail(ctx context.Context, email string) (*models.StudioUser, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, appErr.NotFound("studio user")
	}
	return u, nil
}

func (f *fakeStudioRepo) GetStudio(ctx context.Context, id uuid.UUID) (*models.Studio, error) {
	s, ok := f.studios[id]
	if !ok {
		return nil, appErr.NotFound("studio")
	}
	return s, nil
}

type fakeKBRepo struct {
	docs []*models.KBDocument
}

func (f *fakeKBRepo) Create(ctx context.Context, obj *models.KBDocument) error {
	obj.ID = uuid.New()
	cp := *obj
	f.docs = append(f.docs, &cp)
	return nil
}

func (f *fakeKBRepo) GetByID(ctx context.Context, id any, dest *models.KBDocument) error {
	for _, d := range f.docs {
		if d.ID == id {
			*dest = *d
			return nil
		}
	}
	return appErr.NotFound("kb document")
}

func (f *fakeKBRepo) Update(ctx context.Context, obj *models.KBDocument) error {
	for n, d := range f.docs {
		if d.ID == obj.ID {
			cp := *obj
			f.docs[n] = &cp
			return nil
		}
	}
	return appErr.NotFound("kb document")
}

func (f *fakeKBRepo) Delete(ctx context.Context, id any) error {
	for n, d := range f.docs {
		if d.ID == id {
			f.docs = append(f.docs[:n], f.docs[n+1:]...)
			return nil
		}
	}
	return appErr.NotFound("kb document")
}

func (f *fakeKBRepo) ListByProduct(ctx context.Context, portfolioCode, productCode string) ([]models.KBDocument, error) {
	var out []models.KBDocument
	for _, d := range f.docs {
		if d.PortfolioCode == portfolioCode && d.ProductCode == productCode {
			out = append(out, *d)
		}
	}
	return out, nil
}
