package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/routeburn/product-flow/internal/models"
	appErr "github.com/routeburn/product-flow/pkg/errors"
)

func TestCreatePortfolioReportsAllMissingFields(t *testing.T) {
	svc := NewPortfolioService(newFakePortfolioRepo())

	_, err := svc.Create(context.Background(), &CreatePortfolioInput{OrganizationName: "Org"})
	if !appErr.IsCode(err, appErr.CodeInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
	if fields := appErr.ValidationFields(err); !reflect.DeepEqual(fields, []string{"code", "name"}) {
		t.Fatalf("fields = %v, want [code name]", fields)
	}
}

func TestCreatePortfolioRejectsUnsafeCode(t *testing.T) {
	svc := NewPortfolioService(newFakePortfolioRepo())

	_, err := svc.Create(context.Background(), &CreatePortfolioInput{
		Code:             "Main Portfolio",
		OrganizationName: "Org",
		Name:             "Main",
	})
	if !appErr.IsCode(err, appErr.CodeInvalid) {
		t.Fatalf("expected invalid for unsafe code, got %v", err)
	}
}

func TestCreatePortfolioStartsEmpty(t *testing.T) {
	svc := NewPortfolioService(newFakePortfolioRepo())

	p, err := svc.Create(context.Background(), &CreatePortfolioInput{
		Code:             "north",
		OrganizationName: "Org",
		Name:             "North",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(p.ParseProducts()) != 0 {
		t.Fatalf("new portfolio has products: %v", p.ParseProducts())
	}
	if len(p.Owners) != 0 {
		t.Fatalf("new portfolio has owners: %v", p.Owners)
	}
}

func TestAddProductAppendsAndRejectsDuplicates(t *testing.T) {
	repo := newFakePortfolioRepo()
	svc := NewPortfolioService(repo)

	if _, err := svc.Create(context.Background(), &CreatePortfolioInput{
		Code: "north", OrganizationName: "Org", Name: "North",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	p, err := svc.AddProduct(context.Background(), "north", models.Product{Code: "app", Name: "App"})
	if err != nil {
		t.Fatalf("add product: %v", err)
	}
	if got := p.ParseProducts(); len(got) != 1 || got[0].Code != "app" {
		t.Fatalf("products = %v, want [app]", got)
	}

	_, err = svc.AddProduct(context.Background(), "north", models.Product{Code: "app", Name: "App Again"})
	if !appErr.IsCode(err, appErr.CodeConflict) {
		t.Fatalf("expected conflict for duplicate product code, got %v", err)
	}
}

func TestAddProductUnknownPortfolio(t *testing.T) {
	svc := NewPortfolioService(newFakePortfolioRepo())

	_, err := svc.AddProduct(context.Background(), "nowhere", models.Product{Code: "app", Name: "App"})
	if !appErr.IsCode(err, appErr.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddOwnerIsIdempotent(t *testing.T) {
	repo := newFakePortfolioRepo()
	svc := NewPortfolioService(repo)

	if _, err := svc.Create(context.Background(), &CreatePortfolioInput{
		Code: "north", OrganizationName: "Org", Name: "North",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.AddOwner(context.Background(), "north", "Ana@Studio.DEV"); err != nil {
		t.Fatalf("add owner: %v", err)
	}
	p, err := svc.AddOwner(context.Background(), "north", "ana@studio.dev")
	if err != nil {
		t.Fatalf("second add owner: %v", err)
	}
	if len(p.Owners) != 1 || p.Owners[0] != "ana@studio.dev" {
		t.Fatalf("owners = %v, want single normalized entry", p.Owners)
	}
}
