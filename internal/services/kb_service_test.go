package services

import (
	"context"
	"reflect"
	"testing"

	appErr "github.com/routeburn/product-flow/pkg/errors"
)

func TestCreateKBReportsBothMissingFields(t *testing.T) {
	svc := NewKBService(&fakeKBRepo{})

	_, err := svc.Create(context.Background(), &CreateKBInput{PortfolioCode: "pf", ProductCode: "pc"})
	if !appErr.IsCode(err, appErr.CodeInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
	if fields := appErr.ValidationFields(err); !reflect.DeepEqual(fields, []string{"title", "content"}) {
		t.Fatalf("fields = %v, want [title content]", fields)
	}
}

func TestCreateKBTrimsTitleKeepsContent(t *testing.T) {
	svc := NewKBService(&fakeKBRepo{})

	doc, err := svc.Create(context.Background(), &CreateKBInput{
		Title:         "  Pricing notes  ",
		Content:       "line one\n\nline two\n",
		PortfolioCode: "pf",
		ProductCode:   "pc",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if doc.Title != "Pricing notes" {
		t.Fatalf("title = %q, want trimmed", doc.Title)
	}
	if doc.Content != "line one\n\nline two\n" {
		t.Fatalf("content was altered: %q", doc.Content)
	}
}

func TestUpdateKBRejectsEmptyingFields(t *testing.T) {
	repo := &fakeKBRepo{}
	svc := NewKBService(repo)

	doc, err := svc.Create(context.Background(), &CreateKBInput{
		Title: "Notes", Content: "body", PortfolioCode: "pf", ProductCode: "pc",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	blank := "   "
	_, err = svc.Update(context.Background(), doc.ID, &UpdateKBInput{Title: &blank, Content: &blank})
	if !appErr.IsCode(err, appErr.CodeInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
	if fields := appErr.ValidationFields(err); !reflect.DeepEqual(fields, []string{"title", "content"}) {
		t.Fatalf("fields = %v, want [title content]", fields)
	}
}

func TestUpdateKBPatchesOnlyGivenFields(t *testing.T) {
	repo := &fakeKBRepo{}
	svc := NewKBService(repo)

	doc, err := svc.Create(context.Background(), &CreateKBInput{
		Title: "Notes", Content: "body", PortfolioCode: "pf", ProductCode: "pc",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Notes v2"
	updated, err := svc.Update(context.Background(), doc.ID, &UpdateKBInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Notes v2" || updated.Content != "body" {
		t.Fatalf("unexpected patch result: %+v", updated)
	}
}

func TestDeleteKBThenGetIsNotFound(t *testing.T) {
	repo := &fakeKBRepo{}
	svc := NewKBService(repo)

	doc, err := svc.Create(context.Background(), &CreateKBInput{
		Title: "Notes", Content: "body", PortfolioCode: "pf", ProductCode: "pc",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), doc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), doc.ID); !appErr.IsCode(err, appErr.CodeNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
