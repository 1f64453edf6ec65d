package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/routeburn/product-flow/internal/models"
	appErr "github.com/routeburn/product-flow/pkg/errors"
)

func newStudioFixture() *fakeStudioRepo {
	studioID := uuid.New()
	return &fakeStudioRepo{
		users: map[string]*models.StudioUser{
			"ana@studio.dev": {ID: uuid.New(), StudioID: studioID, Email: "ana@studio.dev", Role: "builder"},
		},
		studios: map[uuid.UUID]*models.Studio{
			studioID: {ID: studioID, Name: "North Studio", PortfolioCode: "north"},
		},
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc := NewAuthService(newStudioFixture(), []byte("test-secret-0123456789"), time.Hour)

	token, sess, err := svc.Login(context.Background(), "  ANA@Studio.DEV ")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if sess.Email != "ana@studio.dev" {
		t.Fatalf("session email = %q, want normalized form", sess.Email)
	}
	if sess.PortfolioCode != "north" {
		t.Fatalf("portfolio code = %q, want north", sess.PortfolioCode)
	}
}

func TestLoginRejectsNonMembers(t *testing.T) {
	svc := NewAuthService(newStudioFixture(), []byte("test-secret-0123456789"), time.Hour)

	_, _, err := svc.Login(context.Background(), "stranger@elsewhere.dev")
	if !appErr.IsCode(err, appErr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginRejectsEmptyEmail(t *testing.T) {
	svc := NewAuthService(newStudioFixture(), []byte("test-secret-0123456789"), time.Hour)

	_, _, err := svc.Login(context.Background(), "   ")
	if !appErr.IsCode(err, appErr.CodeInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	secret := []byte("test-secret-0123456789")
	svc := NewAuthService(newStudioFixture(), secret, time.Hour)

	token, sess, err := svc.Login(context.Background(), "ana@studio.dev")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	parsed, err := ParseSession(token, secret)
	if err != nil {
		t.Fatalf("parse session: %v", err)
	}
	if parsed.Email != sess.Email || parsed.PortfolioCode != sess.PortfolioCode || parsed.StudioID != sess.StudioID {
		t.Fatalf("parsed session %+v does not match issued %+v", parsed, sess)
	}
}

func TestParseSessionRejectsWrongSecret(t *testing.T) {
	svc := NewAuthService(newStudioFixture(), []byte("test-secret-0123456789"), time.Hour)

	token, _, err := svc.Login(context.Background(), "ana@studio.dev")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := ParseSession(token, []byte("another-secret-entirely")); !appErr.IsCode(err, appErr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestParseSessionRejectsExpiredToken(t *testing.T) {
	secret := []byte("test-secret-0123456789")
	svc := NewAuthService(newStudioFixture(), secret, -time.Minute)

	token, _, err := svc.Login(context.Background(), "ana@studio.dev")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := ParseSession(token, secret); !appErr.IsCode(err, appErr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for expired session, got %v", err)
	}
}
