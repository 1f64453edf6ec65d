package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/routeburn/product-flow/internal/repository"
	appErr "github.com/routeburn/product-flow/pkg/errors"
	"github.com/routeburn/product-flow/pkg/logger"
	"github.com/routeburn/product-flow/pkg/utils"
	"go.uber.org/zap"
)

// AuthService implements the studio login gate. There are no passwords:
// membership is an email match against StudioUser records, and a successful
// match yields a signed session token carrying the studio's portfolio code.
type AuthService interface {
	Login(ctx context.Context, email string) (string, *Session, error)
}

// Session is the signed session payload.
type Session struct {
	Email         string
	StudioID      string
	PortfolioCode string
	ExpiresAt     time.Time
}

type authService struct {
	studios    repository.StudioRepository
	hmacSecret []byte
	ttl        time.Duration
}

func NewAuthService(studios repository.StudioRepository, secret []byte, ttl time.Duration) AuthService {
	return &authService{studios: studios, hmacSecret: secret, ttl: ttl}
}

var _ AuthService = (*authService)(nil)

func (s *authService) Login(ctx context.Context, email string) (string, *Session, error) {
	normalized := utils.NormalizeEmail(email)
	if normalized == "" {
		return "", nil, appErr.Validation("email")
	}

	user, err := s.studios.GetUserByEmail(ctx, normalized)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return "", nil, appErr.New(appErr.CodeUnauthorized, "email is not a studio member")
		}
		return "", nil, err
	}

	studio, err := s.studios.GetStudio(ctx, user.StudioID)
	if err != nil {
		return "", nil, err
	}

	sess := &Session{
		Email:         normalized,
		StudioID:      studio.ID.String(),
		PortfolioCode: studio.PortfolioCode,
		ExpiresAt:     time.Now().Add(s.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       sess.Email,
		"studio":    sess.StudioID,
		"portfolio": sess.PortfolioCode,
		"exp":       sess.ExpiresAt.Unix(),
	})
	signed, err := token.SignedString(s.hmacSecret)
	if err != nil {
		return "", nil, appErr.Wrap(err, appErr.CodeInternal, "sign session token")
	}

	logger.L().Info("studio login",
		zap.String("email", sess.Email),
		zap.String("portfolio_code", sess.PortfolioCode),
	)
	return signed, sess, nil
}

// ParseSession validates a session token and returns its payload. Expired or
// malformed tokens return unauthorized; callers treat that as logged out,
// never as a failure.
func ParseSession(tokenStr string, hmacSecret []byte) (*Session, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return hmacSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, appErr.New(appErr.CodeUnauthorized, "invalid session")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, appErr.New(appErr.CodeUnauthorized, "invalid session")
	}

	sess := &Session{}
	sess.Email, _ = claims["sub"].(string)
	sess.StudioID, _ = claims["studio"].(string)
	sess.PortfolioCode, _ = claims["portfolio"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sess.ExpiresAt = exp.Time
	}
	return sess, nil
}
