// Package services содержит вспомогательные сервисы адаптеров профилей.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	svc "profilefetch/internal/profile/ports/services"
	"profilefetch/pkg/logger"
)

const (
	methodServiceToken = "ServiceToken"

	msgIssuingToken = "issuing service token"

	//nolint:gosec
	errSigningToken = "error signing service token"
	//nolint:gosec
	errParsingToken = "error parsing service token"
)

// Ошибки сервиса токенов.
var (
	ErrEmptySecretKey   = errors.New("empty secret key")
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
	ErrInvalidToken     = errors.New("invalid service token")
)

// ServiceJWT выпускает HS256 токены для вызовов сервиса профилей.
type ServiceJWT struct {
	secretKey []byte
	issuer    string
	audience  string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT создает сервис токенов.
func NewJWT(secretKey, issuer, audience string, ttl time.Duration) svc.TokenService {
	return &ServiceJWT{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		ttl:       ttl,
		now:       time.Now,
	}
}

// ServiceToken возвращает подписанный токен с issuer в subject.
func (s *ServiceJWT) ServiceToken(ctx context.Context) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodServiceToken), zap.String("issuer", s.issuer))
	log.Debug(ctx, msgIssuingToken)

	if len(s.secretKey) == 0 {
		log.Error(ctx, errSigningToken, zap.Error(ErrEmptySecretKey))
		return "", fmt.Errorf("%s: %w", errSigningToken, ErrEmptySecretKey)
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   s.issuer,
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errSigningToken, err)
	}

	return token, nil
}

// ParseServiceToken проверяет токен, выпущенный ServiceToken, и возвращает его claims.
func ParseServiceToken(tokenString, secretKey, audience string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidAlgorithm
		}
		return []byte(secretKey), nil
	}, jwt.WithAudience(audience))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errParsingToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
