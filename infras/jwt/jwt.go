package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"time"
	"todoapp/config"
	"todoapp/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// JWT issues and validates signed bearer tokens. Tokens are self-contained:
// validation needs only the signing secret, no server-side session state.
type JWT interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Validate(tokenString string) (subject string, err error)
	DefaultTTL() time.Duration
}

// Service signs tokens with a process-wide secret sourced from configuration.
type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// New creates a new JWT service from the injected configuration.
func New(cfg *config.Config) JWT {
	return &Service{
		secret: []byte(cfg.JWT.AccessSecret),
		ttl:    time.Duration(cfg.JWT.AccessExpireMin) * time.Minute,
		issuer: cfg.App.Name,
	}
}

// DefaultTTL returns the configured token lifetime.
func (s *Service) DefaultTTL() time.Duration {
	return s.ttl
}

// Issue builds a {sub, exp} claim set for the subject and signs it with
// HS256.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	now := timezone.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Validate verifies signature and expiry and returns the subject claim. Any
// failure (bad signature, expiry, malformed token, wrong algorithm, missing
// subject) yields an error and an empty subject, never partial data.
func (s *Service) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}

		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// ExtractTokenFromHeader extracts the bearer token from an Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	const prefix = "Bearer "
	if len(authHeader) < len(prefix) || authHeader[:len(prefix)] != prefix {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return authHeader[len(prefix):], nil
}
