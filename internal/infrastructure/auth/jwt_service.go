package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/you/streamsvc/domain"
)

type streamClaims struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey string, issuer string, ttl time.Duration) domain.TokenService {
	return NewJWTServiceWithClock(secretKey, issuer, ttl, time.Now)
}

// NewJWTServiceWithClock creates a JWT service reading time from now
func NewJWTServiceWithClock(secretKey string, issuer string, ttl time.Duration, now func() time.Time) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		now:       now,
	}
}

// Issue implements domain.TokenService
func (j *JWTServiceImpl) Issue(claims *domain.TokenClaims) (string, error) {
	now := j.now()
	expiresAt := now.Add(j.ttl)

	claims.TokenID = uuid.NewString()
	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = expiresAt.Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, streamClaims{
		Email: claims.Email,
		Phone: claims.Phone,
		Role:  claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			Issuer:    j.issuer,
			ID:        claims.TokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	return token.SignedString(j.secretKey)
}

// Verify implements domain.TokenService
func (j *JWTServiceImpl) Verify(tokenString string) (*domain.TokenClaims, error) {
	parsed := &streamClaims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid || parsed.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}

	claims := &domain.TokenClaims{
		UserID:    parsed.Subject,
		Email:     parsed.Email,
		Phone:     parsed.Phone,
		Role:      parsed.Role,
		TokenID:   parsed.ID,
		ExpiresAt: parsed.ExpiresAt.Unix(),
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Unix()
	}
	return claims, nil
}
