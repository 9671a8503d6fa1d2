package processor

import (
	"context"
	"errors"
	"fmt"
	"hive-server/internal/observability"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "hive-server"

// Roles carried in the token
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token expired")
	ErrFailedSignToken = errors.New("failed to sign token")
)

// AuthProcessor validates the bearer tokens issued by the Hive app
type AuthProcessor struct {
	jwtSecret string
	logger    *observability.Logger
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	Role           string           `json:"role"`
	Username       string           `json:"username"`
	FollowersCount *int             `json:"followers_count,omitempty"`
}

func (b *BaseClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *BaseClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *BaseClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *BaseClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *BaseClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *BaseClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}

// IsAdmin reports whether the token grants admin access
func (b BaseClaims) IsAdmin() bool {
	return b.Role == RoleAdmin
}

// TokenParams describes the identity a token vouches for. FollowersCount is
// the verified audience size of the user's account, when the issuer knows it.
type TokenParams struct {
	UserID         uuid.UUID
	Username       string
	Role           string
	FollowersCount *int
	TTL            time.Duration
}

// GenerateToken signs a token. Used by the admin token tool and tests.
func (p *AuthProcessor) GenerateToken(ctx context.Context, params TokenParams) (string, error) {
	now := time.Now()
	claims := &BaseClaims{
		ExpirationTime: jwt.NewNumericDate(now.Add(params.TTL)),
		IssuedAt:       jwt.NewNumericDate(now),
		Issuer:         tokenIssuer,
		Subject:        params.UserID.String(),
		Audience:       jwt.ClaimStrings{tokenIssuer},
		Role:           params.Role,
		Username:       params.Username,
		FollowersCount: params.FollowersCount,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedSignToken
	}
	return tokenString, nil
}

func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Info(ctx, "token expired")
			return BaseClaims{}, ErrExpiredToken
		}

		p.logger.WarnWithError(ctx, "failed to parse token", err)
		return BaseClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return BaseClaims{}, ErrInvalidJWTToken
	}

	claims, ok := t.Claims.(*BaseClaims)
	if !ok {
		return BaseClaims{}, ErrParseJWTToken
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return BaseClaims{}, ErrInvalidJWTToken
	}
	if claims.FollowersCount != nil && *claims.FollowersCount < 0 {
		return BaseClaims{}, ErrInvalidJWTToken
	}

	return *claims, nil
}
