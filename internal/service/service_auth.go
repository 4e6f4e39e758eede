package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avelarde/climatask/internal/config"
	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified content of a bearer token.
type Claims struct {
	UserID int64
}

// authService is the concrete implementation of [AuthService]. Tokens are
// HMAC-SHA256 JWTs carrying the issuer, the user id as subject, and an
// expiry derived from the configured duration.
type authService struct {
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	logger        *logger.Logger
}

// NewAuthService constructs an [AuthService] from the auth configuration.
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (string, error) {
	log := logger.FromContext(ctx)

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    a.tokenIssuer,
		Subject:   strconv.FormatInt(user.ID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.tokenSignKey))
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("signing token failed")
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks the signature, issuer, and expiry of signedToken and
// extracts the user id from the subject claim. Any failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (a *authService) VerifyToken(signedToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(signedToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.tokenSignKey), nil
	}, jwt.WithIssuer(a.tokenIssuer))
	if err != nil || !token.Valid {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	return &Claims{UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
