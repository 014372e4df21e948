package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

var (
	ErrWhileCreatingToken   = errors.New("error while creating token")
	ErrUnexpectedSignMethod = errors.New("unexpected signing method")
	ErrInvalidToken         = errors.New("invalid access token")
)

// Port resolves the employee behind an access token. Tokens are issued by
// the surrounding HR application with the same secret.
type Port interface {
	NewToken(ctx context.Context, uid uuid.UUID, d time.Duration) (string, error)
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
}

type Core struct {
	secret []byte
	issuer string
}

type Claims struct {
	UID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

func New(conf config.Config) *Core {
	return &Core{secret: []byte(conf.Auth.JWT.Secret), issuer: conf.Auth.JWT.Issuer}
}

func (c *Core) NewToken(ctx context.Context, uid uuid.UUID, d time.Duration) (string, error) {
	const op = "auth.NewToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &Claims{
			UID: uid,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(d)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.secret)
	if err != nil {
		zap.L().Error(ErrWhileCreatingToken.Error(), zap.Error(err))
		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.secret, nil
		},
		jwt.WithIssuer(c.issuer),
	)
	if err != nil {
		zap.L().Debug("Failed to parse claims", zap.String("op", op), zap.Error(err))
		return claims, ErrInvalidToken
	}

	if !token.Valid || claims.UID == uuid.Nil {
		zap.L().Debug("Token is invalid", zap.String("op", op))
		return claims, ErrInvalidToken
	}

	return claims, nil
}
