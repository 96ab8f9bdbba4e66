package mockapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
)

const (
	ctxKeyUserID   = "user_id"
	ctxKeyUserType = "user_type"

	tokenTTL = 12 * time.Hour
)

type tokenIssuer struct {
	secret []byte
}

func newTokenIssuer(secret string) *tokenIssuer {
	return &tokenIssuer{secret: []byte(secret)}
}

type claims struct {
	UserID   int64  `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.StandardClaims
}

func (t *tokenIssuer) issue(userID int64, userType string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		UserID:   userID,
		UserType: userType,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
		},
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *tokenIssuer) parse(raw string) (*claims, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(raw, &parsed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return &parsed, nil
}

func (svc *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == "" || raw == header {
			return constants.ErrUnauthorized
		}

		parsed, err := svc.tokens.parse(raw)
		if err != nil {
			return constants.ErrUnauthorized
		}

		ctx.Set(ctxKeyUserID, parsed.UserID)
		ctx.Set(ctxKeyUserType, parsed.UserType)
		return next(ctx)
	}
}

func (svc *Server) adminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if userType, _ := ctx.Get(ctxKeyUserType).(string); userType != constants.UserTypeAdmin {
			return constants.ErrAdminRequired
		}
		return next(ctx)
	}
}

func currentUserID(ctx echo.Context) int64 {
	id, _ := ctx.Get(ctxKeyUserID).(int64)
	return id
}
