package common

import (
	"context"

	"github.com/golang-jwt/jwt/v4"

	"github.com/eurofurence/reg-response-result/internal/logging"
)

type (
	CtxKeyAPIKey struct{}
	CtxKeyClaims struct{}
)

type GlobalClaims struct {
	Name  string   `json:"name"`
	EMail string   `json:"email"`
	Roles []string `json:"roles"`
}

type CustomClaims struct {
	Global GlobalClaims `json:"global"`
}

type AllClaims struct {
	jwt.RegisteredClaims
	CustomClaims
}

func GetRequestID(ctx context.Context) string {
	return logging.GetRequestID(ctx)
}

// GetClaims returns the claims of a validated JWT, or nil if the request was not made with one.
func GetClaims(ctx context.Context) *AllClaims {
	if claims, ok := ctx.Value(CtxKeyClaims{}).(*AllClaims); ok {
		return claims
	}
	return nil
}

// GetSubject names the caller of a request: the jwt subject, or "api-key" for
// requests authorized with the fixed token. Empty for unauthenticated requests.
func GetSubject(ctx context.Context) string {
	if claims := GetClaims(ctx); claims != nil {
		return claims.Subject
	}
	if _, ok := ctx.Value(CtxKeyAPIKey{}).(string); ok {
		return "api-key"
	}
	return ""
}
