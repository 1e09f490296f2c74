package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rohits-web03/shopdrive/internal/utils"
)

type contextKey string

const ShopKey contextKey = "shop"

// ShopFromContext returns the tenant resolved by Auth, or "".
func ShopFromContext(ctx context.Context) string {
	shop, _ := ctx.Value(ShopKey).(string)
	return shop
}

// WithShop stores the tenant in ctx.
func WithShop(ctx context.Context, shop string) context.Context {
	return context.WithValue(ctx, ShopKey, shop)
}

// Auth verifies the HMAC-signed token from the "token" cookie or the
// Authorization header and puts its "shop" claim on the request context.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := bearerToken(r)
			if tokenStr == "" {
				unauthorized(w)
				return
			}

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				unauthorized(w)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w)
				return
			}

			shop, ok := claims["shop"].(string)
			if !ok || strings.TrimSpace(shop) == "" {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithShop(r.Context(), shop)))
		})
	}
}

// bearerToken prefers the cookie and falls back to "Authorization: Bearer".
func bearerToken(r *http.Request) string {
	if c, err := r.Cookie("token"); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
		Success: false,
		Message: "Unauthorized",
	})
}
