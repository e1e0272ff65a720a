package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/soulsyync/soulsyync-api/internal/auth"
	"github.com/soulsyync/soulsyync-api/internal/config"
	"github.com/soulsyync/soulsyync-api/internal/httpresp"
	"github.com/soulsyync/soulsyync-api/internal/models"
	"github.com/soulsyync/soulsyync-api/internal/tokens"
)

const (
	ContextPrincipal   = "principal"
	ContextTokenID     = "tokenID"
	ContextTokenExpiry = "tokenExpiry"
)

// Principal returns the principal resolved by the auth middleware, or
// the anonymous principal when none was set.
func Principal(c *gin.Context) auth.Principal {
	if v, ok := c.Get(ContextPrincipal); ok {
		if p, ok := v.(auth.Principal); ok {
			return p
		}
	}
	return auth.Anonymous()
}

// Authenticate requires a valid, unrevoked bearer token and stores the
// resolved principal (plus the token's jti and expiry, for logout) in
// the request context.
func Authenticate(cfg *config.Config, revoker *tokens.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, jti, exp, err := resolve(c, cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httpresp.Envelope{Success: false, Message: "Unauthorized"})
			return
		}

		if revoker != nil && jti != "" {
			revoked, err := revoker.IsRevoked(c.Request.Context(), jti)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httpresp.Envelope{Success: false, Message: err.Error()})
				return
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					httpresp.Envelope{Success: false, Message: "Unauthorized"})
				return
			}
		}

		c.Set(ContextPrincipal, p)
		c.Set(ContextTokenID, jti)
		c.Set(ContextTokenExpiry, exp)
		c.Next()
	}
}

// AuthenticateOptional resolves a principal when a valid token is
// presented and proceeds anonymously otherwise. Used where anonymous
// access is allowed but ownership is recorded when known, e.g.
// testimonial submission.
func AuthenticateOptional(cfg *config.Config, revoker *tokens.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, jti, exp, err := resolve(c, cfg.JWTSecret)
		if err != nil {
			c.Next()
			return
		}

		if revoker != nil && jti != "" {
			if revoked, err := revoker.IsRevoked(c.Request.Context(), jti); err != nil || revoked {
				c.Next()
				return
			}
		}

		c.Set(ContextPrincipal, p)
		c.Set(ContextTokenID, jti)
		c.Set(ContextTokenExpiry, exp)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Principal(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				httpresp.Envelope{Success: false, Message: "Forbidden"})
			return
		}
		c.Next()
	}
}

func resolve(c *gin.Context, secret string) (auth.Principal, string, time.Time, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return auth.Anonymous(), "", time.Time{}, jwt.ErrTokenMalformed
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return auth.Anonymous(), "", time.Time{}, jwt.ErrTokenMalformed
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return auth.Anonymous(), "", time.Time{}, jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Anonymous(), "", time.Time{}, jwt.ErrTokenInvalidClaims
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return auth.Anonymous(), "", time.Time{}, jwt.ErrTokenInvalidClaims
	}
	role, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)

	var exp time.Time
	if e, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(e), 0)
	}

	p := auth.Principal{ID: uint(sub), Role: models.Role(role)}
	return p, jti, exp, nil
}
