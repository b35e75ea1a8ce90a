package auth

import (
	"strings"

	"clinicapi/cmd/internal/authz"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

type StaffClaims struct {
	Staff bool `json:"staff"`
	jwt.RegisteredClaims
}

// Middleware resolves the request's actor. A Bearer token signed with secret
// whose staff claim is true yields the staff actor; a missing, malformed or
// unsigned-claim token yields the public actor. Role resolution never fails
// the request — authorization happens per operation downstream.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(actorContextKey, resolveActor(c, secret))
			return next(c)
		}
	}
}

func resolveActor(c echo.Context, secret []byte) authz.Actor {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return authz.Public
	}

	var claims StaffClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid || !claims.Staff {
		return authz.Public
	}
	return authz.Staff
}

// ActorFromCtx returns the actor resolved by Middleware, defaulting to
// public when the middleware did not run.
func ActorFromCtx(c echo.Context) authz.Actor {
	if actor, ok := c.Get(actorContextKey).(authz.Actor); ok {
		return actor
	}
	return authz.Public
}
