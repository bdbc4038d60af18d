package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	RoleAdmin = "admin"
)

type callerKey struct{}

// Identity reads the caller set by the upstream gateway. Authentication happens there.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || id <= 0 {
			utils.WriteError(w, "missing or invalid "+HeaderUserID+" header", http.StatusUnauthorized)
			return
		}

		caller := entities.Caller{
			UserID:  id,
			IsAdmin: r.Header.Get(HeaderUserRole) == RoleAdmin,
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}

// AdminOnly must be mounted after Identity.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFrom(r.Context())
		if !ok || !caller.IsAdmin {
			utils.WriteError(w, "admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithCaller(ctx context.Context, c entities.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

func CallerFrom(ctx context.Context) (entities.Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(entities.Caller)
	return c, ok
}
