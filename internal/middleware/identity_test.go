package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	testCases := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
		wantCaller entities.Caller
	}{
		{name: "user", userID: "5", wantStatus: http.StatusOK, wantCaller: entities.Caller{UserID: 5}},
		{name: "admin", userID: "7", role: "admin", wantStatus: http.StatusOK, wantCaller: entities.Caller{UserID: 7, IsAdmin: true}},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not a number", userID: "abc", wantStatus: http.StatusUnauthorized},
		{name: "negative", userID: "-1", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got entities.Caller
			h := middleware.Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = middleware.CallerFrom(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.userID != "" {
				req.Header.Set(middleware.HeaderUserID, tc.userID)
			}
			if tc.role != "" {
				req.Header.Set(middleware.HeaderUserRole, tc.role)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantCaller, got)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	h := middleware.Identity(middleware.AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderUserID, "1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	req.Header.Set(middleware.HeaderUserRole, "admin")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
