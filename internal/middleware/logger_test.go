package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogger_LevelByStatus(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusCreated, wantLevel: "level=INFO"},
		{name: "client error", status: http.StatusConflict, wantLevel: "level=WARN"},
		{name: "server error", status: http.StatusServiceUnavailable, wantLevel: "level=ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			h := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			req := httptest.NewRequest(http.MethodPost, "/orders", nil)
			req.Header.Set(middleware.HeaderUserID, "3")
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Contains(t, buf.String(), tc.wantLevel)
			assert.Contains(t, buf.String(), "user_id=3")
		})
	}
}
