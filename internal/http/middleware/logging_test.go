package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spendwise/expense-tracker/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingAnnotatesRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	wrapped := middleware.Logging(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/expenses", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/expenses", fields["path"])
	assert.NotEmpty(t, fields["request_id"])
	assert.Equal(t, int64(http.StatusCreated), fields["status_code"])
}
