package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func findEntry(entries []observer.LoggedEntry, msg string) *observer.LoggedEntry {
	for i := range entries {
		if entries[i].Message == msg {
			return &entries[i]
		}
	}
	return nil
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		status    int
		wantLevel zapcore.Level
	}{
		{name: "success logs at info", status: http.StatusOK, wantLevel: zapcore.InfoLevel},
		{name: "client error logs at warn", status: http.StatusConflict, wantLevel: zapcore.WarnLevel},
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, recorded := observer.New(zapcore.DebugLevel)

			router := gin.New()
			router.Use(func(c *gin.Context) {
				c.Set(GinRequestIDKey, "req-42")
				c.Next()
			})
			router.Use(GinMiddleware(zap.New(core)))
			router.GET("/pokemons", func(c *gin.Context) {
				c.Status(tt.status)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/pokemons?limit=1", nil)
			router.ServeHTTP(w, req)

			entry := findEntry(recorded.All(), "HTTP Request")
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantLevel, entry.Level)

			fields := entry.ContextMap()
			assert.Equal(t, "req-42", fields["request_id"])
			assert.Equal(t, "/pokemons", fields["path"])
			assert.Equal(t, "limit=1", fields["query"])
			assert.Equal(t, int64(tt.status), fields["status"])
		})
	}
}

func TestGinMiddleware_PropagatesLoggerAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(GinRequestIDKey, "req-7")
		c.Next()
	})
	router.Use(GinMiddleware(zap.New(core)))

	var ctxRequestID string
	router.GET("/", func(c *gin.Context) {
		ctxRequestID = GetRequestID(c.Request.Context())
		GetGinLogger(c).Info("inside handler")
		FromContext(c.Request.Context()).Info("from request context")
		c.Status(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "req-7", ctxRequestID)
	for _, msg := range []string{"inside handler", "from request context"} {
		entry := findEntry(recorded.All(), msg)
		require.NotNil(t, entry, msg)
		assert.Equal(t, "req-7", entry.ContextMap()["request_id"])
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.ErrorLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("something broke")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_INTERNAL")
	require.NotNil(t, findEntry(recorded.All(), "Panic recovered"))
}

func TestGetGinLogger_DefaultsToNop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotNil(t, GetGinLogger(c))
}
