package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/syedsartaj/travel-adventure/logger"
)

// recordingLogger captures the level of every emitted line.
type recordingLogger struct {
	levels []string
}

func (l *recordingLogger) Debug(args ...any) { l.levels = append(l.levels, "debug") }
func (l *recordingLogger) Info(args ...any)  { l.levels = append(l.levels, "info") }
func (l *recordingLogger) Warn(args ...any)  { l.levels = append(l.levels, "warn") }
func (l *recordingLogger) Error(args ...any) { l.levels = append(l.levels, "error") }
func (l *recordingLogger) Debugf(format string, args ...any) { l.Debug(fmt.Sprintf(format, args...)) }
func (l *recordingLogger) Infof(format string, args ...any)  { l.Info(fmt.Sprintf(format, args...)) }
func (l *recordingLogger) Warnf(format string, args ...any)  { l.Warn(fmt.Sprintf(format, args...)) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.Error(fmt.Sprintf(format, args...)) }

func TestRequestLoggingLevelFollowsStatus(t *testing.T) {
	rec := &recordingLogger{}
	prev := logger.Log
	logger.Log = rec
	t.Cleanup(func() { logger.Log = prev })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestTrace())
	r.Use(RequestLogging())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	for _, path := range []string{"/ok", "/missing", "/broken"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, []string{"info", "warn", "error"}, rec.levels)
}

func TestLogBySeverity(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "info"},
		{http.StatusCreated, "info"},
		{http.StatusBadRequest, "warn"},
		{http.StatusNotFound, "warn"},
		{http.StatusInternalServerError, "error"},
		{http.StatusServiceUnavailable, "error"},
	}

	for _, tt := range tests {
		rec := &recordingLogger{}
		prev := logger.Log
		logger.Log = rec
		logBySeverity(tt.status, "line", nil)
		logger.Log = prev

		assert.Equal(t, []string{tt.want}, rec.levels, "status %d", tt.status)
	}
}
