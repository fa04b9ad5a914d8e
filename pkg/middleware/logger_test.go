package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitness-center/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger(zap.NewNop()))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, utils.GetRequestIDFromContext(c.Request().Context()))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(echo.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "given-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "given-id", rec.Body.String())
}
