package flash_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlMamunFarhad/job-portal/internal/flash"
)

func TestSetTake(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/set", func(c *gin.Context) {
		flash.Set(c, "success", "Profile updated successfully.")
		c.Status(http.StatusOK)
	})
	router.GET("/take", func(c *gin.Context) {
		kind, message, ok := flash.Take(c)
		c.JSON(http.StatusOK, gin.H{"kind": kind, "message": message, "ok": ok})
	})

	// Setting leaves a cookie behind.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/set", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	// Taking returns the message and expires the cookie.
	req := httptest.NewRequest(http.MethodGet, "/take", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), "Profile updated successfully.")
	assert.Contains(t, w.Body.String(), `"ok":true`)
	cleared := w.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)

	// A second read without the cookie finds nothing.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/take", nil))
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestTakeMalformedCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/take", func(c *gin.Context) {
		kind, message, found := flash.Take(c)
		c.JSON(http.StatusOK, gin.H{"kind": kind, "message": message, "ok": found})
	})

	req := httptest.NewRequest(http.MethodGet, "/take", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: url.QueryEscape("no-separator")})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}
