package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupCSRFRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	secret := []byte("test-secret-key-32-bytes-long!!!")
	router := gin.New()
	router.Use(CSRFMiddleware(secret, false))
	router.GET("/form", handler)
	router.POST("/form", handler)
	return router
}

func okHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func TestCSRFMiddleware_AllowsGET(t *testing.T) {
	router := setupCSRFRouter(okHandler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/form", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFMiddleware_BlocksPOSTWithoutToken(t *testing.T) {
	router := setupCSRFRouter(okHandler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/form", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Form submission expired")
}

func TestCSRFMiddleware_RejectedPOSTRedirectsBackToReferer(t *testing.T) {
	router := setupCSRFRouter(okHandler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/form", nil)
	req.Header.Set("Referer", "/add_author")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "/add_author")
	assert.Contains(t, location, "error=")
}

func TestCSRFMiddleware_SetsTokenInContext(t *testing.T) {
	var token string
	router := setupCSRFRouter(func(c *gin.Context) {
		token = GetCSRFToken(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/form", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, token)
}

func TestCSRFTokenField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty without a token", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		assert.Empty(t, CSRFTokenField(c))
	})

	t.Run("renders the hidden input", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("csrf_token", "token-123")

		field := CSRFTokenField(c)
		assert.Contains(t, field, `name="gorilla.csrf.Token"`)
		assert.Contains(t, field, `value="token-123"`)
	})
}
