package prefs

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHTTP(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	store := NewThemeStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	router := gin.New()
	NewHandler(store).Register(router.Group("/api/v1/prefs"))
	return router
}

func getTheme(t *testing.T, router *gin.Engine) (int, string) {
	t.Helper()
	req, _ := http.NewRequest("GET", "/api/v1/prefs/theme", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var body struct {
		Theme string `json:"theme"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return rr.Code, body.Theme
}

func putTheme(router *gin.Engine, theme string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"theme": theme})
	req, _ := http.NewRequest("PUT", "/api/v1/prefs/theme", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestGetTheme_Default(t *testing.T) {
	router := setupHTTP(t)

	code, theme := getTheme(t, router)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, ThemeLight, theme)
}

func TestPutTheme_RoundTrip(t *testing.T) {
	router := setupHTTP(t)

	rr := putTheme(router, ThemeDark)
	require.Equal(t, http.StatusOK, rr.Code)

	code, theme := getTheme(t, router)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, ThemeDark, theme)
}

func TestPutTheme_Invalid(t *testing.T) {
	router := setupHTTP(t)

	rr := putTheme(router, "sepia")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	_, theme := getTheme(t, router)
	assert.Equal(t, ThemeLight, theme)
}
