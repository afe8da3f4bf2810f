package selection

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-hub/portfolio-backend/internal/notify"
)

func setupHTTP(t *testing.T) (*gin.Engine, *Store, *notify.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewStore()
	toasts := notify.NewStore()
	t.Cleanup(toasts.Close)

	router := gin.New()
	NewHandler(store, toasts).Register(router.Group("/api/v1/selection"))
	return router, store, toasts
}

func do(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if payload != nil {
		body, _ := json.Marshal(payload)
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

type selResp struct {
	OK        bool  `json:"ok"`
	Selection State `json:"selection"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) selResp {
	t.Helper()
	var body selResp
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestOpenSelection(t *testing.T) {
	router, store, toasts := setupHTTP(t)

	rr := do(router, "PUT", "/api/v1/selection", map[string]string{"projectId": "42"})
	require.Equal(t, http.StatusOK, rr.Code)

	body := decode(t, rr)
	assert.True(t, body.Selection.Open)
	assert.Equal(t, "42", body.Selection.ProjectID)
	assert.Equal(t, State{Open: true, ProjectID: "42"}, store.Selected())

	items := toasts.List()
	require.Len(t, items, 1)
	assert.Equal(t, notify.KindInfo, items[0].Kind)
	assert.Equal(t, "Project details loaded", items[0].Message)
}

func TestOpenSelection_ReplacesPrevious(t *testing.T) {
	router, store, _ := setupHTTP(t)

	do(router, "PUT", "/api/v1/selection", map[string]string{"projectId": "a"})
	do(router, "PUT", "/api/v1/selection", map[string]string{"projectId": "b"})

	assert.Equal(t, State{Open: true, ProjectID: "b"}, store.Selected())
}

func TestOpenSelection_InvalidBody(t *testing.T) {
	router, _, _ := setupHTTP(t)

	rr := do(router, "PUT", "/api/v1/selection", map[string]string{"projectId": "  "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCloseSelection(t *testing.T) {
	router, store, _ := setupHTTP(t)
	store.Open("42")

	rr := do(router, "DELETE", "/api/v1/selection", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, State{}, store.Selected())
}

func TestToggleSelection(t *testing.T) {
	router, store, _ := setupHTTP(t)
	store.Open("42")

	rr := do(router, "POST", "/api/v1/selection/toggle", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decode(t, rr)
	assert.False(t, body.Selection.Open)
	assert.Equal(t, "42", body.Selection.ProjectID)
}

func TestGetSelection(t *testing.T) {
	router, store, _ := setupHTTP(t)
	store.Open("42")

	rr := do(router, "GET", "/api/v1/selection", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decode(t, rr)
	assert.Equal(t, State{Open: true, ProjectID: "42"}, body.Selection)
}
