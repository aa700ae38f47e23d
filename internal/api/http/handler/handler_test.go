package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWelcome(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/", Welcome)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"WELCOME TO THE TEA SHOP!"}`, w.Body.String())
}

func TestOpenAPI(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/openapi.json", OpenAPI)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.1.0", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/token")
	assert.Contains(t, doc.Paths["/teas"], "post")
	assert.Contains(t, doc.Paths["/teas/{tea_id}"], "put")
	assert.Contains(t, doc.Paths["/teas/{tea_id}"], "delete")
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.NoRoute(NotFound)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/coffee", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String())
}
