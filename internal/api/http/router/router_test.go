package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	httpctx "github.com/dtroode/teashop-server/internal/api/http/context"
	"github.com/dtroode/teashop-server/internal/config"
	"github.com/dtroode/teashop-server/internal/model"
	"github.com/dtroode/teashop-server/internal/password"
	"github.com/dtroode/teashop-server/internal/repository"
	"github.com/dtroode/teashop-server/internal/service"
	"github.com/dtroode/teashop-server/internal/testutil"
	"github.com/dtroode/teashop-server/internal/token"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type shop struct {
	engine *gin.Engine
	teas   model.TeaStore
}

// newShop wires the real stack over a fresh SQLite file with the default
// account seeded. clock is read on every token operation.
func newShop(t *testing.T, clock *time.Time) *shop {
	t.Helper()
	ctx := context.Background()
	log := testutil.MakeNoopLogger()

	stores, err := repository.Open(ctx, config.DriverSQLite, filepath.Join(t.TempDir(), "teashop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.Close() })

	hasher, err := password.NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	jwt := token.NewJWT(testSecret, token.WithClock(func() time.Time { return *clock }))
	authService := service.NewAuth(stores.Users, hasher, jwt, log)
	created, err := authService.EnsureDefaultUser(ctx, "admin", "password")
	require.NoError(t, err)
	require.True(t, created)

	teaService := service.NewTea(stores.Teas, log)
	r := New(authService, teaService, httpctx.NewManager(), log)

	return &shop{engine: r.Register(), teas: stores.Teas}
}

func (s *shop) do(t *testing.T, method, target, bearer, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *shop) login(t *testing.T) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/token?username=admin&password=password", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestRouter_TeaLifecycle(t *testing.T) {
	clock := time.Now()
	s := newShop(t, &clock)

	tok := s.login(t)

	w := s.do(t, http.MethodPost, "/teas", tok, `{"name":"Earl Grey","origin":"England"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Earl Grey","origin":"England"}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/teas", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Earl Grey","origin":"England"}]`, w.Body.String())

	w = s.do(t, http.MethodPut, "/teas/1", tok, `{"name":"Earl Grey Supreme","origin":"England"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Earl Grey Supreme","origin":"England"}`, w.Body.String())

	w = s.do(t, http.MethodDelete, "/teas/1", tok, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Tea with id 1 deleted"}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/teas", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(t, http.MethodPut, "/teas/1", tok, `{"name":"x","origin":"y"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Tea not found"}`, w.Body.String())

	w = s.do(t, http.MethodDelete, "/teas/1", tok, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_MutationsRequireToken(t *testing.T) {
	clock := time.Now()
	s := newShop(t, &clock)

	tests := []struct {
		method, target, body string
	}{
		{http.MethodPost, "/teas", `{"name":"Earl Grey","origin":"England"}`},
		{http.MethodPut, "/teas/1", `{"name":"x","origin":"y"}`},
		{http.MethodDelete, "/teas/1", ""},
	}

	for _, tt := range tests {
		w := s.do(t, tt.method, tt.target, "", tt.body)
		assert.Equal(t, http.StatusUnauthorized, w.Code, tt.method)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"), tt.method)
	}

	teas, err := s.teas.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, teas)
}

func TestRouter_UnauthorizedBeforeValidation(t *testing.T) {
	clock := time.Now()
	s := newShop(t, &clock)

	w := s.do(t, http.MethodPost, "/teas", "", `{"name":"missing origin"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_WrongPassword(t *testing.T) {
	clock := time.Now()
	s := newShop(t, &clock)

	for _, target := range []string{
		"/token?username=admin&password=wrong",
		"/token?username=nobody&password=password",
	} {
		w := s.do(t, http.MethodPost, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
		assert.JSONEq(t, `{"detail":"Incorrect username or password"}`, w.Body.String(), target)
	}
}

func TestRouter_ExpiredToken(t *testing.T) {
	clock := time.Now()
	s := newShop(t, &clock)

	tok := s.login(t)
	clock = clock.Add(token.DefaultTTL)

	w := s.do(t, http.MethodPost, "/teas", tok, `{"name":"Earl Grey","origin":"England"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Token has expired"}`, w.Body.String())
}

func TestRouter_ForeignToken(t *testing.T) {
	clock := time.Now()
	s := newShop(t, &clock)

	forged, _, err := token.NewJWT("other-secret").Generate("admin")
	require.NoError(t, err)

	w := s.do(t, http.MethodPost, "/teas", forged, `{"name":"Earl Grey","origin":"England"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid token"}`, w.Body.String())
}

func TestRouter_TokenForUnknownUser(t *testing.T) {
	clock := time.Now()
	s := newShop(t, &clock)

	ghost, _, err := token.NewJWT(testSecret).Generate("ghost")
	require.NoError(t, err)

	w := s.do(t, http.MethodPost, "/teas", ghost, `{"name":"Earl Grey","origin":"England"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"User not found"}`, w.Body.String())
}

func TestRouter_PublicRoutes(t *testing.T) {
	clock := time.Now()
	s := newShop(t, &clock)

	w := s.do(t, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"WELCOME TO THE TEA SHOP!"}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/openapi.json", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_IDsNotReused(t *testing.T) {
	clock := time.Now()
	s := newShop(t, &clock)
	tok := s.login(t)

	w := s.do(t, http.MethodPost, "/teas", tok, `{"name":"Earl Grey","origin":"England"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodDelete, "/teas/1", tok, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/teas", tok, `{"name":"Sencha","origin":"Japan"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":2,"name":"Sencha","origin":"Japan"}`, w.Body.String())
}
