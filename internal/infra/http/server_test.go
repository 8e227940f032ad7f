package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeRecorder struct {
	called []string
}

func (r *routeRecorder) handle(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		r.called = append(r.called, name+" "+c.Param("trackId")+c.Param("todoId"))
		c.Status(http.StatusTeapot)
	}
}

type stubCatalog struct{ *routeRecorder }

func (s stubCatalog) Search(c *gin.Context) { s.handle("search")(c) }

type stubSongs struct{ *routeRecorder }

func (s stubSongs) List(c *gin.Context)   { s.handle("songs.list")(c) }
func (s stubSongs) Add(c *gin.Context)    { s.handle("songs.add")(c) }
func (s stubSongs) Delete(c *gin.Context) { s.handle("songs.delete")(c) }

type stubTodos struct{ *routeRecorder }

func (s stubTodos) List(c *gin.Context)                { s.handle("todos.list")(c) }
func (s stubTodos) Create(c *gin.Context)              { s.handle("todos.create")(c) }
func (s stubTodos) Update(c *gin.Context)              { s.handle("todos.update")(c) }
func (s stubTodos) Delete(c *gin.Context)              { s.handle("todos.delete")(c) }
func (s stubTodos) AttachmentUploadURL(c *gin.Context) { s.handle("todos.attachment")(c) }

var jwtSecret = []byte("test-secret")

func newTestServer(t *testing.T) (*Server, *routeRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := &routeRecorder{}
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"}))

	srv, err := New(
		NewConfig("1323", jwtSecret, true),
		registry,
		stubCatalog{recorder},
		stubSongs{recorder},
		stubTodos{recorder},
	)
	require.NoError(t, err)

	return srv, recorder
}

func bearer(t *testing.T) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "auth0|123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwtSecret)
	require.NoError(t, err)

	return "Bearer " + token
}

func TestNew_InvalidPort(t *testing.T) {
	_, err := New(NewConfig("http", jwtSecret, true), prometheus.NewRegistry(), nil, nil, nil)
	assert.Error(t, err)
}

func TestServer_Routes(t *testing.T) {
	srv, recorder := newTestServer(t)
	assert.Equal(t, "0.0.0.0:1323", srv.Addr)

	routes := []struct {
		method   string
		path     string
		expected string
	}{
		{http.MethodGet, "/searchSong?searchTerm=twice", "search "},
		{http.MethodGet, "/songs", "songs.list "},
		{http.MethodPost, "/songs", "songs.add "},
		{http.MethodDelete, "/songs/abc", "songs.delete abc"},
		{http.MethodGet, "/todos", "todos.list "},
		{http.MethodPost, "/todos", "todos.create "},
		{http.MethodPatch, "/todos/t1", "todos.update t1"},
		{http.MethodDelete, "/todos/t1", "todos.delete t1"},
		{http.MethodPost, "/todos/t1/attachment", "todos.attachment t1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			recorder.called = nil

			res := httptest.NewRecorder()
			req := httptest.NewRequest(route.method, route.path, nil)
			req.Header.Set("Authorization", bearer(t))
			srv.Handler.ServeHTTP(res, req)

			assert.Equal(t, http.StatusTeapot, res.Code)
			assert.Equal(t, []string{route.expected}, recorder.called)
			assert.Equal(t, "*", res.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestServer_RequiresAuthentication(t *testing.T) {
	srv, recorder := newTestServer(t)

	res := httptest.NewRecorder()
	srv.Handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/todos", nil))

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Empty(t, recorder.called)
}

func TestServer_PublicEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	res := httptest.NewRecorder()
	srv.Handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, res.Code)

	res = httptest.NewRecorder()
	srv.Handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, res.Code)
	assert.True(t, strings.Contains(res.Body.String(), "test_total 0"))
}
