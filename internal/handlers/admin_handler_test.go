package handlers

import (
	"encoding/gob"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio/internal/middlewares"
	"portfolio/internal/models"
	"portfolio/internal/services"
	"portfolio/internal/utils"
)

var adminTestSecret = []byte("admin-test-secret")

func newAdminRouter(t *testing.T, store *stubProjectStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gob.Register(models.Flash{})

	hash, err := utils.Hash("letmein")
	require.NoError(t, err)

	svc := services.NewProjectService(store, rejectAllImageStore{}, zap.NewNop())
	handler := NewAdminHandler(svc, string(hash), adminTestSecret, zap.NewNop())

	router := gin.New()
	router.Use(sessions.Sessions("portfolio_session", cookie.NewStore(adminTestSecret)))
	router.LoadHTMLGlob("../../web/templates/*.html")

	router.GET("/admin/login", handler.LoginForm)
	router.POST("/admin/login", handler.Login)
	router.GET("/admin/logout", handler.Logout)

	admin := router.Group("/admin")
	admin.Use(middlewares.AdminRequired(adminTestSecret))
	{
		admin.GET("", handler.Dashboard)
		admin.GET("/project/new", handler.NewProjectForm)
		admin.POST("/project/new", handler.CreateProject)
		admin.GET("/project/:id/edit", handler.EditProjectForm)
		admin.POST("/project/:id/edit", handler.UpdateProject)
		admin.POST("/project/:id/delete", handler.DeleteProject)
	}

	return router
}

func postForm(router *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)
	return w
}

// login authenticates against the test router and returns the session
// cookies of the logged-in admin.
func login(t *testing.T, router *gin.Engine) []*http.Cookie {
	t.Helper()

	w := postForm(router, "/admin/login", url.Values{"password": {"letmein"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/admin", w.Header().Get("Location"))
	return w.Result().Cookies()
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	store := &stubProjectStore{}
	router := newAdminRouter(t, store)

	w := postForm(router, "/admin/login", url.Values{"password": {"wrong"}}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	// The session cookie from a failed login must not open the gate.
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusFound, w2.Code)
}

func TestLoginThenDashboard(t *testing.T) {
	store := &stubProjectStore{projects: sampleProjects(2)}
	router := newAdminRouter(t, store)

	cookies := login(t, router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin Dashboard")
}

func TestLogoutClosesTheGate(t *testing.T) {
	store := &stubProjectStore{}
	router := newAdminRouter(t, store)

	cookies := login(t, router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range w.Result().Cookies() {
		req2.AddCookie(c)
	}
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusFound, w2.Code)
	assert.Equal(t, "/admin/login", w2.Header().Get("Location"))
}

func TestGatedMutationsRedirectWithoutSession(t *testing.T) {
	store := &stubProjectStore{projects: sampleProjects(1)}
	router := newAdminRouter(t, store)

	paths := []string{
		"/admin/project/new",
		"/admin/project/1/edit",
		"/admin/project/1/delete",
	}
	for _, path := range paths {
		w := postForm(router, path, url.Values{"title": {"x"}, "description": {"y"}}, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"), path)
	}

	assert.Zero(t, store.inserts, "gate must block writes")
	assert.Zero(t, store.updates)
	assert.Zero(t, store.deletes)
}

func TestCreateProjectRedirectsOnSuccess(t *testing.T) {
	store := &stubProjectStore{}
	router := newAdminRouter(t, store)
	cookies := login(t, router)

	form := url.Values{
		"title":       {"New Project"},
		"description": {"A description"},
		"link":        {""},
	}
	w := postForm(router, "/admin/project/new", form, cookies)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, 1, store.inserts)
}

func TestCreateProjectValidationRedisplaysForm(t *testing.T) {
	store := &stubProjectStore{}
	router := newAdminRouter(t, store)
	cookies := login(t, router)

	form := url.Values{
		"title":       {"   "},
		"description": {"Partial description"},
	}
	w := postForm(router, "/admin/project/new", form, cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Partial description", "submitted values come back for redisplay")
	assert.Zero(t, store.inserts)
}

func TestEditUnknownProjectIsNotFound(t *testing.T) {
	store := &stubProjectStore{}
	router := newAdminRouter(t, store)
	cookies := login(t, router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/project/77/edit", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUnknownProjectIsNotFound(t *testing.T) {
	store := &stubProjectStore{}
	router := newAdminRouter(t, store)
	cookies := login(t, router)

	w := postForm(router, "/admin/project/77/delete", url.Values{}, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProjectRedirects(t *testing.T) {
	store := &stubProjectStore{projects: sampleProjects(1)}
	router := newAdminRouter(t, store)
	cookies := login(t, router)

	w := postForm(router, "/admin/project/1/delete", url.Values{}, cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, 1, store.deletes)
}
