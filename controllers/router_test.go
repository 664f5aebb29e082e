package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"webshop/catalog"
	"webshop/controllers"
	"webshop/repository"
	"webshop/routes"
	"webshop/services"
	"webshop/session"
)

// newTestServer wires the full router against the in-memory store.
func newTestServer(t *testing.T) (*gin.Engine, *repository.MemoryUserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	repo := repository.NewMemoryUserRepository()
	passwords := services.NewPasswordService()
	sessions := session.NewManager("test-secret", false)
	cat := catalog.New([]catalog.Product{
		{"name": "Ceramic Mug", "price": 12.5},
		{"name": "Linen Tote", "price": 24.0},
	})

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	routes.RegisterRoutes(r, routes.Controllers{
		Pages:   controllers.NewPageController(repo, cat, sessions, logger),
		Auth:    controllers.NewAuthController(services.NewAuthService(repo, passwords), sessions, logger),
		Profile: controllers.NewProfileController(repo, passwords, sessions, logger),
		Cart:    controllers.NewCartController(services.NewCartService(repo), sessions, logger),
	})
	return r, repo
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(t *testing.T, r *gin.Engine, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sessionCookies keeps only the newest Set-Cookie per name, the way a
// browser would.
func sessionCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	var order []string
	for _, ck := range w.Result().Cookies() {
		if _, seen := byName[ck.Name]; !seen {
			order = append(order, ck.Name)
		}
		byName[ck.Name] = ck
	}
	out := make([]*http.Cookie, 0, len(byName))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

// signupAndLogin registers a user and returns an authenticated cookie jar.
func signupAndLogin(t *testing.T, r *gin.Engine, username, email, password string) []*http.Cookie {
	t.Helper()

	w := postForm(t, r, "/signup", url.Values{
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/signup", w.Header().Get("Location"))

	w = postForm(t, r, "/login", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/profile", w.Header().Get("Location"))

	return sessionCookies(w)
}
