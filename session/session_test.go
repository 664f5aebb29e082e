package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, cookies []*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, w
}

func TestAuthenticateRoundTrip(t *testing.T) {
	m := NewManager("test-secret", false)

	// First request: log in.
	c, w := newTestContext(t, nil)
	sctx := m.Context(c)
	assert.False(t, sctx.IsAuthenticated())
	require.NoError(t, sctx.Authenticate("u@x.com"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Second request carrying the cookie sees the authenticated state.
	c2, _ := newTestContext(t, cookies)
	sctx2 := m.Context(c2)
	assert.True(t, sctx2.IsAuthenticated())
	email, ok := sctx2.Email()
	assert.True(t, ok)
	assert.Equal(t, "u@x.com", email)
}

func TestClearLogsOut(t *testing.T) {
	m := NewManager("test-secret", false)

	c, w := newTestContext(t, nil)
	require.NoError(t, m.Context(c).Authenticate("u@x.com"))

	c2, w2 := newTestContext(t, w.Result().Cookies())
	require.NoError(t, m.Context(c2).Clear())

	c3, _ := newTestContext(t, w2.Result().Cookies())
	sctx := m.Context(c3)
	assert.False(t, sctx.IsAuthenticated())
	_, ok := sctx.Email()
	assert.False(t, ok)
}

func TestClearOnAnonymousSession(t *testing.T) {
	m := NewManager("test-secret", false)

	c, _ := newTestContext(t, nil)
	sctx := m.Context(c)
	require.NoError(t, sctx.Clear(), "clearing a session that never existed succeeds")
	assert.False(t, sctx.IsAuthenticated())
}

func TestFlashesAreReadOnce(t *testing.T) {
	m := NewManager("test-secret", false)

	c, w := newTestContext(t, nil)
	require.NoError(t, m.Context(c).Flash("success", "Login successful"))

	c2, w2 := newTestContext(t, w.Result().Cookies())
	flashes := m.Context(c2).Flashes()
	require.Len(t, flashes, 1)
	assert.Equal(t, "success", flashes[0].Kind)
	assert.Equal(t, "Login successful", flashes[0].Message)

	c3, _ := newTestContext(t, w2.Result().Cookies())
	assert.Empty(t, m.Context(c3).Flashes(), "flashes are consumed by the first read")
}

func TestSignupSuccessFlagPopsOnce(t *testing.T) {
	m := NewManager("test-secret", false)

	c, w := newTestContext(t, nil)
	require.NoError(t, m.Context(c).MarkSignupSuccess())

	c2, w2 := newTestContext(t, w.Result().Cookies())
	assert.True(t, m.Context(c2).PopSignupSuccess())

	c3, _ := newTestContext(t, w2.Result().Cookies())
	assert.False(t, m.Context(c3).PopSignupSuccess(), "flag is one-shot")
}

func TestCorruptCookieYieldsAnonymousSession(t *testing.T) {
	m := NewManager("test-secret", false)

	c, _ := newTestContext(t, []*http.Cookie{{Name: "webshop_session", Value: "garbage"}})
	sctx := m.Context(c)
	assert.False(t, sctx.IsAuthenticated())
}
