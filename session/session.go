// Package session wraps a gorilla cookie store with the small surface
// the handlers need: authenticated-email tracking, flash messages and
// the one-shot signup-success flag. All state lives in the cookie;
// nothing is kept server-side between requests.
package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	cookieName       = "webshop_session"
	keyLoggedIn      = "logged_in"
	keyEmail         = "email"
	keySignupSuccess = "success_exists"
)

// Flash is a one-shot notice consumed by the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Manager owns the cookie store. One instance is shared by all
// handlers; per-request state lives in the Context it hands out.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Context binds the store to a single request. A cookie that fails to
// decode yields a fresh anonymous session rather than an error.
func (m *Manager) Context(c *gin.Context) *Context {
	sess, _ := m.store.Get(c.Request, cookieName)
	return &Context{sess: sess, c: c}
}

// Context is the per-request session view threaded through handlers.
type Context struct {
	sess *sessions.Session
	c    *gin.Context
}

// Authenticate marks the session as logged in and binds it to email.
func (s *Context) Authenticate(email string) error {
	s.sess.Values[keyLoggedIn] = true
	s.sess.Values[keyEmail] = email
	return s.save()
}

// Deauthenticate records a failed login without touching flashes.
func (s *Context) Deauthenticate() error {
	s.sess.Values[keyLoggedIn] = false
	delete(s.sess.Values, keyEmail)
	return s.save()
}

func (s *Context) IsAuthenticated() bool {
	v, ok := s.sess.Values[keyLoggedIn].(bool)
	return ok && v
}

// Email returns the authenticated email, or ok=false for an anonymous
// session.
func (s *Context) Email() (string, bool) {
	if !s.IsAuthenticated() {
		return "", false
	}
	email, ok := s.sess.Values[keyEmail].(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// Clear discards every session attribute, flashes included. Clearing
// an anonymous session is fine.
func (s *Context) Clear() error {
	for k := range s.sess.Values {
		delete(s.sess.Values, k)
	}
	return s.save()
}

// Flash queues a one-shot notice for the next rendered page.
func (s *Context) Flash(kind, message string) error {
	s.sess.AddFlash(Flash{Kind: kind, Message: message})
	return s.save()
}

// Flashes drains and returns the queued notices.
func (s *Context) Flashes() []Flash {
	raw := s.sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	out := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if fl, ok := f.(Flash); ok {
			out = append(out, fl)
		}
	}
	_ = s.save()
	return out
}

// MarkSignupSuccess sets the read-once flag shown after the
// post-signup redirect.
func (s *Context) MarkSignupSuccess() error {
	s.sess.Values[keySignupSuccess] = true
	return s.save()
}

// PopSignupSuccess consumes the flag.
func (s *Context) PopSignupSuccess() bool {
	v, ok := s.sess.Values[keySignupSuccess].(bool)
	if !ok {
		return false
	}
	delete(s.sess.Values, keySignupSuccess)
	_ = s.save()
	return v
}

func (s *Context) save() error {
	return s.sess.Save(s.c.Request, s.c.Writer)
}
