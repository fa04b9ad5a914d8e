package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieStore is the get/set/delete surface the session gate and the
// login/logout handlers use. It hides the transport from them.
type CookieStore interface {
	Get(name string) (string, bool)
	Set(name, value string, maxAge time.Duration)
	Delete(name string)
}

type echoCookieStore struct {
	c      echo.Context
	secure bool
}

// NewEchoCookieStore adapts an echo request/response pair. Cookies are
// HTTP-only, SameSite=Lax and scoped to "/".
func NewEchoCookieStore(c echo.Context, secure bool) CookieStore {
	return &echoCookieStore{c: c, secure: secure}
}

func (s *echoCookieStore) Get(name string) (string, bool) {
	cookie, err := s.c.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (s *echoCookieStore) Set(name, value string, maxAge time.Duration) {
	s.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *echoCookieStore) Delete(name string) {
	s.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
