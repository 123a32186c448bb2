package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arjun/regportal/internal/app/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeSessionRepository is an in-memory ISessionRepository with row expiry.
type fakeSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]*models.Session)}
}

func (f *fakeSessionRepository) Load(_ context.Context, key string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[key]
	if !ok || !session.Expires.After(time.Now()) {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepository) Save(_ context.Context, session *models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *session
	f.sessions[session.Key] = &copied
	return nil
}

func (f *fakeSessionRepository) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, key)
	return nil
}

func newSessionRouter(store *fakeSessionRepository, production bool) *gin.Engine {
	mw := NewSessionMiddleware(store, SessionConfig{
		CookieName: "session",
		TTL:        time.Hour,
		Production: production,
	}, zerolog.Nop())

	router := gin.New()
	router.Use(mw.Handler())
	router.POST("/login", func(c *gin.Context) {
		Session(c).SetEnrollmentNumber("GL1234")
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/logout", func(c *gin.Context) {
		Session(c).Clear()
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"enrollment_number": Session(c).EnrollmentNumber()})
	})
	return router
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session" {
			return cookie
		}
	}
	return nil
}

func TestSessionMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("issues a cookie when a handler mutates the session", func(t *testing.T) {
		t.Parallel()
		store := newFakeSessionRepository()
		router := newSessionRouter(store, false)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		require.Equal(t, http.StatusOK, w.Code)

		cookie := sessionCookie(t, w.Result())
		require.NotNil(t, cookie)
		require.NotEmpty(t, cookie.Value)
		require.Equal(t, int(time.Hour/time.Second), cookie.MaxAge)
		require.True(t, cookie.HttpOnly)
		require.False(t, cookie.Secure)

		session, err := store.Load(context.Background(), cookie.Value)
		require.NoError(t, err)
		require.NotNil(t, session)
		require.Equal(t, "GL1234", session.Data.EnrollmentNumber)
	})

	t.Run("leaves an untouched session alone", func(t *testing.T) {
		t.Parallel()
		store := newFakeSessionRepository()
		router := newSessionRouter(store, false)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Nil(t, sessionCookie(t, w.Result()))
		require.Empty(t, store.sessions)
	})

	t.Run("restores state on a follow-up request", func(t *testing.T) {
		t.Parallel()
		store := newFakeSessionRepository()
		router := newSessionRouter(store, false)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		cookie := sessionCookie(t, w.Result())
		require.NotNil(t, cookie)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(cookie)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "GL1234")
	})

	t.Run("clearing deletes the row and expires the cookie", func(t *testing.T) {
		t.Parallel()
		store := newFakeSessionRepository()
		router := newSessionRouter(store, false)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		cookie := sessionCookie(t, w.Result())
		require.NotNil(t, cookie)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.AddCookie(cookie)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		cleared := sessionCookie(t, w.Result())
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.Negative(t, cleared.MaxAge)
		require.Empty(t, store.sessions)
	})

	t.Run("an expired session row reads as anonymous", func(t *testing.T) {
		t.Parallel()
		store := newFakeSessionRepository()
		router := newSessionRouter(store, false)

		store.sessions["stale"] = &models.Session{
			Key:     "stale",
			Data:    models.SessionData{EnrollmentNumber: "GL1234"},
			Expires: time.Now().Add(-time.Minute),
		}

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "stale"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"enrollment_number":""`)
	})

	t.Run("an unknown cookie reads as anonymous", func(t *testing.T) {
		t.Parallel()
		store := newFakeSessionRepository()
		router := newSessionRouter(store, false)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "no-such-key"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"enrollment_number":""`)
	})

	t.Run("production cookies are secure and cross-site", func(t *testing.T) {
		t.Parallel()
		store := newFakeSessionRepository()
		router := newSessionRouter(store, true)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		cookie := sessionCookie(t, w.Result())
		require.NotNil(t, cookie)
		require.True(t, cookie.Secure)
		require.True(t, cookie.HttpOnly)
		require.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	})
}
