package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arjun/regportal/internal/app/models"
	"github.com/arjun/regportal/internal/app/repositories"
)

const sessionContextKey = "regportal/session"

// SessionState is the per-request view of the session bag. Handlers read and
// mutate it; the middleware alone decides what happens to the backing row.
type SessionState struct {
	data models.SessionData
}

// EnrollmentNumber returns the authenticated enrollment number, if any.
func (s *SessionState) EnrollmentNumber() string {
	return s.data.EnrollmentNumber
}

// SetEnrollmentNumber marks the session as authenticated for an enrollment number.
func (s *SessionState) SetEnrollmentNumber(enrollmentNumber string) {
	s.data.EnrollmentNumber = enrollmentNumber
}

// IsAuthenticated reports whether the bag carries any state.
func (s *SessionState) IsAuthenticated() bool {
	return !s.data.IsEmpty()
}

// Clear empties the bag. The middleware interprets a cleared bag as "delete
// this session".
func (s *SessionState) Clear() {
	s.data = models.SessionData{}
}

// Session returns the request's session state. The session middleware must
// be installed on the route.
func Session(c *gin.Context) *SessionState {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		// Routes without the middleware see an inert, empty session.
		return &SessionState{}
	}
	return v.(*SessionState)
}

// SessionConfig configures the session middleware.
type SessionConfig struct {
	CookieName string
	// TTL drives both the session row expiry and the cookie max-age.
	TTL        time.Duration
	Production bool
}

// SessionMiddleware loads the session bag from a cookie-carried key before
// each handler runs and persists the outcome afterwards.
type SessionMiddleware struct {
	store  repositories.ISessionRepository
	config SessionConfig
	logger zerolog.Logger
}

// NewSessionMiddleware creates a new SessionMiddleware.
func NewSessionMiddleware(store repositories.ISessionRepository, config SessionConfig, logger zerolog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		store:  store,
		config: config,
		logger: logger,
	}
}

// Handler returns the gin middleware. On entry it resolves the cookie key to
// a non-expired session row (an unknown or expired key silently yields an
// empty bag). On exit it compares the bag against the entry snapshot:
// unchanged bags touch nothing, cleared bags delete the row and the cookie,
// any other change upserts the row and refreshes the cookie.
//
// The response is buffered so cookie headers can still be set after the
// handler has written its body.
func (m *SessionMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var sessionKey string
		state := &SessionState{}
		if cookie, err := c.Cookie(m.config.CookieName); err == nil && cookie != "" {
			sessionKey = cookie
			session, err := m.store.Load(ctx, sessionKey)
			if err != nil {
				m.logger.Error().Err(err).Msg("Failed to load session")
			} else if session != nil {
				state.data = session.Data
			}
		}
		initial := state.data

		c.Set(sessionContextKey, state)

		writer := &bufferedWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		defer writer.flush()

		c.Next()

		final := state.data
		if final == initial {
			return
		}

		if final.IsEmpty() {
			if sessionKey != "" {
				if err := m.store.Delete(ctx, sessionKey); err != nil {
					m.logger.Error().Err(err).Msg("Failed to delete session")
				}
				m.setCookie(c, "", -1)
			}
			return
		}

		key := sessionKey
		if key == "" {
			key = uuid.NewString()
		}

		session := &models.Session{
			Key:     key,
			Data:    final,
			Expires: time.Now().Add(m.config.TTL),
		}
		if err := m.store.Save(ctx, session); err != nil {
			m.logger.Error().Err(err).Msg("Failed to save session")
			return
		}

		m.setCookie(c, key, int(m.config.TTL/time.Second))
	}
}

func (m *SessionMiddleware) setCookie(c *gin.Context, value string, maxAge int) {
	if m.config.Production {
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(m.config.CookieName, value, maxAge, "/", "", true, true)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.config.CookieName, value, maxAge, "/", "", false, true)
}

// bufferedWriter holds back the response status and body until the middleware
// has finished its post-handler work.
type bufferedWriter struct {
	gin.ResponseWriter
	body   bytes.Buffer
	status int
}

func (w *bufferedWriter) WriteHeader(code int) {
	w.status = code
}

func (w *bufferedWriter) WriteHeaderNow() {}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

func (w *bufferedWriter) Status() int {
	if w.status != 0 {
		return w.status
	}
	return w.ResponseWriter.Status()
}

func (w *bufferedWriter) Size() int {
	return w.body.Len()
}

func (w *bufferedWriter) Written() bool {
	return w.status != 0 || w.body.Len() > 0
}

func (w *bufferedWriter) flush() {
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
	if w.body.Len() > 0 {
		_, _ = w.ResponseWriter.Write(w.body.Bytes())
	}
}
