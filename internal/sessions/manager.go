package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	// cookie that carries the signed session id
	CookieName = "vaidya_session"

	// gin context key the middleware stores the id under
	ContextKey = "session_id"

	idValueKey = "id"

	// 30 days
	cookieMaxAge = 30 * 24 * 3600
)

// issues and resolves anonymous session ids carried in a signed cookie
type Manager struct {
	store *sessions.CookieStore
}

// returns a manager signing cookies with secret; Secure is set when baseURL is https
func NewManager(secret, baseURL string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   strings.HasPrefix(baseURL, "https://"),
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store}
}

// returns a new random session ID
func GenerateSessionID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// returns the id from the request cookie, issuing a new one when absent or unreadable
func (m *Manager) GetOrCreateSessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := m.store.Get(r, CookieName)
	if err != nil {
		// tampered or stale-key cookies are treated as missing
		session = sessions.NewSession(m.store, CookieName)
		opts := *m.store.Options
		session.Options = &opts
		session.IsNew = true
	}

	if id, ok := session.Values[idValueKey].(string); ok && id != "" {
		return id, nil
	}

	id, err := GenerateSessionID()
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	session.Values[idValueKey] = id

	if err := session.Save(r, w); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSessionSave, err)
	}

	return id, nil
}

// resolves the session id for every request and stores it in the gin context
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := m.GetOrCreateSessionID(c.Writer, c.Request)
		if err != nil {
			c.Error(err) //nolint:errcheck,gosec // surfaced through gin's error list
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "failed to establish session",
				"code":  "server_error",
			})
			return
		}

		c.Set(ContextKey, id)
		c.Next()
	}
}

// reads the session id placed by Middleware
func ID(c *gin.Context) (string, error) {
	id := c.GetString(ContextKey)
	if id == "" {
		return "", ErrSessionNotFound
	}

	return id, nil
}
