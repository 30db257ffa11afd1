// Package session provides SQLite-backed browser sessions and the one-shot
// status messages ("flashes") shown after mutating operations.
package session

import (
	"crypto/rand"
	"database/sql"
	"encoding/gob"
	"encoding/hex"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/mrlokans/library/internal/config"
)

const sessionKeyMessages = "status_messages"

// Severity classifies a status message for rendering.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Message is a transient (severity, text) notification shown once to the user
// on the next rendered page.
type Message struct {
	Severity Severity
	Text     string
}

func init() {
	// Messages are stored in the session as a gob-encoded slice.
	gob.Register([]Message{})
}

// Manager wraps scs.SessionManager with the flash-message methods the
// controllers use.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a configured session manager backed by the given SQL
// database. The sqlDB parameter should be the underlying *sql.DB from GORM.
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = cfg.Lifetime

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// Flash appends a status message to the pending list for this session.
func (m *Manager) Flash(r *http.Request, severity Severity, text string) {
	messages, _ := m.Get(r.Context(), sessionKeyMessages).([]Message)
	messages = append(messages, Message{Severity: severity, Text: text})
	m.Put(r.Context(), sessionKeyMessages, messages)
}

// Success flashes a success-severity message.
func (m *Manager) Success(r *http.Request, text string) {
	m.Flash(r, SeveritySuccess, text)
}

// Error flashes an error-severity message.
func (m *Manager) Error(r *http.Request, text string) {
	m.Flash(r, SeverityError, text)
}

// PopMessages returns all pending messages and clears them, so each message
// is rendered exactly once.
func (m *Manager) PopMessages(r *http.Request) []Message {
	messages, _ := m.Pop(r.Context(), sessionKeyMessages).([]Message)
	return messages
}

// GenerateSecret returns a hex-encoded 32-byte random secret, used for CSRF
// protection when none is configured.
func GenerateSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
