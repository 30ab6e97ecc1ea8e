// Package session remembers how each mind map was last viewed.
//
// The terminal viewer saves its camera (zoom, pan, rotation and display
// toggles) when it exits and restores it the next time the same document is
// opened. Sessions are keyed by the document's absolute path and expire
// after [DefaultTTL] without use.
//
//	store, err := session.NewFileStore("") // $XDG_STATE_HOME/radialmap/sessions
//	sess, err := store.Get(ctx, session.IDFor(path))
//	if sess != nil {
//	    state = sess.View
//	}
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"path/filepath"
	"time"

	"github.com/matzehuels/radialmap/pkg/view"
)

// ErrInvalidID is returned for IDs that cannot name a session file.
var ErrInvalidID = errors.New("invalid session id")

// DefaultTTL is how long an unused session is kept.
const DefaultTTL = 30 * 24 * time.Hour

// Session is the saved view of one document.
type Session struct {
	ID        string     `json:"id"`
	Document  string     `json:"document"`
	View      view.State `json:"view"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store is the interface for session storage backends.
type Store interface {
	// Get returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, id string) (*Session, error)
	Set(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}

// IDFor derives the session ID of a document path.
func IDFor(document string) string {
	if abs, err := filepath.Abs(document); err == nil {
		document = abs
	}
	sum := sha256.Sum256([]byte(document))
	return hex.EncodeToString(sum[:16])
}

// New creates a session for document holding s. The drag state of s is not
// kept.
func New(document string, s view.State, ttl time.Duration) *Session {
	now := time.Now()
	s.EndDrag()
	return &Session{
		ID:        IDFor(document),
		Document:  document,
		View:      s,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
