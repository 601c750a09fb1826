// Package session stores the per-user conversation buffer of an in-progress wizard.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned when a user has no live conversation buffer.
var ErrNoSession = errors.New("no active session")

// DefaultTTL is how long an idle buffer survives.
const DefaultTTL = 30 * time.Minute

// Session is the in-progress state of one wizard for one user.
type Session struct {
	UserID    int64             `json:"user_id"`
	Wizard    string            `json:"wizard"`
	Step      int               `json:"step"`
	Fields    map[string]string `json:"fields"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// New starts an empty buffer for wizard.
func New(userID int64, wizard string) *Session {
	return &Session{
		UserID: userID,
		Wizard: wizard,
		Fields: map[string]string{},
	}
}

// Clone returns a deep copy so callers can mutate without touching the store.
func (s *Session) Clone() *Session {
	c := *s
	c.Fields = make(map[string]string, len(s.Fields))
	for k, v := range s.Fields {
		c.Fields[k] = v
	}
	return &c
}

// Store keeps conversation buffers keyed by user id.
type Store interface {
	Get(ctx context.Context, userID int64) (*Session, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, userID int64) error
}
