package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskfuse/site-api/pkg/logger"
)

// Admin credentials are static configuration, deliberately not read from
// the environment: there is a single operator and no rotation story.
const (
	adminUsername = "admin"
	adminPassword = "password120"
)

// sessionTTL bounds how long a token stays valid, so the token table
// cannot grow without limit under repeated logins.
const sessionTTL = 12 * time.Hour

// SessionGate holds admin sessions in process memory only. A restart
// logs everyone out, which is the intended behavior.
type SessionGate struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

func NewSessionGate() *SessionGate {
	return &SessionGate{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Login checks the supplied pair against the configured credentials and
// mints an opaque session token on an exact match.
func (g *SessionGate) Login(username, password string) (string, error) {
	if username != adminUsername || password != adminPassword {
		logger.Sugar.Warnw("rejected admin login", "username", username)
		return "", ErrInvalidCredentials
	}

	token := uuid.New().String()

	g.mu.Lock()
	g.tokens[token] = g.now()
	g.mu.Unlock()

	return token, nil
}

// Logout revokes a token. Unknown tokens are fine; logging out twice is a
// no-op.
func (g *SessionGate) Logout(token string) {
	g.mu.Lock()
	delete(g.tokens, token)
	g.mu.Unlock()
}

// Authenticated reports whether a token is live. Expired tokens are
// dropped on sight, so the table stays bounded by recent logins.
func (g *SessionGate) Authenticated(token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	issued, ok := g.tokens[token]
	if !ok {
		return false
	}
	if g.now().Sub(issued) > sessionTTL {
		delete(g.tokens, token)
		return false
	}
	return true
}
