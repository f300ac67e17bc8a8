package session

import (
	"github.com/google/uuid"
)

// Identity is the authenticated user of the current session. Absence of an
// Identity is the anonymous state; there are no intermediate states since
// login is synchronous from the engine's point of view.
type Identity struct {
	sessionID uuid.UUID
	username  Username
	token     string
}

func NewIdentity(username Username, token string) *Identity {
	return &Identity{
		sessionID: uuid.New(),
		username:  username,
		token:     token,
	}
}

func ReconstructIdentity(sessionID uuid.UUID, username Username, token string) *Identity {
	return &Identity{
		sessionID: sessionID,
		username:  username,
		token:     token,
	}
}

func (i *Identity) SessionID() uuid.UUID { return i.sessionID }
func (i *Identity) Username() Username   { return i.username }
func (i *Identity) Token() string        { return i.token }
