package domain

import (
	"fmt"
	"strings"
	"time"
)

type ConnectionID string

type Connection struct {
	ID              ConnectionID
	Profile         Profile
	PrivateNote     string
	ConnectedAt     time.Time
	StandardMessage string
}

// NewConnectionID derives a connection id from the profile id and the
// connection time in unix milliseconds.
func NewConnectionID(profileID ProfileID, at time.Time) ConnectionID {
	return ConnectionID(fmt.Sprintf("conn-%s-%d", profileID, at.UnixMilli()))
}

func (c Connection) HasNote() bool {
	return strings.TrimSpace(c.PrivateNote) != ""
}

func (c Connection) Clone() Connection {
	clone := c
	clone.Profile = c.Profile.Clone()
	return clone
}
