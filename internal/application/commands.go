package application

import "github.com/bnema/rememble/internal/domain"

// InviteCommand connects to a catalog profile. A nil PrivateNote leaves the
// note of an existing connection untouched.
type InviteCommand struct {
	ProfileID       domain.ProfileID
	PrivateNote     *string
	StandardMessage string
}

func (c InviteCommand) note() string {
	if c.PrivateNote == nil {
		return ""
	}
	return *c.PrivateNote
}

type InviteResult struct {
	Connection       domain.Connection
	AlreadyConnected bool
	NoteUpdated      bool
}

type LoadReport struct {
	Fallback bool
	Err      error
}

type ImportReport struct {
	Added       int
	Skipped     int
	Invitations int
}
