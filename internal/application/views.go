package application

import (
	"time"

	"github.com/bnema/rememble/internal/domain"
)

// Views are the JSON shapes shared by `--json` output and the MCP tools.

type ExperienceView struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Dates            string   `json:"dates,omitempty"`
	Location         string   `json:"location,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

type ProfileView struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Headline   string           `json:"headline,omitempty"`
	AvatarURL  string           `json:"avatar_url,omitempty"`
	Company    string           `json:"company,omitempty"`
	Location   string           `json:"location,omitempty"`
	Bio        string           `json:"bio,omitempty"`
	Experience []ExperienceView `json:"experience,omitempty"`
	Invited    bool             `json:"invited"`
}

type ConnectionView struct {
	ID              string      `json:"id"`
	Profile         ProfileView `json:"profile"`
	PrivateNote     string      `json:"private_note"`
	ConnectedAt     time.Time   `json:"connected_at"`
	StandardMessage string      `json:"standard_message,omitempty"`
}

type InvitationView struct {
	Profile           ProfileView `json:"profile"`
	Message           string      `json:"message"`
	MutualConnections string      `json:"mutual_connections,omitempty"`
	Verified          bool        `json:"verified"`
}

type NetworkView struct {
	Connections     []ConnectionView `json:"connections"`
	SentInvitations []string         `json:"sent_invitations"`
	Summary         NetworkSummary   `json:"summary"`
}

func NewProfileView(profile domain.Profile, invited bool) ProfileView {
	view := ProfileView{
		ID:        string(profile.ID),
		Name:      profile.Name,
		Headline:  profile.Headline,
		AvatarURL: profile.AvatarURL,
		Company:   profile.Company,
		Location:  profile.Location,
		Bio:       profile.Bio,
		Invited:   invited,
	}
	for _, entry := range profile.Experience {
		view.Experience = append(view.Experience, ExperienceView{
			Title:            entry.Title,
			Company:          entry.Company,
			Dates:            entry.Dates,
			Location:         entry.Location,
			Responsibilities: append([]string(nil), entry.Responsibilities...),
		})
	}

	return view
}

func NewConnectionView(conn domain.Connection) ConnectionView {
	return ConnectionView{
		ID:              string(conn.ID),
		Profile:         NewProfileView(conn.Profile, true),
		PrivateNote:     conn.PrivateNote,
		ConnectedAt:     conn.ConnectedAt.UTC(),
		StandardMessage: conn.StandardMessage,
	}
}

func NewInvitationView(invitation domain.PendingInvitation) InvitationView {
	return InvitationView{
		Profile:           NewProfileView(invitation.Profile, false),
		Message:           invitation.Message,
		MutualConnections: invitation.MutualConnections,
		Verified:          invitation.Verified,
	}
}

func NewNetworkView(network domain.Network) NetworkView {
	view := NetworkView{
		Connections:     make([]ConnectionView, 0, len(network.Connections)),
		SentInvitations: make([]string, 0, len(network.SentInvitations)),
		Summary:         Summarize(network),
	}
	for _, conn := range RecentFirst(network.Connections) {
		view.Connections = append(view.Connections, NewConnectionView(conn))
	}
	for _, id := range network.SentInvitations {
		view.SentInvitations = append(view.SentInvitations, string(id))
	}

	return view
}
