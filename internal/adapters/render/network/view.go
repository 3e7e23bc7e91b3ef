package network

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/rememble/internal/application"
	"github.com/bnema/rememble/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultNotePreview = 60

type RenderOptions struct {
	Now           time.Time
	NotePreview   int
	MaxNoteLength int
}

func (o RenderOptions) notePreview() int {
	if o.NotePreview <= 0 {
		return defaultNotePreview
	}
	return o.NotePreview
}

func (o RenderOptions) maxNoteLength() int {
	if o.MaxNoteLength <= 0 {
		return domain.DefaultMaxNoteLength
	}
	return o.MaxNoteLength
}

func RenderNetwork(connections []domain.Connection, invitations []domain.ProfileID, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return networkView(connections, invitations, opts, s)
	})
}

func RenderConnection(conn domain.Connection, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return connectionView(conn, opts, s)
	})
}

func RenderInvitations(invitations []domain.PendingInvitation) (string, error) {
	return run(func(s styles) string {
		return invitationsView(invitations, s)
	})
}

// RenderProfiles lists catalog profiles; invited marks profiles that already
// received an invitation.
func RenderProfiles(profiles []domain.Profile, invited func(domain.ProfileID) bool) (string, error) {
	return run(func(s styles) string {
		return profilesView(profiles, invited, s)
	})
}

func RenderProfile(profile domain.Profile, invited bool) (string, error) {
	return run(func(s styles) string {
		return profileView(profile, invited, s)
	})
}

func RenderPrompts(profile domain.Profile, prompts []string, generated bool) (string, error) {
	return run(func(s styles) string {
		return promptsView(profile, prompts, generated, s)
	})
}

func networkView(connections []domain.Connection, invitations []domain.ProfileID, opts RenderOptions, s styles) string {
	summary := application.Summarize(domain.Network{Connections: connections, SentInvitations: invitations})
	lines := []string{
		s.title.Render("My Network"),
		s.header.Render(fmt.Sprintf("connections: %d  with notes: %d  invitations sent: %d",
			summary.Connections, summary.WithNotes, summary.SentInvitations)),
	}

	if len(connections) == 0 {
		lines = append(lines, s.empty.Render("No connections yet. Invite someone with `rememble invite <profile-id>`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, conn := range application.RecentFirst(connections) {
		lines = append(lines, s.section.Render(connectionRow(conn, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func connectionRow(conn domain.Connection, opts RenderOptions, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.name.Render(conn.Profile.Name), " ", s.detail.Render(string(conn.ID))),
	}
	if conn.Profile.Headline != "" {
		parts = append(parts, s.headline.Render(conn.Profile.Headline))
	}
	parts = append(parts, s.detail.Render("connected "+formatConnectedAt(conn.ConnectedAt, opts.Now)))
	if conn.HasNote() {
		parts = append(parts, s.note.Render("note: "+truncate(singleLine(conn.PrivateNote), opts.notePreview())))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func connectionView(conn domain.Connection, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(conn.Profile.Name),
		s.header.Render(fmt.Sprintf("%s  profile: %s", conn.ID, conn.Profile.ID)),
	}
	lines = append(lines, profileDetails(conn.Profile, s)...)
	lines = append(lines, s.detail.Render("connected "+formatConnectedAt(conn.ConnectedAt, opts.Now)))

	if conn.StandardMessage != "" {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.label.Render("Invitation message"),
			s.message.Render(conn.StandardMessage),
		)))
	}

	noteLines := []string{s.label.Render("Private note")}
	if conn.HasNote() {
		noteLines = append(noteLines, s.note.Render(conn.PrivateNote))
	} else {
		noteLines = append(noteLines, s.empty.Render("No private note. Add one with `rememble note set`."))
	}
	noteLines = append(noteLines, noteUsageLine(conn.PrivateNote, opts.maxNoteLength(), s))
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, noteLines...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func invitationsView(invitations []domain.PendingInvitation, s styles) string {
	lines := []string{
		s.title.Render("Invitations"),
		s.header.Render(fmt.Sprintf("pending: %d", len(invitations))),
	}

	if len(invitations) == 0 {
		lines = append(lines, s.empty.Render("No pending invitations."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, invitation := range invitations {
		title := []string{s.name.Render(invitation.Profile.Name), " ", s.detail.Render(string(invitation.Profile.ID))}
		if invitation.Verified {
			title = append(title, " ", s.verified.Render("✓ verified"))
		}

		parts := []string{lipgloss.JoinHorizontal(lipgloss.Top, title...)}
		if invitation.Profile.Headline != "" {
			parts = append(parts, s.headline.Render(invitation.Profile.Headline))
		}
		if invitation.MutualConnections != "" {
			parts = append(parts, s.badge.Render(invitation.MutualConnections))
		}
		if invitation.Message != "" {
			parts = append(parts, s.message.Render(invitation.MessagePreview(domain.DefaultMessagePreviewLength)))
		}

		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func profilesView(profiles []domain.Profile, invited func(domain.ProfileID) bool, s styles) string {
	lines := []string{
		s.title.Render("Profiles"),
		s.header.Render(fmt.Sprintf("profiles: %d", len(profiles))),
	}

	if len(profiles) == 0 {
		lines = append(lines, s.empty.Render("The profile catalog is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, profile := range profiles {
		title := []string{s.name.Render(profile.Name), " ", s.detail.Render(string(profile.ID))}
		if invited != nil && invited(profile.ID) {
			title = append(title, " ", s.badge.Render("[invited]"))
		}

		parts := []string{lipgloss.JoinHorizontal(lipgloss.Top, title...)}
		if profile.Headline != "" {
			parts = append(parts, s.headline.Render(profile.Headline))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func profileView(profile domain.Profile, invited bool, s styles) string {
	lines := []string{s.title.Render(profile.Name), s.header.Render("profile: " + string(profile.ID))}
	lines = append(lines, profileDetails(profile, s)...)
	if invited {
		lines = append(lines, s.badge.Render("Invitation sent"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func promptsView(profile domain.Profile, prompts []string, generated bool, s styles) string {
	source := "suggested"
	if !generated {
		source = "fallback"
	}

	lines := []string{
		s.title.Render("Note prompts for " + profile.Name),
		s.header.Render(source),
	}
	for i, prompt := range prompts {
		lines = append(lines, s.message.Render(fmt.Sprintf("%d. %s", i+1, prompt)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func profileDetails(profile domain.Profile, s styles) []string {
	lines := make([]string, 0, 4+len(profile.Experience))
	if profile.Headline != "" {
		lines = append(lines, s.headline.Render(profile.Headline))
	}

	var meta []string
	if profile.Company != "" {
		meta = append(meta, profile.Company)
	}
	if profile.Location != "" {
		meta = append(meta, profile.Location)
	}
	if len(meta) > 0 {
		lines = append(lines, s.detail.Render(strings.Join(meta, " · ")))
	}
	if profile.Bio != "" {
		lines = append(lines, s.section.Render(s.message.Render(profile.Bio)))
	}

	if len(profile.Experience) > 0 {
		experience := []string{s.label.Render("Experience")}
		for _, entry := range profile.Experience {
			experience = append(experience, s.message.Render("• "+entry.Summary()))
			for _, item := range entry.Responsibilities {
				experience = append(experience, s.detail.Render("    - "+item))
			}
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, experience...)))
	}

	return lines
}

func noteUsageLine(note string, limit int, s styles) string {
	used := len([]rune(note))
	percent := 100 * float64(used) / float64(limit)
	label := s.label.Render("length:")
	meta := fmt.Sprintf("%d/%d", used, limit)
	if used > limit {
		meta = s.warning.Render(meta + " over limit")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", renderProgressBar(percent, 20, s), " ", meta)
}

func renderProgressBar(usedPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(usedPercent) / 100))
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", width-filled))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatConnectedAt(connectedAt, now time.Time) string {
	if connectedAt.IsZero() {
		return "at an unknown date"
	}
	if now.IsZero() {
		return "on " + connectedAt.Format("Jan 2, 2006")
	}

	elapsed := now.Sub(connectedAt)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour") + " ago"
	case elapsed < 30*24*time.Hour:
		return plural(int(elapsed.Hours()/24), "day") + " ago"
	default:
		return "on " + connectedAt.Format("Jan 2, 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
