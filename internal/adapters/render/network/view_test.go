package network

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/rememble/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

func testConnection() domain.Connection {
	return domain.Connection{
		ID: "conn-john-smith-1771066800000",
		Profile: domain.Profile{
			ID:       "john-smith",
			Name:     "John Smith",
			Headline: "Product Manager at Future Gadgets Co.",
			Company:  "Future Gadgets Co.",
			Location: "New York, NY",
			Experience: []domain.ExperienceEntry{
				{Title: "Product Lead", Company: "Alpha Innovations", Dates: "2019-2021", Responsibilities: []string{"Roadmap"}},
			},
		},
		PrivateNote:     "Met John at the 2023 Tech Conference. Discussed potential collaboration on product strategy.",
		ConnectedAt:     testNow.Add(-3 * 24 * time.Hour),
		StandardMessage: "Hi John, enjoyed your talk!",
	}
}

func TestRenderNetworkListsConnectionsNewestFirst(t *testing.T) {
	older := testConnection()
	newer := domain.Connection{
		ID:          "conn-alice-green-1",
		Profile:     domain.Profile{ID: "alice-green", Name: "Alice Green"},
		ConnectedAt: testNow.Add(-2 * time.Hour),
	}

	output, err := RenderNetwork([]domain.Connection{older, newer}, []domain.ProfileID{"john-smith", "alice-green", "bob-brown"}, RenderOptions{Now: testNow, NotePreview: 20})
	require.NoError(t, err)

	assert.Contains(t, output, "My Network")
	assert.Contains(t, output, "connections: 2  with notes: 1  invitations sent: 3")
	assert.Contains(t, output, "connected 3 days ago")
	assert.Contains(t, output, "connected 2 hours ago")
	assert.Contains(t, output, "note: Met John at the 2023...")
	assert.Less(t, strings.Index(output, "Alice Green"), strings.Index(output, "John Smith"))
}

func TestRenderNetworkEmpty(t *testing.T) {
	output, err := RenderNetwork(nil, nil, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "connections: 0")
	assert.Contains(t, output, "No connections yet")
}

func TestRenderConnectionDetail(t *testing.T) {
	output, err := RenderConnection(testConnection(), RenderOptions{Now: testNow, MaxNoteLength: 500})
	require.NoError(t, err)

	assert.Contains(t, output, "John Smith")
	assert.Contains(t, output, "profile: john-smith")
	assert.Contains(t, output, "Future Gadgets Co. · New York, NY")
	assert.Contains(t, output, "• Product Lead at Alpha Innovations (2019-2021)")
	assert.Contains(t, output, "- Roadmap")
	assert.Contains(t, output, "Invitation message")
	assert.Contains(t, output, "Hi John, enjoyed your talk!")
	assert.Contains(t, output, "Private note")
	assert.Contains(t, output, "92/500")
}

func TestRenderConnectionWithoutNote(t *testing.T) {
	conn := testConnection()
	conn.PrivateNote = ""
	conn.StandardMessage = ""

	output, err := RenderConnection(conn, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "No private note.")
	assert.Contains(t, output, "0/500")
	assert.NotContains(t, output, "Invitation message")
	assert.Contains(t, output, "connected on Feb 11, 2026")
}

func TestRenderInvitationsTruncatesLongMessages(t *testing.T) {
	message := strings.Repeat("a", 200)
	output, err := RenderInvitations([]domain.PendingInvitation{
		{Profile: domain.Profile{ID: "john-smith", Name: "Alan Stein", Headline: "DM me"}, Message: message, MutualConnections: "Deepa Chand and 5 other mutual connections"},
		{Profile: domain.Profile{ID: "bob-brown", Name: "Bob Brown"}, Verified: true},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "pending: 2")
	assert.Contains(t, output, strings.Repeat("a", 150)+"...")
	assert.NotContains(t, output, strings.Repeat("a", 151))
	assert.Contains(t, output, "Deepa Chand and 5 other mutual connections")
	assert.Contains(t, output, "verified")
}

func TestRenderProfilesMarksInvited(t *testing.T) {
	output, err := RenderProfiles([]domain.Profile{
		{ID: "john-smith", Name: "John Smith"},
		{ID: "alice-green", Name: "Alice Green"},
	}, func(id domain.ProfileID) bool { return id == "john-smith" })
	require.NoError(t, err)

	assert.Contains(t, output, "profiles: 2")
	lines := strings.Split(output, "\n")
	for _, line := range lines {
		if strings.Contains(line, "Alice Green") {
			assert.NotContains(t, line, "[invited]")
		}
		if strings.Contains(line, "John Smith") {
			assert.Contains(t, line, "[invited]")
		}
	}
}

func TestRenderPrompts(t *testing.T) {
	output, err := RenderPrompts(domain.Profile{Name: "Jane"}, []string{"one", "two", "three"}, false)
	require.NoError(t, err)

	assert.Contains(t, output, "Note prompts for Jane")
	assert.Contains(t, output, "fallback")
	assert.Contains(t, output, "3. three")
}

func TestRenderNote(t *testing.T) {
	output, err := RenderNote("John Smith", "Met at the **conference**.", 60)
	require.NoError(t, err)
	assert.Contains(t, output, "John Smith")
	assert.Contains(t, output, "conference")

	output, err = RenderNote("", "", 0)
	require.NoError(t, err)
	assert.Contains(t, output, "No private note.")
}

func TestFormatConnectedAt(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		now  time.Time
		want string
	}{
		{name: "zero", want: "at an unknown date"},
		{name: "no clock", at: testNow, want: "on Feb 14, 2026"},
		{name: "seconds", at: testNow.Add(-10 * time.Second), now: testNow, want: "just now"},
		{name: "one minute", at: testNow.Add(-time.Minute), now: testNow, want: "1 minute ago"},
		{name: "hours", at: testNow.Add(-5 * time.Hour), now: testNow, want: "5 hours ago"},
		{name: "days", at: testNow.Add(-10 * 24 * time.Hour), now: testNow, want: "10 days ago"},
		{name: "old", at: testNow.Add(-90 * 24 * time.Hour), now: testNow, want: "on Nov 16, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatConnectedAt(tt.at, tt.now))
		})
	}
}
