package legacy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/rememble/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stringEncodedExport = `{
  "rememble-connections": "[{\"id\":\"conn-john-smith-1771066800000\",\"name\":\"John Smith\",\"headline\":\"Product Manager at Future Gadgets Co.\",\"avatarUrl\":\"https://placehold.co/128x128.png\",\"dataAiHint\":\"man professional\",\"company\":\"Future Gadgets Co.\",\"experience\":[\"Product Lead at Alpha Innovations (2019-2021)\",\"Associate PM at Beta Products (2017-2019)\"],\"privateNote\":\"met at conf\",\"connectionDate\":\"2026-02-14T11:00:00.000Z\",\"standardMessage\":\"Hi John\"}]",
  "rememble-sent-invitations": "[\"john-smith\",\"alice-green\"]"
}`

func TestDecodeStringEncodedExport(t *testing.T) {
	network, report, err := Decode(strings.NewReader(stringEncodedExport))
	require.NoError(t, err)
	assert.Equal(t, Report{}, report)

	require.Len(t, network.Connections, 1)
	conn := network.Connections[0]
	assert.Equal(t, domain.ConnectionID("conn-john-smith-1771066800000"), conn.ID)
	assert.Equal(t, domain.ProfileID("john-smith"), conn.Profile.ID)
	assert.Equal(t, "John Smith", conn.Profile.Name)
	assert.Equal(t, "met at conf", conn.PrivateNote)
	assert.Equal(t, "Hi John", conn.StandardMessage)
	assert.Equal(t, time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC), conn.ConnectedAt)
	assert.Equal(t, []domain.ExperienceEntry{
		{Title: "Product Lead", Company: "Alpha Innovations", Dates: "2019-2021"},
		{Title: "Associate PM", Company: "Beta Products", Dates: "2017-2019"},
	}, conn.Profile.Experience)
	assert.Equal(t, []domain.ProfileID{"john-smith", "alice-green"}, network.SentInvitations)
}

func TestDecodeRawArraysAndStructuredExperience(t *testing.T) {
	input := `{
  "rememble-connections": [
    {"id": "conn-alice-green-1771066800000", "name": "Alice Green",
     "experience": [{"title": "Lead UX Designer", "company": "PixelPerfect Agency", "dates": "2020-Present", "responsibilities": ["Design systems"]}]},
    {"id": "conn-alice-green-1771066900000", "name": "Alice Green again"},
    {"id": "", "name": "No Id"},
    {"id": "conn-nameless-1", "name": ""}
  ]
}`

	network, report, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, Report{Dropped: 2, Duplicates: 1}, report)
	require.Len(t, network.Connections, 1)
	conn := network.Connections[0]
	assert.Equal(t, domain.ProfileID("alice-green"), conn.Profile.ID)
	assert.Equal(t, time.UnixMilli(1771066800000).UTC(), conn.ConnectedAt)
	assert.Equal(t, []domain.ExperienceEntry{
		{Title: "Lead UX Designer", Company: "PixelPerfect Agency", Dates: "2020-Present", Responsibilities: []string{"Design systems"}},
	}, conn.Profile.Experience)
	assert.Empty(t, network.SentInvitations)
}

func TestDecodeEmptyExport(t *testing.T) {
	network, report, err := Decode(strings.NewReader(`{"rememble-connections": "[]", "rememble-sent-invitations": ""}`))
	require.NoError(t, err)
	assert.Equal(t, Report{}, report)
	assert.Empty(t, network.Connections)
	assert.Empty(t, network.SentInvitations)
}

func TestDecodeMalformedExport(t *testing.T) {
	_, _, err := Decode(strings.NewReader(`{"rememble-connections": "[{"}`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode rememble-connections")

	_, _, err = Decode(strings.NewReader(`not json`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode legacy export")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(stringEncodedExport), 0o600))

	network, _, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, network.Connections, 1)

	_, _, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseExperience(t *testing.T) {
	tests := []struct {
		line string
		want domain.ExperienceEntry
		ok   bool
	}{
		{
			line: "Chief Napping Officer at The Comfy Cushion (2021-Present)",
			want: domain.ExperienceEntry{Title: "Chief Napping Officer", Company: "The Comfy Cushion", Dates: "2021-Present"},
			ok:   true,
		},
		{
			line: "Lead Playtime Innovator at String Theory Inc. (2019-2021)",
			want: domain.ExperienceEntry{Title: "Lead Playtime Innovator", Company: "String Theory Inc.", Dates: "2019-2021"},
			ok:   true,
		},
		{
			line: "Engineer at Acme",
			want: domain.ExperienceEntry{Title: "Engineer", Company: "Acme"},
			ok:   true,
		},
		{
			line: "Freelancer",
			want: domain.ExperienceEntry{Title: "Freelancer"},
			ok:   true,
		},
		{line: "   ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseExperience(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
