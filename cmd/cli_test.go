package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rememble/internal/application"
)

func TestVersionSkipsWiring(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "broken.toml"), []byte("store = ["), 0o600))

	stdout, _, err := executeCLI(t, home, "version", "--config", filepath.Join(home, "broken.toml"))
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestInviteThenListNetwork(t *testing.T) {
	home := t.TempDir()

	stdout, stderr, err := executeCLI(t, home, "invite", "john-smith", "--note", "met at conf", "--message", "Hi John!")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "Invitation sent to John Smith (conn-john-smith-")
	assert.NotContains(t, stderr, "warning:")

	stdout, _, err = executeCLI(t, home, "network", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "John Smith")
	assert.Contains(t, stdout, "met at conf")

	_, err = os.Stat(filepath.Join(home, ".rememble", "network.toml"))
	require.NoError(t, err)
}

func TestInviteTwiceUpdatesNote(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "invite", "alice-green", "--note", "first")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "invite", "alice-green", "--note", "second")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Already connected to Alice Green, private note updated")

	network := readNetworkJSON(t, home)
	require.Len(t, network.Connections, 1)
	assert.Equal(t, "second", network.Connections[0].PrivateNote)
}

func TestReinviteWithoutNoteKeepsNote(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "invite", "alice-green", "--note", "met at conf")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "invite", "alice-green")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Already connected to Alice Green, private note kept")

	network := readNetworkJSON(t, home)
	require.Len(t, network.Connections, 1)
	assert.Equal(t, "met at conf", network.Connections[0].PrivateNote)
}

func TestInviteRejectsLongNoteBeforeWriting(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "invite", "john-smith", "--note", strings.Repeat("n", 501))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "note too long")
	assert.Contains(t, err.Error(), "500 character limit")

	_, statErr := os.Stat(filepath.Join(home, ".rememble", "network.toml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNoteLimitFollowsConfig(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[notes]\nmax_length = 10\n")

	_, _, err := executeCLI(t, home, "invite", "bob-brown", "--note", "short")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "note", "set", "bob-brown", "definitely too long")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10 character limit")

	stdout, _, err := executeCLI(t, home, "note", "show", "bob-brown", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "short\n", stdout)
}

func TestNoteSetShowDelete(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "invite", "emily-white")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "note", "set", "emily-white", "Loves gourmet kibble")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Note saved for Emily White")

	stdout, _, err = executeCLI(t, home, "note", "show", "emily-white")
	require.NoError(t, err)
	assert.Contains(t, stdout, "gourmet kibble")

	_, _, err = executeCLI(t, home, "note", "delete", "emily-white")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "note", "show", "emily-white")
	require.NoError(t, err)
	assert.Equal(t, "No private note for Emily White.\n", stdout)

	network := readNetworkJSON(t, home)
	require.Len(t, network.Connections, 1)
	assert.Equal(t, "Emily White", network.Connections[0].Profile.Name)
}

func TestNoteUnknownConnection(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "note", "set", "conn-nobody-1", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection not found")
}

func TestNetworkRemoveClearsSentInvitation(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "invite", "john-smith")
	require.NoError(t, err)

	profiles := readProfilesJSON(t, home)
	assert.True(t, invited(profiles, "john-smith"))

	stdout, _, err := executeCLI(t, home, "network", "remove", "john-smith")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed John Smith")

	profiles = readProfilesJSON(t, home)
	assert.False(t, invited(profiles, "john-smith"))
	assert.Empty(t, readNetworkJSON(t, home).Connections)
}

func TestInvitationsAcceptUsesDefaultNote(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "invitations", "list", "--json")
	require.NoError(t, err)

	var pending []application.InvitationView
	require.NoError(t, json.Unmarshal([]byte(stdout), &pending))
	require.NotEmpty(t, pending)
	first := pending[0].Profile

	stdout, _, err = executeCLI(t, home, "invitations", "accept", first.ID)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Connected with "+first.Name)

	network := readNetworkJSON(t, home)
	require.Len(t, network.Connections, 1)
	assert.Equal(t, "Accepted connection with "+first.Name+".", network.Connections[0].PrivateNote)

	stdout, _, err = executeCLI(t, home, "invitations", "list", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(stdout), &pending))
	for _, invitation := range pending {
		assert.NotEqual(t, first.ID, invitation.Profile.ID)
	}
}

func TestPromptsFallBackWithoutAPIKey(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "prompts", "john-smith", "--json")
	require.NoError(t, err)

	var out promptsOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.False(t, out.Generated)
	assert.Equal(t, application.FallbackNotePrompts, out.Prompts)
}

func TestPromptsUnknownProfile(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "prompts", "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile not found")
}

func TestNoteDraftFallsBackToProfileDraft(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "invite", "john-smith", "--message", "Hi John!")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "note", "draft", "john-smith", "--save")
	require.NoError(t, err)
	assert.Contains(t, stdout, "John Smith")
	assert.Contains(t, stdout, `Invitation said: "Hi John!".`)

	network := readNetworkJSON(t, home)
	require.Len(t, network.Connections, 1)
	assert.Equal(t, strings.TrimSpace(stdout), network.Connections[0].PrivateNote)
}

func TestAuthStatusWithoutKey(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "assistant: disabled")
}

func TestAuthSetKeyReadsStdin(t *testing.T) {
	home := t.TempDir()

	stdout, stderr, err := executeCLIWithInput(t, home, strings.NewReader("  gm-test-key\n"), "auth", "set-key")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "API key stored as rememble/genai/api_key")

	_, _, err = executeCLI(t, home, "auth", "remove-key")
	require.NoError(t, err)
}

func TestAuthSetKeyRejectsEmptyInput(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLIWithInput(t, home, strings.NewReader("\n"), "auth", "set-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key must not be empty")
}

func TestEphemeralRunDoesNotWrite(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "invite", "john-smith", "--ephemeral")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Invitation sent to John Smith")

	_, statErr := os.Stat(filepath.Join(home, ".rememble", "network.toml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSQLiteBackend(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[store]\nbackend = \"sqlite\"\n")

	_, _, err := executeCLI(t, home, "invite", "hunter-cat", "--note", "the boss")
	require.NoError(t, err)

	network := readNetworkJSON(t, home)
	require.Len(t, network.Connections, 1)
	assert.Equal(t, "the boss", network.Connections[0].PrivateNote)

	_, err = os.Stat(filepath.Join(home, ".rememble", "network.db"))
	require.NoError(t, err)
}

func TestCorruptStoreFallsBackWithWarning(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".rememble")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "network.toml"), []byte("version = ["), 0o600))

	stdout, stderr, err := executeCLI(t, home, "network", "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "starting from an empty network")

	var network application.NetworkView
	require.NoError(t, json.Unmarshal([]byte(stdout), &network))
	assert.Empty(t, network.Connections)
}

func TestCorruptStoreIsMovedAsideOnFirstWrite(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".rememble")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	networkPath := filepath.Join(dir, "network.toml")
	require.NoError(t, os.WriteFile(networkPath, []byte("version = ["), 0o600))

	_, _, err := executeCLI(t, home, "invite", "alice-green", "--note", "fresh start")
	require.NoError(t, err)

	kept, err := os.ReadFile(networkPath + ".corrupt")
	require.NoError(t, err)
	assert.Equal(t, "version = [", string(kept))

	stdout, _, err := executeCLI(t, home, "network", "list", "--json")
	require.NoError(t, err)
	var network application.NetworkView
	require.NoError(t, json.Unmarshal([]byte(stdout), &network))
	require.Len(t, network.Connections, 1)
	assert.Equal(t, "fresh start", network.Connections[0].PrivateNote)
}

func TestUnsupportedBackendFails(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[store]\nbackend = \"postgres\"\n")

	_, _, err := executeCLI(t, home, "network", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store backend")
}

func TestImportLegacyExport(t *testing.T) {
	home := t.TempDir()
	export := `{
  "rememble-connections": "[{\"id\":\"conn-jane-1707900000000\",\"name\":\"Jane Doe\",\"headline\":\"Chief Vibe Officer\",\"experience\":[\"Product Lead at Alpha Innovations (2019-2021)\"],\"privateNote\":\"met at conf\"},{\"id\":\"conn-x-1\",\"name\":\"\"}]",
  "rememble-sent-invitations": "[\"jane\",\"john-smith\"]"
}`
	path := filepath.Join(home, "export.json")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o600))

	stdout, stderr, err := executeCLI(t, home, "import", path)
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "imported 1 connections")
	assert.Contains(t, stdout, "dropped 1 invalid records")

	network := readNetworkJSON(t, home)
	require.Len(t, network.Connections, 1)
	conn := network.Connections[0]
	assert.Equal(t, "jane", conn.Profile.ID)
	assert.Equal(t, "met at conf", conn.PrivateNote)
	require.Len(t, conn.Profile.Experience, 1)
	assert.Equal(t, "Alpha Innovations", conn.Profile.Experience[0].Company)
	assert.ElementsMatch(t, []string{"jane", "john-smith"}, network.SentInvitations)
}

func TestImportWarnsWhenStoreIsNotWritable(t *testing.T) {
	home := t.TempDir()
	blocked := filepath.Join(home, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("not a directory"), 0o600))
	writeConfig(t, home, "[store]\npath = "+strconv.Quote(filepath.Join(blocked, "network.toml"))+"\n")

	export := `{"rememble-connections": [{"id": "conn-jane-1707900000000", "name": "Jane Doe"}]}`
	path := filepath.Join(home, "export.json")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o600))

	stdout, stderr, err := executeCLI(t, home, "import", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported 1 connections")
	assert.Contains(t, stderr, "warning: change kept for this run only")
	assert.Contains(t, stderr, "save network")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, strings.NewReader(""), args...)
}

func executeCLIWithInput(t *testing.T, home string, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PASSWORD_STORE_DIR", filepath.Join(home, ".password-store"))

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(stdin)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()

	dir := filepath.Join(home, ".rememble")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))
}

func readNetworkJSON(t *testing.T, home string) application.NetworkView {
	t.Helper()

	stdout, stderr, err := executeCLI(t, home, "network", "list", "--json")
	require.NoError(t, err, stderr)

	var network application.NetworkView
	require.NoError(t, json.Unmarshal([]byte(stdout), &network))
	return network
}

func readProfilesJSON(t *testing.T, home string) []application.ProfileView {
	t.Helper()

	stdout, stderr, err := executeCLI(t, home, "profiles", "list", "--json")
	require.NoError(t, err, stderr)

	var profiles []application.ProfileView
	require.NoError(t, json.Unmarshal([]byte(stdout), &profiles))
	return profiles
}

func invited(profiles []application.ProfileView, id string) bool {
	for _, profile := range profiles {
		if profile.ID == id {
			return profile.Invited
		}
	}

	return false
}
