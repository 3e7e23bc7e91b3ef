package legacy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/rememble/internal/domain"
)

const (
	ConnectionsKey     = "rememble-connections"
	SentInvitationsKey = "rememble-sent-invitations"
)

var (
	connectionIDPattern = regexp.MustCompile(`^conn-(.+)-(\d+)$`)
	experiencePattern   = regexp.MustCompile(`^(.+?)\s+at\s+(.+?)(?:\s+\(([^()]*)\))?$`)
)

// Report counts the records the decoder had to drop.
type Report struct {
	Dropped    int
	Duplicates int
}

// export is a browser localStorage dump. Values are usually JSON encoded
// strings, as localStorage stores them, but plain arrays are accepted too.
type export map[string]json.RawMessage

type connectionRecord struct {
	ID              string          `json:"id"`
	ProfileID       string          `json:"profileId"`
	Name            string          `json:"name"`
	Headline        string          `json:"headline"`
	AvatarURL       string          `json:"avatarUrl"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Bio             string          `json:"bio"`
	Experience      json.RawMessage `json:"experience"`
	PrivateNote     string          `json:"privateNote"`
	ConnectionDate  string          `json:"connectionDate"`
	StandardMessage string          `json:"standardMessage"`
}

type experienceRecord struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Dates            string   `json:"dates"`
	Responsibilities []string `json:"responsibilities"`
	Location         string   `json:"location"`
}

func ReadFile(path string) (domain.Network, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Network{}, Report{}, fmt.Errorf("open legacy export: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode converts a localStorage export into a network. Records without an
// id or a name are dropped, as are repeated profile ids.
func Decode(r io.Reader) (domain.Network, Report, error) {
	var raw export
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return domain.Network{}, Report{}, fmt.Errorf("decode legacy export: %w", err)
	}

	var records []connectionRecord
	if err := unwrap(raw[ConnectionsKey], &records); err != nil {
		return domain.Network{}, Report{}, fmt.Errorf("decode %s: %w", ConnectionsKey, err)
	}
	var invited []string
	if err := unwrap(raw[SentInvitationsKey], &invited); err != nil {
		return domain.Network{}, Report{}, fmt.Errorf("decode %s: %w", SentInvitationsKey, err)
	}

	var (
		network domain.Network
		report  Report
	)
	for _, record := range records {
		conn, ok := record.toConnection()
		if !ok {
			report.Dropped++
			continue
		}
		if _, seen := network.FindByProfile(conn.Profile.ID); seen {
			report.Duplicates++
			continue
		}
		network.Connections = append(network.Connections, conn)
	}
	for _, profileID := range invited {
		if profileID = strings.TrimSpace(profileID); profileID != "" {
			network.MarkInvited(domain.ProfileID(profileID))
		}
	}

	return network, report, nil
}

func unwrap(data json.RawMessage, target any) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		if strings.TrimSpace(encoded) == "" {
			return nil
		}
		data = []byte(encoded)
	}

	return json.Unmarshal(data, target)
}

func (r connectionRecord) toConnection() (domain.Connection, bool) {
	if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Name) == "" {
		return domain.Connection{}, false
	}

	profileID, idMillis := splitConnectionID(r.ID)
	if r.ProfileID != "" {
		profileID = r.ProfileID
	}

	conn := domain.Connection{
		ID: domain.ConnectionID(r.ID),
		Profile: domain.Profile{
			ID:         domain.ProfileID(profileID),
			Name:       r.Name,
			Headline:   r.Headline,
			AvatarURL:  r.AvatarURL,
			Company:    r.Company,
			Location:   r.Location,
			Bio:        r.Bio,
			Experience: decodeExperience(r.Experience),
		},
		PrivateNote:     r.PrivateNote,
		StandardMessage: r.StandardMessage,
	}

	if parsed, err := time.Parse(time.RFC3339Nano, r.ConnectionDate); err == nil {
		conn.ConnectedAt = parsed.UTC()
	} else if idMillis > 0 {
		conn.ConnectedAt = time.UnixMilli(idMillis).UTC()
	}

	return conn, true
}

// splitConnectionID recovers the profile id from "conn-<profileID>-<millis>".
// Ids of any other shape are used as the profile id unchanged.
func splitConnectionID(id string) (string, int64) {
	match := connectionIDPattern.FindStringSubmatch(id)
	if match == nil {
		return id, 0
	}

	millis, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil {
		return match[1], 0
	}

	return match[1], millis
}

// decodeExperience accepts both shapes the browser app has written: plain
// "Title at Company (Dates)" strings and structured entries.
func decodeExperience(data json.RawMessage) []domain.ExperienceEntry {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	entries := make([]domain.ExperienceEntry, 0, len(items))
	for _, item := range items {
		var line string
		if err := json.Unmarshal(item, &line); err == nil {
			if entry, ok := ParseExperience(line); ok {
				entries = append(entries, entry)
			}
			continue
		}

		var record experienceRecord
		if err := json.Unmarshal(item, &record); err != nil || (record.Title == "" && record.Company == "") {
			continue
		}
		entries = append(entries, domain.ExperienceEntry{
			Title:            record.Title,
			Company:          record.Company,
			Dates:            record.Dates,
			Responsibilities: record.Responsibilities,
			Location:         record.Location,
		})
	}
	if len(entries) == 0 {
		return nil
	}

	return entries
}

// ParseExperience splits "Product Lead at Alpha Innovations (2019-2021)".
// A line without " at " becomes a title-only entry.
func ParseExperience(line string) (domain.ExperienceEntry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.ExperienceEntry{}, false
	}

	match := experiencePattern.FindStringSubmatch(line)
	if match == nil {
		return domain.ExperienceEntry{Title: line}, true
	}

	return domain.ExperienceEntry{
		Title:   strings.TrimSpace(match[1]),
		Company: strings.TrimSpace(match[2]),
		Dates:   strings.TrimSpace(match[3]),
	}, true
}
