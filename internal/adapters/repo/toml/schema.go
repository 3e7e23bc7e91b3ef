package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version         int                `toml:"version"`
	SentInvitations []string           `toml:"sent_invitations"`
	Connections     []connectionSchema `toml:"connections"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported network schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type connectionSchema struct {
	ID              string        `toml:"id"`
	PrivateNote     string        `toml:"private_note,omitempty"`
	ConnectedAt     string        `toml:"connected_at"`
	StandardMessage string        `toml:"standard_message,omitempty"`
	Profile         profileSchema `toml:"profile"`
}

type profileSchema struct {
	ID         string             `toml:"id"`
	Name       string             `toml:"name"`
	Headline   string             `toml:"headline,omitempty"`
	AvatarURL  string             `toml:"avatar_url,omitempty"`
	Company    string             `toml:"company,omitempty"`
	Location   string             `toml:"location,omitempty"`
	Bio        string             `toml:"bio,omitempty"`
	Experience []experienceSchema `toml:"experience,omitempty"`
}

type experienceSchema struct {
	Title            string   `toml:"title"`
	Company          string   `toml:"company"`
	Dates            string   `toml:"dates,omitempty"`
	Location         string   `toml:"location,omitempty"`
	Responsibilities []string `toml:"responsibilities,omitempty"`
}
