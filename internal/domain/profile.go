package domain

import (
	"fmt"
	"strings"
)

type ProfileID string

type Profile struct {
	ID         ProfileID
	Name       string
	Headline   string
	AvatarURL  string
	Company    string
	Location   string
	Bio        string
	Experience []ExperienceEntry
}

type ExperienceEntry struct {
	Title            string
	Company          string
	Dates            string
	Responsibilities []string
	Location         string
}

func (p Profile) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return fmt.Errorf("profile id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile %q: name is required", p.ID)
	}

	return nil
}

// Summary renders the entry the way a profile page lists it: "Title at Company (Dates)".
func (e ExperienceEntry) Summary() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(e.Title))
	if company := strings.TrimSpace(e.Company); company != "" {
		if b.Len() > 0 {
			b.WriteString(" at ")
		}
		b.WriteString(company)
	}
	if dates := strings.TrimSpace(e.Dates); dates != "" {
		fmt.Fprintf(&b, " (%s)", dates)
	}

	return strings.TrimSpace(b.String())
}

func (p Profile) Clone() Profile {
	clone := p
	if p.Experience != nil {
		clone.Experience = make([]ExperienceEntry, len(p.Experience))
		for i, entry := range p.Experience {
			clone.Experience[i] = entry
			if entry.Responsibilities != nil {
				clone.Experience[i].Responsibilities = append([]string(nil), entry.Responsibilities...)
			}
		}
	}

	return clone
}
