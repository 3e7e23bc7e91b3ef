package yaml

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/rememble/internal/config"
	"github.com/bnema/rememble/internal/domain"
	"github.com/bnema/rememble/internal/ports"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var defaultCatalog []byte

type catalogSchema struct {
	Profiles    []profileSchema    `yaml:"profiles"`
	Invitations []invitationSchema `yaml:"invitations"`
}

type profileSchema struct {
	ID         string             `yaml:"id"`
	Name       string             `yaml:"name"`
	Headline   string             `yaml:"headline"`
	AvatarURL  string             `yaml:"avatar_url"`
	Company    string             `yaml:"company"`
	Location   string             `yaml:"location"`
	Bio        string             `yaml:"bio"`
	Experience []experienceSchema `yaml:"experience"`
}

type experienceSchema struct {
	Title            string   `yaml:"title"`
	Company          string   `yaml:"company"`
	Dates            string   `yaml:"dates"`
	Location         string   `yaml:"location"`
	Responsibilities []string `yaml:"responsibilities"`
}

// invitationSchema references a catalog profile. Name and headline, when
// set, override the referenced profile's.
type invitationSchema struct {
	Profile           string `yaml:"profile"`
	Name              string `yaml:"name"`
	Headline          string `yaml:"headline"`
	Message           string `yaml:"message"`
	MutualConnections string `yaml:"mutual_connections"`
	Verified          bool   `yaml:"verified"`
}

// Catalog is the read-only set of profiles and pending invitations.
type Catalog struct {
	profiles    []domain.Profile
	invitations []domain.PendingInvitation
}

var _ ports.ProfileCatalog = (*Catalog)(nil)

// NewCatalog reads catalog.path when configured and the embedded catalog
// otherwise.
func NewCatalog(cfg *viper.Viper) (*Catalog, error) {
	if cfg == nil {
		return Default()
	}

	path := cfg.GetString(config.KeyCatalogPath)
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func Default() (*Catalog, error) {
	return Decode(bytes.NewReader(defaultCatalog))
}

func Decode(r io.Reader) (*Catalog, error) {
	var file catalogSchema
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	catalog := &Catalog{}
	byID := make(map[domain.ProfileID]domain.Profile, len(file.Profiles))
	for i, entry := range file.Profiles {
		profile := entry.toDomain()
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("catalog profile %d: %w", i, err)
		}
		if _, dup := byID[profile.ID]; dup {
			return nil, fmt.Errorf("catalog profile %q is defined twice", profile.ID)
		}
		byID[profile.ID] = profile
		catalog.profiles = append(catalog.profiles, profile)
	}

	invited := make(map[domain.ProfileID]struct{}, len(file.Invitations))
	for i, entry := range file.Invitations {
		profileID := domain.ProfileID(strings.TrimSpace(entry.Profile))
		profile, ok := byID[profileID]
		if !ok {
			return nil, fmt.Errorf("catalog invitation %d: %w: %q", i, domain.ErrProfileNotFound, profileID)
		}
		if _, dup := invited[profileID]; dup {
			return nil, fmt.Errorf("catalog invitation for %q is defined twice", profileID)
		}
		invited[profileID] = struct{}{}

		profile = profile.Clone()
		if entry.Name != "" {
			profile.Name = entry.Name
		}
		if entry.Headline != "" {
			profile.Headline = entry.Headline
		}
		catalog.invitations = append(catalog.invitations, domain.PendingInvitation{
			Profile:           profile,
			Message:           strings.TrimSpace(entry.Message),
			MutualConnections: entry.MutualConnections,
			Verified:          entry.Verified,
		})
	}

	return catalog, nil
}

func (c *Catalog) List(ctx context.Context) ([]domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(c.profiles))
	for _, profile := range c.profiles {
		profiles = append(profiles, profile.Clone())
	}

	return profiles, nil
}

func (c *Catalog) GetByID(ctx context.Context, id domain.ProfileID) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}

	for _, profile := range c.profiles {
		if profile.ID == id {
			return profile.Clone(), nil
		}
	}

	return domain.Profile{}, domain.ErrProfileNotFound
}

func (c *Catalog) PendingInvitations(ctx context.Context) ([]domain.PendingInvitation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	invitations := make([]domain.PendingInvitation, 0, len(c.invitations))
	for _, invitation := range c.invitations {
		invitation.Profile = invitation.Profile.Clone()
		invitations = append(invitations, invitation)
	}

	return invitations, nil
}

func (p profileSchema) toDomain() domain.Profile {
	profile := domain.Profile{
		ID:        domain.ProfileID(strings.TrimSpace(p.ID)),
		Name:      p.Name,
		Headline:  p.Headline,
		AvatarURL: p.AvatarURL,
		Company:   p.Company,
		Location:  p.Location,
		Bio:       p.Bio,
	}
	for _, entry := range p.Experience {
		profile.Experience = append(profile.Experience, domain.ExperienceEntry{
			Title:            entry.Title,
			Company:          entry.Company,
			Dates:            entry.Dates,
			Location:         entry.Location,
			Responsibilities: entry.Responsibilities,
		})
	}

	return profile
}
