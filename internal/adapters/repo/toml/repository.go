package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/rememble/internal/config"
	"github.com/bnema/rememble/internal/domain"
	"github.com/bnema/rememble/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	networkFileMode = 0o600
	networkDirMode  = 0o700
	networkFileName = "network.toml"
	tempFilePattern = ".network-*.toml.tmp"
	corruptSuffix   = ".corrupt"
)

type Repository struct {
	networkPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.NetworkRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	networkPath := cfg.GetString(config.KeyStorePath)
	if networkPath == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		networkPath = filepath.Join(dir, networkFileName)
	}

	networkPath, err := normalizeNetworkPath(networkPath)
	if err != nil {
		return nil, err
	}

	return &Repository{networkPath: networkPath, mu: lockForPath(networkPath)}, nil
}

func (r *Repository) Path() string {
	return r.networkPath
}

func (r *Repository) Load(ctx context.Context) (domain.Network, error) {
	if err := ctx.Err(); err != nil {
		return domain.Network{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Network{}, err
	}

	return fromSchema(file)
}

// Save replaces the whole file with the given network.
func (r *Repository) Save(ctx context.Context, network domain.Network) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := toSchema(network)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.moveAsideUnreadable(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

// moveAsideUnreadable renames a network file that no longer decodes to
// <path>.corrupt so a save does not destroy it.
func (r *Repository) moveAsideUnreadable() error {
	data, err := os.ReadFile(r.networkPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read network file: %w", err)
	}

	file, err := decodeSchema(data)
	if err == nil {
		if _, err = fromSchema(file); err == nil {
			return nil
		}
	}

	backupPath := r.networkPath + corruptSuffix
	if _, statErr := os.Stat(backupPath); statErr == nil {
		backupPath = fmt.Sprintf("%s.%d", backupPath, time.Now().UnixNano())
	}
	if renameErr := os.Rename(r.networkPath, backupPath); renameErr != nil {
		return fmt.Errorf("move unreadable network file aside: %w", renameErr)
	}

	return nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.networkPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read network file: %w", err)
	}

	return decodeSchema(data)
}

func decodeSchema(data []byte) (fileSchema, error) {
	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode network file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeNetworkPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve network path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.networkPath), networkDirMode); err != nil {
		return fmt.Errorf("create network directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode network file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.networkPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp network file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp network file: %w", err)
	}

	if err := tempFile.Chmod(networkFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp network file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp network file: %w", err)
	}

	if err := os.Rename(tempName, r.networkPath); err != nil {
		return fmt.Errorf("replace network file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.networkPath, networkFileMode); err != nil {
		return fmt.Errorf("chmod network file: %w", err)
	}

	return nil
}

func toSchema(network domain.Network) fileSchema {
	file := fileSchema{Version: currentSchemaVersion}

	for _, profileID := range network.SentInvitations {
		file.SentInvitations = append(file.SentInvitations, string(profileID))
	}
	for _, conn := range network.Connections {
		file.Connections = append(file.Connections, connectionSchema{
			ID:              string(conn.ID),
			PrivateNote:     conn.PrivateNote,
			ConnectedAt:     formatTime(conn.ConnectedAt),
			StandardMessage: conn.StandardMessage,
			Profile:         toProfileSchema(conn.Profile),
		})
	}

	return file
}

func toProfileSchema(profile domain.Profile) profileSchema {
	encoded := profileSchema{
		ID:        string(profile.ID),
		Name:      profile.Name,
		Headline:  profile.Headline,
		AvatarURL: profile.AvatarURL,
		Company:   profile.Company,
		Location:  profile.Location,
		Bio:       profile.Bio,
	}
	for _, entry := range profile.Experience {
		encoded.Experience = append(encoded.Experience, experienceSchema{
			Title:            entry.Title,
			Company:          entry.Company,
			Dates:            entry.Dates,
			Location:         entry.Location,
			Responsibilities: entry.Responsibilities,
		})
	}

	return encoded
}

func fromSchema(file fileSchema) (domain.Network, error) {
	var network domain.Network

	for _, profileID := range file.SentInvitations {
		network.MarkInvited(domain.ProfileID(profileID))
	}
	for i, entry := range file.Connections {
		connectedAt, err := parseTime(entry.ConnectedAt)
		if err != nil {
			return domain.Network{}, fmt.Errorf("decode network file: connection %d (%s): %w", i, entry.ID, err)
		}

		network.Connections = append(network.Connections, domain.Connection{
			ID:              domain.ConnectionID(entry.ID),
			Profile:         fromProfileSchema(entry.Profile),
			PrivateNote:     entry.PrivateNote,
			ConnectedAt:     connectedAt,
			StandardMessage: entry.StandardMessage,
		})
	}

	return network, nil
}

func fromProfileSchema(profile profileSchema) domain.Profile {
	decoded := domain.Profile{
		ID:        domain.ProfileID(profile.ID),
		Name:      profile.Name,
		Headline:  profile.Headline,
		AvatarURL: profile.AvatarURL,
		Company:   profile.Company,
		Location:  profile.Location,
		Bio:       profile.Bio,
	}
	for _, entry := range profile.Experience {
		decoded.Experience = append(decoded.Experience, domain.ExperienceEntry{
			Title:            entry.Title,
			Company:          entry.Company,
			Dates:            entry.Dates,
			Location:         entry.Location,
			Responsibilities: entry.Responsibilities,
		})
	}

	return decoded
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse connected_at: %w", err)
	}

	return parsed.UTC(), nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
