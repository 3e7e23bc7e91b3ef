package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/rememble/internal/config"
	"github.com/bnema/rememble/internal/domain"
	"github.com/bnema/rememble/internal/ports"
	"github.com/spf13/viper"
	_ "modernc.org/sqlite"
)

// currentSchemaVersion is stored in the user_version pragma. Bump it when
// adding a migration.
const currentSchemaVersion = 1

const (
	databaseFileName = "network.db"
	databaseDirMode  = 0o700
	databaseFileMode = 0o600
)

type Repository struct {
	db   *sql.DB
	path string
}

var _ ports.NetworkRepository = (*Repository)(nil)

// NewRepository opens the database at store.path, or ~/.rememble/network.db.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(config.KeyStorePath)
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, databaseFileName)
	}

	return Open(path)
}

func Open(path string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), databaseDirMode); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := verifyWALMode(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	_ = os.Chmod(path, databaseFileMode)

	return &Repository{db: db, path: path}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Load(ctx context.Context) (domain.Network, error) {
	var network domain.Network

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, profile_id, profile_name, headline, avatar_url, company, location, bio,
		       experience_json, private_note, standard_message, connected_at
		FROM connections
		ORDER BY position`)
	if err != nil {
		return domain.Network{}, fmt.Errorf("query connections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			conn           domain.Connection
			id, profileID  string
			experienceJSON string
			connectedAt    int64
		)
		if err := rows.Scan(
			&id, &profileID, &conn.Profile.Name, &conn.Profile.Headline, &conn.Profile.AvatarURL,
			&conn.Profile.Company, &conn.Profile.Location, &conn.Profile.Bio,
			&experienceJSON, &conn.PrivateNote, &conn.StandardMessage, &connectedAt,
		); err != nil {
			return domain.Network{}, fmt.Errorf("scan connection: %w", err)
		}

		conn.ID = domain.ConnectionID(id)
		conn.Profile.ID = domain.ProfileID(profileID)
		if connectedAt != 0 {
			conn.ConnectedAt = time.UnixMilli(connectedAt).UTC()
		}
		if experienceJSON != "" {
			if err := json.Unmarshal([]byte(experienceJSON), &conn.Profile.Experience); err != nil {
				return domain.Network{}, fmt.Errorf("decode experience of connection %s: %w", id, err)
			}
		}

		network.Connections = append(network.Connections, conn)
	}
	if err := rows.Err(); err != nil {
		return domain.Network{}, fmt.Errorf("iterate connections: %w", err)
	}

	invitations, err := r.db.QueryContext(ctx, `SELECT profile_id FROM sent_invitations ORDER BY position`)
	if err != nil {
		return domain.Network{}, fmt.Errorf("query sent invitations: %w", err)
	}
	defer invitations.Close()

	for invitations.Next() {
		var profileID string
		if err := invitations.Scan(&profileID); err != nil {
			return domain.Network{}, fmt.Errorf("scan sent invitation: %w", err)
		}
		network.MarkInvited(domain.ProfileID(profileID))
	}
	if err := invitations.Err(); err != nil {
		return domain.Network{}, fmt.Errorf("iterate sent invitations: %w", err)
	}

	return network, nil
}

// Save replaces both tables with the given network in a single transaction.
func (r *Repository) Save(ctx context.Context, network domain.Network) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM connections`); err != nil {
		return fmt.Errorf("clear connections: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM sent_invitations`); err != nil {
		return fmt.Errorf("clear sent invitations: %w", err)
	}

	for i, conn := range network.Connections {
		experienceJSON := ""
		if len(conn.Profile.Experience) > 0 {
			encoded, marshalErr := json.Marshal(conn.Profile.Experience)
			if marshalErr != nil {
				err = marshalErr
				return fmt.Errorf("encode experience of connection %s: %w", conn.ID, err)
			}
			experienceJSON = string(encoded)
		}

		var connectedAt int64
		if !conn.ConnectedAt.IsZero() {
			connectedAt = conn.ConnectedAt.UnixMilli()
		}

		if _, err = tx.ExecContext(ctx, `
			INSERT INTO connections (
			  id, position, profile_id, profile_name, headline, avatar_url, company, location, bio,
			  experience_json, private_note, standard_message, connected_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			string(conn.ID), i, string(conn.Profile.ID), conn.Profile.Name, conn.Profile.Headline,
			conn.Profile.AvatarURL, conn.Profile.Company, conn.Profile.Location, conn.Profile.Bio,
			experienceJSON, conn.PrivateNote, conn.StandardMessage, connectedAt,
		); err != nil {
			return fmt.Errorf("insert connection %s: %w", conn.ID, err)
		}
	}

	for i, profileID := range network.SentInvitations {
		if _, err = tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO sent_invitations (profile_id, position) VALUES (?, ?)`,
			string(profileID), i,
		); err != nil {
			return fmt.Errorf("insert sent invitation %s: %w", profileID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit network: %w", err)
	}

	return nil
}

func migrate(db *sql.DB) error {
	version, err := getUserVersion(db)
	if err != nil {
		return err
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported network schema version %d (current %d)", version, currentSchemaVersion)
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS connections (
		  id               TEXT PRIMARY KEY,
		  position         INTEGER NOT NULL,
		  profile_id       TEXT NOT NULL,
		  profile_name     TEXT NOT NULL,
		  headline         TEXT NOT NULL DEFAULT '',
		  avatar_url       TEXT NOT NULL DEFAULT '',
		  company          TEXT NOT NULL DEFAULT '',
		  location         TEXT NOT NULL DEFAULT '',
		  bio              TEXT NOT NULL DEFAULT '',
		  experience_json  TEXT NOT NULL DEFAULT '',
		  private_note     TEXT NOT NULL DEFAULT '',
		  standard_message TEXT NOT NULL DEFAULT '',
		  connected_at     INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_connections_profile_id ON connections(profile_id);

		CREATE TABLE IF NOT EXISTS sent_invitations (
		  profile_id TEXT PRIMARY KEY,
		  position   INTEGER NOT NULL
		);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := setUserVersion(db, 1); err != nil {
			return err
		}
	}

	return nil
}

func verifyWALMode(db *sql.DB) error {
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		return fmt.Errorf("verify journal mode: %w", err)
	}
	if journalMode != "wal" {
		return fmt.Errorf("expected WAL mode, got %s", journalMode)
	}

	return nil
}

func getUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("get user_version: %w", err)
	}

	return version, nil
}

func setUserVersion(db *sql.DB, version int) error {
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}
