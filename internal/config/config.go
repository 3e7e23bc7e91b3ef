package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	dirName    = ".rememble"
	envPrefix  = "REMEMBLE"

	KeyStoreBackend          = "store.backend"
	KeyStorePath             = "store.path"
	KeyCatalogPath           = "catalog.path"
	KeyNotesMaxLength        = "notes.max_length"
	KeyNotesMaxMessageLength = "notes.max_message_length"
	KeyAssistantModel        = "assistant.model"
	KeyLogLevel              = "log.level"
	KeySecretsPassCommand    = "secrets.pass_command"

	BackendTOML   = "toml"
	BackendSQLite = "sqlite"

	DefaultAssistantModel = "gemini-2.5-flash"
)

// Dir is the per-user state directory, ~/.rememble.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, dirName), nil
}

// Load reads config.toml from the state directory, or from file when set,
// and layers REMEMBLE_* environment variables on top. A missing default
// config file is not an error.
func Load(cfg *viper.Viper, file string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	cfg.SetConfigType(configType)
	if file != "" {
		cfg.SetConfigFile(file)
	} else {
		cfg.SetConfigName(configName)
		cfg.AddConfigPath(dir)
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(KeyStoreBackend, BackendTOML)
	cfg.SetDefault(KeyNotesMaxLength, 500)
	cfg.SetDefault(KeyNotesMaxMessageLength, 300)
	cfg.SetDefault(KeyAssistantModel, DefaultAssistantModel)
	cfg.SetDefault(KeyLogLevel, "warn")
	cfg.SetDefault(KeySecretsPassCommand, "pass")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	switch backend := cfg.GetString(KeyStoreBackend); backend {
	case BackendTOML, BackendSQLite:
	default:
		return fmt.Errorf("unsupported store backend %q (want %s or %s)", backend, BackendTOML, BackendSQLite)
	}

	return nil
}
