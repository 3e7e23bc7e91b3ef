package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	genaiassistant "github.com/bnema/rememble/internal/adapters/assistant/genai"
	yamlcatalog "github.com/bnema/rememble/internal/adapters/catalog/yaml"
	memoryrepo "github.com/bnema/rememble/internal/adapters/repo/memory"
	sqliterepo "github.com/bnema/rememble/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/rememble/internal/adapters/repo/toml"
	chainstore "github.com/bnema/rememble/internal/adapters/secrets/chain"
	"github.com/bnema/rememble/internal/application"
	"github.com/bnema/rememble/internal/config"
	"github.com/bnema/rememble/internal/domain"
	"github.com/bnema/rememble/internal/ports"
)

type app struct {
	cfg         *viper.Viper
	logger      *zap.Logger
	store       *application.Service
	notes       *application.NoteAssistantService
	secretStore ports.SecretStore
	keySource   string
	storePath   string
	now         func() time.Time
	closers     []func() error
}

func (a *app) wire(ctx context.Context, opts rootOptions, errOut io.Writer) error {
	cfg := viper.New()
	if err := config.Load(cfg, opts.configFile); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.GetString(config.KeyLogLevel), opts.verbose, errOut)
	if err != nil {
		return err
	}

	repo, storePath, err := a.wireRepository(cfg, opts.ephemeral)
	if err != nil {
		return err
	}

	catalog, err := yamlcatalog.NewCatalog(cfg)
	if err != nil {
		return fmt.Errorf("wire profile catalog: %w", err)
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	secretStore, err := chainstore.NewPassFirstWithFileFallback(cfg.GetString(config.KeySecretsPassCommand), filepath.Join(dir, "secrets"))
	if err != nil {
		return fmt.Errorf("wire secret store chain: %w", err)
	}

	assistant, keySource := wireAssistant(ctx, cfg, secretStore, logger)

	store := application.NewService(repo, catalog, ports.SystemClock{}, logger,
		application.WithMaxNoteLength(cfg.GetInt(config.KeyNotesMaxLength)),
		application.WithMaxMessageLength(cfg.GetInt(config.KeyNotesMaxMessageLength)),
	)
	if report := store.Load(ctx); report.Fallback {
		_, _ = fmt.Fprintf(errOut, "warning: could not read %s, starting from an empty network: %v\n", storePath, report.Err)
	}

	a.cfg = cfg
	a.logger = logger
	a.store = store
	a.secretStore = secretStore
	a.keySource = keySource
	a.storePath = storePath
	a.now = time.Now
	a.notes = application.NewNoteAssistantService(assistant, logger, store.MaxNoteLength())

	return nil
}

func (a *app) wireRepository(cfg *viper.Viper, ephemeral bool) (ports.NetworkRepository, string, error) {
	if ephemeral {
		return memoryrepo.NewRepository(domain.Network{}), "memory", nil
	}

	switch cfg.GetString(config.KeyStoreBackend) {
	case config.BackendSQLite:
		repo, err := sqliterepo.NewRepository(cfg)
		if err != nil {
			return nil, "", fmt.Errorf("wire sqlite network repository: %w", err)
		}
		a.closers = append(a.closers, repo.Close)
		return repo, repo.Path(), nil
	default:
		repo, err := tomlrepo.NewRepository(cfg)
		if err != nil {
			return nil, "", fmt.Errorf("wire toml network repository: %w", err)
		}
		return repo, repo.Path(), nil
	}
}

// wireAssistant returns nil when no API key is configured; note commands then
// use their fallbacks.
func wireAssistant(ctx context.Context, cfg *viper.Viper, secrets ports.SecretStore, logger *zap.Logger) (ports.NoteAssistant, string) {
	key, source, err := genaiassistant.ResolveAPIKey(ctx, os.Getenv, secrets)
	if err != nil {
		logger.Warn("resolve assistant API key failed", zap.Error(err))
		return nil, ""
	}
	if key == "" {
		logger.Debug("no assistant API key configured")
		return nil, ""
	}

	assistant, err := genaiassistant.New(ctx, key, cfg.GetString(config.KeyAssistantModel), logger)
	if err != nil {
		logger.Warn("create assistant failed", zap.Error(err))
		return nil, ""
	}
	logger.Debug("assistant enabled", zap.String("model", assistant.Model()), zap.String("key_source", source))

	return assistant, source
}

func (a *app) close() {
	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	a.closers = nil

	if a.logger != nil {
		if err := errors.Join(errs...); err != nil {
			a.logger.Warn("close resources failed", zap.Error(err))
		}
		_ = a.logger.Sync()
	}
}

// warnIfNotPersisted reports a mutation that is visible now but was not
// written to the store.
func (a *app) warnIfNotPersisted(errOut io.Writer) {
	if err := a.store.LastPersistError(); err != nil {
		a.warnPersistFailure(errOut, err)
	}
}

func (a *app) warnPersistFailure(errOut io.Writer, err error) {
	_, _ = fmt.Fprintf(errOut, "warning: change kept for this run only, could not write %s: %v\n", a.storePath, err)
}
