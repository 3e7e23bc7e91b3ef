package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/rememble/internal/adapters/secrets/file"
	passstore "github.com/bnema/rememble/internal/adapters/secrets/pass"
	"github.com/bnema/rememble/internal/domain"
	"github.com/bnema/rememble/internal/ports"
)

// Store reads and writes through primary and falls back to fallback when
// primary fails. Deletes go to both so a removed secret cannot resurface.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(passCommand string, fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(passCommand), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if isMissing(err) && isMissing(fallbackErr) {
		return "", fmt.Errorf("%w: %q", domain.ErrSecretNotFound, key)
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}
	if errors.Is(err, passstore.ErrUnavailable) {
		err = nil
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	if err == nil && fallbackErr == nil {
		return nil
	}

	return errors.Join(wrapBackend("primary", err), wrapBackend("fallback", fallbackErr))
}

func wrapBackend(name string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s backend delete failed: %w", name, err)
}

// isMissing treats an unavailable backend like an absent entry.
func isMissing(err error) bool {
	return errors.Is(err, domain.ErrSecretNotFound) || errors.Is(err, passstore.ErrUnavailable)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
