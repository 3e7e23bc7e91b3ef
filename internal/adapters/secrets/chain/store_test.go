package chain

import (
	"context"
	"errors"
	"testing"

	passstore "github.com/bnema/rememble/internal/adapters/secrets/pass"
	"github.com/bnema/rememble/internal/domain"
	portmocks "github.com/bnema/rememble/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const apiKeyKey = "rememble/genai/api_key"

func newTestStore(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	return store, primary, fallback
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockSecretStore(t))
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStore(portmocks.NewMockSecretStore(t), nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, apiKeyKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), apiKeyKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPassUnavailable(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, apiKeyKey).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, apiKeyKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), apiKeyKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReportsNotFoundWhenNoBackendHasTheKey(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, apiKeyKey).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, apiKeyKey).Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), apiKeyKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, apiKeyKey).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, apiKeyKey).Return("", errors.New("file failed")).Once()

	_, err := store.Get(context.Background(), apiKeyKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Put(mock.Anything, apiKeyKey, "secret").Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Put(mock.Anything, apiKeyKey, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), apiKeyKey, "secret"))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Put(mock.Anything, apiKeyKey, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), apiKeyKey, "secret"))
}

func TestStoreDeleteRemovesFromBothBackends(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, apiKeyKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, apiKeyKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), apiKeyKey))
}

func TestStoreDeleteIgnoresUnavailablePass(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, apiKeyKey).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Delete(mock.Anything, apiKeyKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), apiKeyKey))
}

func TestStoreDeleteJoinsBackendErrors(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, apiKeyKey).Return(errors.New("gpg locked")).Once()
	fallback.EXPECT().Delete(mock.Anything, apiKeyKey).Return(nil).Once()

	err := store.Delete(context.Background(), apiKeyKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend delete failed: gpg locked")
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, apiKeyKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), apiKeyKey)
	require.ErrorIs(t, err, context.Canceled)
}
