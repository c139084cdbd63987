package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	values map[string]string
	sets   int
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{values: make(map[string]string)}
}

func (s *memoryStorage) Get(key string) (string, bool, error) {
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *memoryStorage) Set(key, value string) error {
	s.sets++
	s.values[key] = value
	return nil
}

func TestEnsureDeviceIDCreatesOnce(t *testing.T) {
	storage := newMemoryStorage()
	provider := NewProvider(storage)

	first, err := provider.EnsureDeviceID()
	require.NoError(t, err)
	assert.Len(t, first, 14)

	second, err := provider.EnsureDeviceID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, storage.sets)
}

func TestEnsureDeviceIDReusesStored(t *testing.T) {
	storage := newMemoryStorage()
	storage.values[deviceIDKey] = "existing-device"

	provider := NewProvider(storage)
	value, err := provider.EnsureDeviceID()
	require.NoError(t, err)
	assert.Equal(t, "existing-device", value)
	assert.Zero(t, storage.sets)
}

func TestEnsureDeviceIDSurvivesNewProvider(t *testing.T) {
	storage := newMemoryStorage()

	first, err := NewProvider(storage).EnsureDeviceID()
	require.NoError(t, err)

	// Новый провайдер поверх того же хранилища видит тот же идентификатор
	second, err := NewProvider(storage).EnsureDeviceID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileStorageRoundTrip(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	_, ok, err := storage.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, storage.Set("key", "value"))

	value, ok, err := storage.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", value)
}

func TestFileStorageBackedProvider(t *testing.T) {
	dir := t.TempDir()

	first, err := NewProvider(NewFileStorage(dir)).EnsureDeviceID()
	require.NoError(t, err)

	second, err := NewProvider(NewFileStorage(dir)).EnsureDeviceID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
