package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/starter/internal/adapters/cas"
	"go.trai.ch/starter/internal/core/domain"
)

func sampleResult(fingerprint string) domain.GenerationResult {
	return domain.GenerationResult{
		RequestID:   "req-1",
		Name:        "demo",
		BootVersion: "1.5.2.RELEASE",
		Fingerprint: fingerprint,
		Dependencies: []domain.Dependency{
			domain.MustDependency("security", "org.springframework.boot", "spring-boot-starter-security", domain.ScopeCompile),
			domain.MustDependency("security-test", "org.springframework.security", "spring-security-test", domain.ScopeTest),
		},
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	store := cas.NewStore(filepath.Join(t.TempDir(), "store"))
	result := sampleResult("0123456789abcdef")

	require.NoError(t, store.Put(result))

	got, err := store.Get("0123456789abcdef")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, result, *got)
	assert.False(t, got.Cached)

	entries, err := os.ReadDir(store.Root())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "0123456789abcdef.json", entries[0].Name())
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	store := cas.NewStore(t.TempDir())

	got, err := store.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := cas.NewStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o600))

	_, err := store.Get("bad")
	require.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_PutOverwrites(t *testing.T) {
	t.Parallel()

	store := cas.NewStore(t.TempDir())
	first := sampleResult("abc")
	second := sampleResult("abc")
	second.RequestID = "req-2"

	require.NoError(t, store.Put(first))
	require.NoError(t, store.Put(second))

	got, err := store.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, "req-2", got.RequestID)
}

func TestStore_PutCreateFails(t *testing.T) {
	t.Parallel()

	// A regular file where the store directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := cas.NewStore(filepath.Join(blocker, "store")).Put(sampleResult("abc"))
	require.ErrorContains(t, err, domain.ErrStoreCreateFailed.Error())
}

func TestStore_Clean(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "store")
	store := cas.NewStore(dir)
	require.NoError(t, store.Put(sampleResult("abc")))

	require.NoError(t, store.Clean())
	_, err := os.Stat(dir)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Cleaning an absent store is a no-op.
	require.NoError(t, store.Clean())
}

func TestNewStore_DefaultRoot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.DefaultStorePath(), cas.NewStore("").Root())
}
