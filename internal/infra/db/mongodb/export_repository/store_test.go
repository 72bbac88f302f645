package export_repository

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*ExportStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewExportStoreWithClient(client), server
}

func TestExportStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	payload := []byte{0x50, 0x4b, 0x03, 0x04, 0x00, 0xff}
	require.NoError(t, store.Save("abc-123", payload, time.Minute))

	found, err := store.Find("abc-123")
	require.NoError(t, err)
	assert.Equal(t, payload, found, "binary payload survives the base64 staging")
}

func TestExportStoreMissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	found, err := store.Find("never-saved")
	require.NoError(t, err)
	assert.Nil(t, found, "absent exports answer nil, not an error")
}

func TestExportStoreExpiry(t *testing.T) {
	store, server := newTestStore(t)

	require.NoError(t, store.Save("abc-123", []byte("data"), time.Minute))
	server.FastForward(2 * time.Minute)

	found, err := store.Find("abc-123")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestExportStoreKeysAreNamespaced(t *testing.T) {
	store, server := newTestStore(t)

	require.NoError(t, store.Save("abc-123", []byte("data"), time.Minute))
	assert.True(t, server.Exists("export:abc-123"))
}
