package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltKVRoundTrip(t *testing.T) {
	kv, err := NewBoltKV(t.TempDir(), "")
	require.NoError(t, err)
	defer kv.Close()

	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "chapter_niv_GEN.1", []byte(`{"data":"x"}`)))

	data, ok, err := kv.Get(ctx, "chapter_niv_GEN.1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"data":"x"}`), data)
}

func TestBoltKVAbsentKey(t *testing.T) {
	kv, err := NewBoltKV(t.TempDir(), "")
	require.NoError(t, err)
	defer kv.Close()

	data, ok, err := kv.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestBoltKVRemove(t *testing.T) {
	kv, err := NewBoltKV(t.TempDir(), "")
	require.NoError(t, err)
	defer kv.Close()

	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "key", []byte("value")))
	require.NoError(t, kv.Remove(ctx, "key"))

	_, ok, err := kv.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is fine.
	assert.NoError(t, kv.Remove(ctx, "key"))
}

func TestBoltKVPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	kv, err := NewBoltKV(dir, "https://api.example.com/v1")
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "key", []byte("value")))
	require.NoError(t, kv.Close())

	kv, err = NewBoltKV(dir, "https://api.example.com/v1")
	require.NoError(t, err)
	defer kv.Close()

	data, ok, err := kv.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("value"), data)
}

func TestBoltKVSeparatesAPIHosts(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	kv1, err := NewBoltKV(dir, "https://one.example.com")
	require.NoError(t, err)
	defer kv1.Close()

	kv2, err := NewBoltKV(dir, "https://two.example.com")
	require.NoError(t, err)
	defer kv2.Close()

	require.NoError(t, kv1.Set(ctx, "key", []byte("one")))

	_, ok, err := kv2.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoltKVCanceledContext(t *testing.T) {
	kv, err := NewBoltKV(t.TempDir(), "")
	require.NoError(t, err)
	defer kv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = kv.Get(ctx, "key")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, kv.Set(ctx, "key", nil), context.Canceled)
	assert.ErrorIs(t, kv.Remove(ctx, "key"), context.Canceled)
}

func TestHashAPIURLNormalizes(t *testing.T) {
	base := hashAPIURL("https://api.example.com/v1")
	assert.Equal(t, base, hashAPIURL("HTTPS://API.EXAMPLE.COM/v1/"))
	assert.NotEqual(t, base, hashAPIURL("https://other.example.com/v1"))
	assert.Len(t, base, 12)

	// Hashed dirs are flat path components.
	assert.Equal(t, hashAPIURL("x"), filepath.Base(hashAPIURL("x")))
}
