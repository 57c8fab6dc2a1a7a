package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip exercises the Store contract shared by every backend.
func roundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "@allblack:userName")
	require.NoError(t, err)
	assert.False(t, ok, "missing key reported as present")

	require.NoError(t, s.Set(ctx, "@allblack:userName", "Ana"))
	v, ok, err := s.Get(ctx, "@allblack:userName")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ana", v)

	require.NoError(t, s.Set(ctx, "@allblack:userName", "Bia"))
	v, _, err = s.Get(ctx, "@allblack:userName")
	require.NoError(t, err)
	assert.Equal(t, "Bia", v, "last write wins")
}

// TestMemoryRoundTrip verifies the in-memory backend.
func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	roundTrip(t, s)
}

// TestSQLiteRoundTrip verifies the SQLite backend and that values survive a
// reopen of the same directory.
func TestSQLiteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenSQLite(dir)
	require.NoError(t, err)
	roundTrip(t, s)
	require.NoError(t, s.Set(context.Background(), "@allblack:completedWorkouts", `["mon"]`))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(dir)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(context.Background(), "@allblack:completedWorkouts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["mon"]`, v)
}

// TestRedisGetMissing verifies redis.Nil is reported as an absent key rather
// than an error.
func TestRedisGetMissing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedis(db)

	mock.ExpectGet("@allblack:userName").SetErr(redis.Nil)
	v, ok, err := s.Get(context.Background(), "@allblack:userName")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestRedisSetGet verifies values are written without expiry and read back.
func TestRedisSetGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedis(db)
	ctx := context.Background()

	mock.ExpectSet("@allblack:userName", "Ana", 0).SetVal("OK")
	require.NoError(t, s.Set(ctx, "@allblack:userName", "Ana"))

	mock.ExpectGet("@allblack:userName").SetVal("Ana")
	v, ok, err := s.Get(ctx, "@allblack:userName")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ana", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestRedisErrors verifies transport failures are returned wrapped.
func TestRedisErrors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedis(db)
	ctx := context.Background()
	boom := errors.New("connection refused")

	mock.ExpectGet("k").SetErr(boom)
	_, _, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)

	mock.ExpectSet("k", "v", 0).SetErr(boom)
	assert.ErrorIs(t, s.Set(ctx, "k", "v"), boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestOpenBackends verifies backend selection by name.
func TestOpenBackends(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Options{})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(ctx, Options{Backend: BackendSQLite, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, Options{Backend: "etcd"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
