package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"blossom/internal/session"
)

func TestSessionPersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	s := session.New(path)
	require.NoError(t, s.Load())
	require.False(t, s.IsAuthenticated())

	require.NoError(t, s.Save("abc"))
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "abc", s.Token())

	// a fresh Session over the same file sees the token (restart analog)
	s2 := session.New(path)
	require.NoError(t, s2.Load())
	require.True(t, s2.IsAuthenticated())
	require.Equal(t, "abc", s2.Token())
}

func TestLogoutAlwaysUnauthenticates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := session.New(path)

	require.NoError(t, s.Save("abc"))
	require.NoError(t, s.Clear())
	require.False(t, s.IsAuthenticated())

	// clear is idempotent, including with no file at all
	require.NoError(t, s.Clear())
	require.False(t, s.IsAuthenticated())

	s2 := session.New(path)
	require.NoError(t, s2.Load())
	require.False(t, s2.IsAuthenticated())
}
