// Package testutil provides shared test helpers for the integration and
// e2e packages under tests/.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root, two levels
// above the calling test package.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// InstallUserPlatforms copies a fixture from fixtures/ into home under the
// default user platform file name for its format and returns that path.
func InstallUserPlatforms(t *testing.T, home string, fixture string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(RepoRoot(t), "fixtures", fixture))
	require.NoError(t, err)
	target := filepath.Join(home, ".sailfish_platforms"+filepath.Ext(fixture))
	require.NoError(t, os.WriteFile(target, data, 0o644))
	return target
}
