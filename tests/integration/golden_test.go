package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sailfish-platforms/internal/adapters"
	"sailfish-platforms/internal/core"
	"sailfish-platforms/tests/testutil"
)

// TestGoldenBaseline resolves every built-in platform and compares the
// composed flags against a committed golden file.  If the golden file
// does not exist yet it is written so it can be committed.
//
// To update the golden file after an intentional change, delete
// testdata/golden/baseline.flags and re-run the test.
func TestGoldenBaseline(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenPath := filepath.Join(root, "tests", "integration", "testdata", "golden", "baseline.flags")

	baseline, err := adapters.NewBaselineRegistryAdapter().Load(t.Context())
	require.NoError(t, err)
	registry := core.BuildRegistry(baseline, nil)

	var b strings.Builder
	for id := range registry.PlatformIDs() {
		profile, err := registry.Resolve(id)
		require.NoError(t, err, id)
		fmt.Fprintf(&b, "[%s] mcu=%s programmer=%s board_directory=%s\n",
			profile.ID, profile.MCU, profile.Programmer, profile.BoardDirectory)
		for _, flag := range profile.Flags() {
			fmt.Fprintf(&b, "  %s\n", flag)
		}
		if len(profile.Squeeze) > 0 {
			fmt.Fprintf(&b, "  squeeze: %s\n", strings.Join(profile.Squeeze, " "))
		}
	}
	actual := b.String()

	if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
		require.NoError(t, os.MkdirAll(filepath.Dir(goldenPath), 0o755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(actual), 0o644))
		t.Logf("golden file written: %s (commit it)", goldenPath)
		return
	}
	expected, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, string(expected), actual,
		"golden mismatch -- delete testdata/golden/baseline.flags and re-run to regenerate")
}

// TestGoldenBaselineStructure checks properties of the built-in table
// that do not depend on exact define values.
func TestGoldenBaselineStructure(t *testing.T) {
	baseline, err := adapters.NewBaselineRegistryAdapter().Load(t.Context())
	require.NoError(t, err)
	registry := core.BuildRegistry(baseline, nil)

	t.Run("board directories", func(t *testing.T) {
		boards := map[string]struct{}{}
		for id := range registry.PlatformIDs() {
			profile, ok := registry.Profile(id)
			require.True(t, ok)
			boards[profile.BoardDirectory] = struct{}{}
		}
		assert.Equal(t, map[string]struct{}{"azteeg_x3": {}, "mighty_one": {}, "mighty_two": {}}, boards)
	})

	t.Run("programmer follows mcu", func(t *testing.T) {
		for id := range registry.PlatformIDs() {
			profile, _ := registry.Profile(id)
			switch profile.MCU {
			case "atmega1280":
				assert.Equal(t, "stk500v1", profile.Programmer, id)
			case "atmega2560":
				assert.Equal(t, "stk500v2", profile.Programmer, id)
			default:
				t.Errorf("%s: unexpected mcu %s", id, profile.MCU)
			}
		}
	})

	t.Run("every platform names its product", func(t *testing.T) {
		for id := range registry.PlatformIDs() {
			profile, err := registry.Resolve(id)
			require.NoError(t, err)
			_, ok := profile.Define(core.ProductNameSymbol)
			assert.True(t, ok, id)
		}
	})
}
