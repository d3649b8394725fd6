package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikaridb/proxygen/internal/utils"
)

// setupProject lays out a minimal project whose config points at the typedef
// surface the tool ships with
func setupProject(t *testing.T) string {
	t.Helper()

	typedefs, err := filepath.Abs("../../typedefs")
	require.NoError(t, err)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"),
		[]byte("module example.com/demo\n\ngo 1.25\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultConfigFile),
		[]byte(fmt.Sprintf("classpath:\n  - %s\n", typedefs)), 0o644))

	return root
}

// chdir switches the working directory for the duration of the test; it
// stands in for t.Chdir, which needs a newer Go release than this toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}

func TestGeneratorRun(t *testing.T) {
	root := setupProject(t)
	chdir(t, root)

	generator := NewGenerator(utils.NewQuietDiagnostics())
	require.NoError(t, generator.Run(RunConfig{}))

	summary := generator.Summary()
	assert.Equal(t, 6, summary.TypesGenerated)
	assert.Len(t, summary.Artifacts, 7)
	assert.Greater(t, summary.MethodsForwarded, 0)

	_, err := os.Stat(filepath.Join(root,
		"target", "classes", "com", "zaxxer", "hikari", "pool", "HikariConnection.typedef"))
	assert.NoError(t, err)
}

func TestGeneratorOutputRootOverride(t *testing.T) {
	root := setupProject(t)
	chdir(t, root)

	override := t.TempDir()
	generator := NewGenerator(utils.NewQuietDiagnostics())
	require.NoError(t, generator.Run(RunConfig{OutputRoot: override}))

	_, err := os.Stat(filepath.Join(override,
		"target", "classes", "com", "zaxxer", "hikari", "pool", "ProxyFactory.typedef"))
	assert.NoError(t, err)

	// Nothing lands under the project root
	_, err = os.Stat(filepath.Join(root, "target"))
	assert.True(t, os.IsNotExist(err))
}

func TestGeneratorFailsOnMissingClasspath(t *testing.T) {
	root := setupProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultConfigFile),
		[]byte("classpath:\n  - missing-defs\n"), 0o644))
	chdir(t, root)

	generator := NewGenerator(utils.NewQuietDiagnostics())
	err := generator.Run(RunConfig{})
	require.Error(t, err)
}
