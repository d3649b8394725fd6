package synth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikaridb/proxygen/internal/models"
	"github.com/hikaridb/proxygen/internal/templates"
)

func emitResource(t *testing.T, outputRoot string) (*models.GeneratedType, string, string) {
	t.Helper()
	reg := resourceRegistry(t)
	spec := resourceSpec()
	plan := planFor(t, reg, spec)

	emitter := NewEmitter(reg, outputRoot)
	gen, path, err := emitter.Emit(spec, resolve(t, reg, spec.PrimaryInterface), plan)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return gen, path, string(content)
}

func TestEmitWritesArtifactUnderClassesDir(t *testing.T) {
	root := t.TempDir()
	gen, path, content := emitResource(t, root)

	assert.Equal(t, "io.pool.HikariPooledResource", gen.Name)
	assert.Equal(t,
		filepath.Join(root, "target", "classes", "io", "pool", "HikariPooledResource.typedef"),
		path)
	assert.Contains(t, content, templates.Header)
	assert.Contains(t, content, "package io.pool;")
	assert.Contains(t, content,
		"public final class HikariPooledResource extends io.pool.PooledResource implements io.Closeable, io.Flushable, io.Resource {")
}

func TestEmitDeclaresForwardAndInheritMethodsOnly(t *testing.T) {
	gen, _, content := emitResource(t, t.TempDir())

	// flush (inherit) + read, position, reset (forward); close is skipped
	assert.Len(t, gen.Methods, 4)
	assert.NotContains(t, content, "void close")
	assert.Contains(t, content,
		"public int read(byte[] buffer) throws IOException { try { return delegate.read(buffer); } catch (IOException e) { throw checkException(e); } }")
	assert.Contains(t, content,
		"public void flush() throws IOException { try { super.flush(); } catch (IOException e) { throw checkException(e); } }")
	assert.Contains(t, content, "public long position() { return delegate.position(); }")
}

func TestEmitIsIdempotent(t *testing.T) {
	root := t.TempDir()
	_, path, first := emitResource(t, root)

	reg := resourceRegistry(t)
	spec := resourceSpec()
	emitter := NewEmitter(reg, root)
	_, path2, err := emitter.Emit(spec, resolve(t, reg, spec.PrimaryInterface), planFor(t, reg, spec))
	require.NoError(t, err)
	require.Equal(t, path, path2)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, string(second))
}

func TestEmitRejectsDuplicatePlanEntries(t *testing.T) {
	reg := resourceRegistry(t)
	spec := resourceSpec()
	plan := planFor(t, reg, spec)

	var read PlannedMethod
	for _, planned := range plan {
		if planned.Signature.Name == "read" {
			read = planned
		}
	}
	plan = append(plan, read)

	emitter := NewEmitter(reg, t.TempDir())
	_, _, err := emitter.Emit(spec, resolve(t, reg, spec.PrimaryInterface), plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature planned twice")
}

func TestEmitFailsOnUnwritableRoot(t *testing.T) {
	root := t.TempDir()
	// A file where the classes directory should be
	require.NoError(t, os.WriteFile(filepath.Join(root, "target"), []byte("x"), 0o644))

	reg := resourceRegistry(t)
	spec := resourceSpec()
	emitter := NewEmitter(reg, root)
	_, _, err := emitter.Emit(spec, resolve(t, reg, spec.PrimaryInterface), planFor(t, reg, spec))
	require.Error(t, err)

	var persistence *models.PersistenceError
	assert.ErrorAs(t, err, &persistence)
}
