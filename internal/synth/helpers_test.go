package synth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hikaridb/proxygen/internal/models"
	"github.com/hikaridb/proxygen/internal/registry"
)

// The resource fixture covers every dispatch shape: a final base method (close),
// a concrete base override (flush), forwarded calls with and without a throws
// clause, and a default interface method.
const langFixture = `
package java.lang;

public class Exception {
}
`

const ioFixture = `
package io;

public class IOException extends java.lang.Exception {
}

public interface Closeable {
    void close() throws IOException;
}

public interface Flushable {
    void flush() throws IOException;
}

public interface Resource extends Closeable, Flushable {
    int read(byte[] buffer) throws IOException;
    long position();
    default void reset() throws IOException;
}
`

const poolFixture = `
package io.pool;

public abstract class PooledResource implements io.Resource {
    public final void close() throws io.IOException;
    public void flush() throws io.IOException;
    protected final io.IOException checkException(io.IOException e);
}

public final class ResourceFactory {
    static io.Resource getProxyPooledResource(PoolEntry entry, io.Resource resource);
    static java.lang.String poolVersion(io.Resource resource);
}
`

func resourceRegistry(t *testing.T) *registry.TypeRegistry {
	t.Helper()
	reg := registry.NewTypeRegistry()
	require.NoError(t, reg.AddSource("lang.typedef", langFixture))
	require.NoError(t, reg.AddSource("io.typedef", ioFixture))
	require.NoError(t, reg.AddSource("pool.typedef", poolFixture))
	return reg
}

func resourceSpec() models.ProxySpec {
	return models.ProxySpec{
		PrimaryInterface: "io.Resource",
		BaseType:         "io.pool.PooledResource",
		ErrorType:        "io.IOException",
	}
}

func resolve(t *testing.T, reg *registry.TypeRegistry, name string) *models.TypeDescriptor {
	t.Helper()
	td, err := reg.Resolve(name)
	require.NoError(t, err)
	return td
}

func planFor(t *testing.T, reg *registry.TypeRegistry, spec models.ProxySpec) []PlannedMethod {
	t.Helper()
	primary := resolve(t, reg, spec.PrimaryInterface)
	base := resolve(t, reg, spec.BaseType)
	plan, err := Plan(reg, primary, base)
	require.NoError(t, err)
	return plan
}

func plannedByName(plan []PlannedMethod) map[string]PlannedMethod {
	out := make(map[string]PlannedMethod, len(plan))
	for _, p := range plan {
		out[p.Signature.Name] = p
	}
	return out
}
