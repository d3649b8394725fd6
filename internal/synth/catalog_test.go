package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikaridb/proxygen/internal/models"
)

func TestFinalSignaturesOnBase(t *testing.T) {
	reg := resourceRegistry(t)

	finals, err := FinalSignatures(reg, resolve(t, reg, "io.pool.PooledResource"))
	require.NoError(t, err)

	assert.True(t, finals[models.MethodSignature{Name: "close", Params: ""}])
	assert.True(t, finals[models.MethodSignature{Name: "checkException", Params: "io.IOException"}])
	// Concrete but not final
	assert.False(t, finals[models.MethodSignature{Name: "flush", Params: ""}])
	// Declared only on the interface
	assert.False(t, finals[models.MethodSignature{Name: "read", Params: "byte[]"}])
}

func TestFinalSignaturesIncludeInherited(t *testing.T) {
	reg := resourceRegistry(t)
	require.NoError(t, reg.AddSource("sub.typedef", `
package io.pool;

public abstract class TracingResource extends PooledResource {
    public final long position();
}
`))

	finals, err := FinalSignatures(reg, resolve(t, reg, "io.pool.TracingResource"))
	require.NoError(t, err)

	// Declared final here and final up the superclass chain
	assert.True(t, finals[models.MethodSignature{Name: "position", Params: ""}])
	assert.True(t, finals[models.MethodSignature{Name: "close", Params: ""}])
}
