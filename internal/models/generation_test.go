package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedNameStripsProxyPrefix(t *testing.T) {
	spec := ProxySpec{
		PrimaryInterface: "java.sql.Connection",
		BaseType:         "com.zaxxer.hikari.pool.ProxyConnection",
	}
	assert.Equal(t, "com.zaxxer.hikari.pool.HikariConnection", spec.GeneratedName())
}

func TestGeneratedNameWithoutProxyPrefix(t *testing.T) {
	spec := ProxySpec{BaseType: "io.pool.PooledResource"}
	assert.Equal(t, "io.pool.HikariPooledResource", spec.GeneratedName())
}

func TestGeneratedNameUnqualifiedBase(t *testing.T) {
	spec := ProxySpec{BaseType: "ProxyStatement"}
	assert.Equal(t, "HikariStatement", spec.GeneratedName())
}

func TestFactoryMethodName(t *testing.T) {
	spec := ProxySpec{BaseType: "com.zaxxer.hikari.pool.ProxyResultSet"}
	assert.Equal(t, "getProxyResultSet", spec.FactoryMethod())
}

func TestGeneratedTypeNameParts(t *testing.T) {
	gen := &GeneratedType{Name: "com.zaxxer.hikari.pool.HikariConnection"}
	assert.Equal(t, "com.zaxxer.hikari.pool", gen.Package())
	assert.Equal(t, "HikariConnection", gen.SimpleName())
}

func TestSignatureOf(t *testing.T) {
	method := MethodDescriptor{
		Name:       "getTables",
		ReturnType: "ResultSet",
		Parameters: []Parameter{
			{Type: "String", Name: "catalog"},
			{Type: "String[]", Name: "types"},
		},
	}

	sig := SignatureOf(&method)
	assert.Equal(t, MethodSignature{Name: "getTables", Params: "String,String[]"}, sig)
	assert.Equal(t, "getTables(String,String[])", sig.String())
}

func TestSignatureIgnoresParameterNames(t *testing.T) {
	a := MethodDescriptor{Name: "seek", Parameters: []Parameter{{Type: "long", Name: "offset"}}}
	b := MethodDescriptor{Name: "seek", Parameters: []Parameter{{Type: "long", Name: "position"}}}
	assert.Equal(t, SignatureOf(&a), SignatureOf(&b))
}

func TestModifierSetOrderAndDedup(t *testing.T) {
	set := NewModifierSet(PublicModifier, FinalModifier, PublicModifier)
	assert.Equal(t, "public final", set.String())
	assert.True(t, set.Has(FinalModifier))
	assert.False(t, set.Has(AbstractModifier))

	with := set.With(StaticModifier)
	assert.Equal(t, "public final static", with.String())
	// The original set is unchanged
	assert.Equal(t, "public final", set.String())
}

func TestParseModifier(t *testing.T) {
	m, ok := ParseModifier("default")
	assert.True(t, ok)
	assert.Equal(t, DefaultModifier, m)

	_, ok = ParseModifier("synchronized")
	assert.False(t, ok)
}
