package synth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikaridb/proxygen/internal/registry"
)

// shippedTypedefs points at the typedef surface the tool ships with
const shippedTypedefs = "../../typedefs"

func runDefaultPipeline(t *testing.T) (string, *Summary) {
	t.Helper()
	reg := registry.NewTypeRegistry()
	reg.ImportPackage("java.sql")
	require.NoError(t, reg.LoadDirectory(shippedTypedefs))

	root := t.TempDir()
	summary, err := NewPipeline(reg, root, nil).Run()
	require.NoError(t, err)
	return root, summary
}

func artifact(t *testing.T, root, name string) string {
	t.Helper()
	path := filepath.Join(root, "target", "classes", "com", "zaxxer", "hikari", "pool", name)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestPipelineGeneratesAllProxyTypes(t *testing.T) {
	root, summary := runDefaultPipeline(t)

	assert.Equal(t, 6, summary.TypesGenerated)
	assert.Len(t, summary.Artifacts, 7) // six proxies plus the rewired factory
	assert.Greater(t, summary.MethodsForwarded, 0)
	assert.Greater(t, summary.MethodsInherited, 0)
	assert.Greater(t, summary.MethodsSkipped, 0)

	for _, name := range []string{
		"HikariConnection.typedef",
		"HikariStatement.typedef",
		"HikariPreparedStatement.typedef",
		"HikariCallableStatement.typedef",
		"HikariResultSet.typedef",
		"HikariDatabaseMetaData.typedef",
		"ProxyFactory.typedef",
	} {
		_, err := os.Stat(filepath.Join(root, "target", "classes", "com", "zaxxer", "hikari", "pool", name))
		assert.NoError(t, err, name)
	}
}

func TestPipelineConnectionProxyShape(t *testing.T) {
	root, _ := runDefaultPipeline(t)
	content := artifact(t, root, "HikariConnection.typedef")

	assert.Contains(t, content,
		"public final class HikariConnection extends com.zaxxer.hikari.pool.ProxyConnection")
	assert.Contains(t, content, "implements java.sql.Wrapper")
	// Final base methods are never regenerated
	assert.NotContains(t, content, "void close")
	assert.NotContains(t, content, "boolean isClosed")
	// Concrete base overrides call up instead of out
	assert.Contains(t, content,
		"public void commit() throws SQLException { try { super.commit(); } catch (SQLException e) { throw checkException(e); } }")
	// Interface-only methods forward to the delegate
	assert.Contains(t, content,
		"public String nativeSQL(String sql) throws SQLException { try { return delegate.nativeSQL(sql); } catch (SQLException e) { throw checkException(e); } }")
}

func TestPipelineStatementProxiesCastDelegate(t *testing.T) {
	root, _ := runDefaultPipeline(t)

	prepared := artifact(t, root, "HikariPreparedStatement.typedef")
	assert.Contains(t, prepared, "((java.sql.PreparedStatement) delegate).addBatch();")

	callable := artifact(t, root, "HikariCallableStatement.typedef")
	assert.Contains(t, callable, "((java.sql.CallableStatement) delegate).wasNull()")

	// Plain statement forwards without a cast
	statement := artifact(t, root, "HikariStatement.typedef")
	assert.Contains(t, statement, "delegate.cancel();")
	assert.NotContains(t, statement, "((java.sql.Statement) delegate)")
}

func TestPipelineRewiresFactory(t *testing.T) {
	root, _ := runDefaultPipeline(t)
	content := artifact(t, root, "ProxyFactory.typedef")

	assert.Contains(t, content, "public final class ProxyFactory")
	assert.Contains(t, content,
		"{ return new com.zaxxer.hikari.pool.HikariConnection(poolEntry, connection); }")
	assert.Contains(t, content,
		"{ return new com.zaxxer.hikari.pool.HikariResultSet(connection, statement, resultSet); }")
	// Methods outside the rewrite table survive as bodiless declarations
	assert.Contains(t, content,
		"static java.lang.String driverVersion(java.sql.DatabaseMetaData metaData) throws java.sql.SQLException;")
}

func TestPipelineFailsWhenTypesAreMissing(t *testing.T) {
	reg := registry.NewTypeRegistry()
	// Empty registry: the first spec's primary interface cannot resolve
	_, err := NewPipeline(reg, t.TempDir(), nil).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "java.sql.Connection")
}
