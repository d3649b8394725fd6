package synth

import "github.com/hikaridb/proxygen/internal/models"

// DispatcherType is the factory type whose construction methods are rewired to
// return the generated proxies
const DispatcherType = "com.zaxxer.hikari.pool.ProxyFactory"

// recoverableError is the checked error type the translation wrapper catches
// and converts
const recoverableError = "java.sql.SQLException"

const poolPackage = "com.zaxxer.hikari.pool"

// DefaultSpecs returns the fixed build table: the six proxy types the tool
// generates. The tool is not generic over an arbitrary interface list; the
// mapping from interface to base type to recoverable error is decided at build
// time. The two statement specs need the delegate cast because their delegate
// field is declared as the plain Statement type.
func DefaultSpecs() []models.ProxySpec {
	return []models.ProxySpec{
		{PrimaryInterface: "java.sql.Connection", BaseType: poolPackage + ".ProxyConnection", ErrorType: recoverableError},
		{PrimaryInterface: "java.sql.Statement", BaseType: poolPackage + ".ProxyStatement", ErrorType: recoverableError},
		{PrimaryInterface: "java.sql.ResultSet", BaseType: poolPackage + ".ProxyResultSet", ErrorType: recoverableError},
		{PrimaryInterface: "java.sql.DatabaseMetaData", BaseType: poolPackage + ".ProxyDatabaseMetaData", ErrorType: recoverableError},
		{PrimaryInterface: "java.sql.PreparedStatement", BaseType: poolPackage + ".ProxyPreparedStatement", CastDelegate: true, ErrorType: recoverableError},
		{PrimaryInterface: "java.sql.CallableStatement", BaseType: poolPackage + ".ProxyCallableStatement", CastDelegate: true, ErrorType: recoverableError},
	}
}
