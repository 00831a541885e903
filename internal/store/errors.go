package store

import "errors"

// Sentinel errors returned by [NewConnectPostgres]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidDatabaseURI is returned when the configuration's database URI
	// cannot be parsed as a PostgreSQL connection string.
	ErrInvalidDatabaseURI = errors.New("invalid database uri")

	// ErrConnecting is returned when the database handle cannot be opened or
	// the server does not answer a ping.
	ErrConnecting = errors.New("error connecting database")

	// ErrAuthentication is returned when the server rejects the configured
	// user or password (SQLSTATE 28000, 28P01).
	ErrAuthentication = errors.New("database authentication failed")

	// ErrDatabaseNotFound is returned when the configured database does not
	// exist on the server (SQLSTATE 3D000).
	ErrDatabaseNotFound = errors.New("database does not exist")
)
