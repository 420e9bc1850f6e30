package config

import "errors"

// Validation errors returned when the merged configuration is incomplete.
var (
	// ErrNoTokenSignKey indicates the JWT signing key is missing.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")
	// ErrNoTokenIssuer indicates the JWT issuer name is missing.
	ErrNoTokenIssuer = errors.New("token issuer is not configured")
	// ErrNoTokenDuration indicates the JWT lifetime is missing or zero.
	ErrNoTokenDuration = errors.New("token duration is not configured")
	// ErrNoDatabaseDSN indicates the database connection string is missing.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
	// ErrNoClientServerURL indicates the CLI client has no server base URL.
	ErrNoClientServerURL = errors.New("client server URL is not configured")
)
