package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the server needs at startup.
//
// Client-only fields are not checked here; the client binary validates
// its own view via [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress != "" {
		if cfg.App.TokenSignKey == "" {
			return ErrNoTokenSignKey
		}
		if cfg.App.TokenIssuer == "" {
			return ErrNoTokenIssuer
		}
		if cfg.App.TokenDuration == 0 {
			return ErrNoTokenDuration
		}
		if cfg.Storage.DB.DSN == "" {
			return ErrNoDatabaseDSN
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" {
		return ErrNoClientServerURL
	}

	return nil
}
