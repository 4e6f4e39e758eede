package config

import "errors"

var (
	errNoDatabaseDSN  = errors.New("database DSN is required (STORAGE_DB_DATABASE_URI or -d)")
	errNoTokenSignKey = errors.New("token sign key is required when auth is enabled (AUTH_TOKEN_SIGN_KEY or -token-sign-key)")
)

// validate checks that the merged [Config] satisfies all invariants the
// process needs at startup.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return errNoDatabaseDSN
	}

	if cfg.Auth.Enabled && cfg.Auth.TokenSignKey == "" {
		return errNoTokenSignKey
	}

	return nil
}
