package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
}

// StorageConfig contains the file paths owned by the persistence layer.
type StorageConfig struct {
	// UsersFile is the flat-file user table, rewritten in full on save.
	UsersFile string `mapstructure:"users_file" validate:"required"`
	// AuditFile is the append-only human-readable action log.
	AuditFile string `mapstructure:"audit_file" validate:"required"`
}

// LoggingConfig contains the structured-logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}
