package config

// Config holds all configuration for the contacts API.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	// LogLevel controls the minimum level of emitted log records.
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// CORSAllowedOrigins lists origins permitted by the CORS middleware.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	// ShutdownTimeoutSeconds bounds how long graceful shutdown may take.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"required,gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"required,gt=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"required,gt=0"`
}

// Token modes accepted by AuthConfig.TokenMode.
const (
	TokenModeOpaque = "opaque"
	TokenModeJWT    = "jwt"
)

// AuthConfig defines session token and password hashing settings.
type AuthConfig struct {
	// TokenMode selects how session tokens are minted: random opaque
	// identifiers or signed JWTs. Both are persisted on the user row.
	TokenMode string `mapstructure:"token_mode" validate:"required,oneof=opaque jwt"`
	// JWTSecret signs tokens in jwt mode. It must be at least 32 characters.
	JWTSecret string `mapstructure:"jwt_secret"`
	// TokenLifetimeMinutes is the JWT expiry. Opaque tokens live until logout.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	// BcryptCost is the work factor used when hashing passwords.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`
}
