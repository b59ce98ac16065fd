package config

// EnvPrefix is passed to envconfig; the explicit BOOKHAVEN_ tags on each
// field keep variable names greppable.
const EnvPrefix = "BOOKHAVEN"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "BOOKHAVEN_APP_ENV"
	EnvAppPort  = "BOOKHAVEN_APP_PORT"
	EnvDBDSN    = "BOOKHAVEN_DB_DSN"
	EnvDBHost   = "BOOKHAVEN_DB_HOST"
	EnvDBUser   = "BOOKHAVEN_DB_USER"
	EnvDBName   = "BOOKHAVEN_DB_NAME"
	EnvRedisURL = "BOOKHAVEN_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
