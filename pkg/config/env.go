package config

const (
	EnvPrefix = "HOTELOPS"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv   = "HOTELOPS_APP_ENV"
	EnvPort     = "HOTELOPS_APP_PORT"
	EnvLogLevel = "HOTELOPS_LOG_LEVEL"
	EnvDBDriver = "HOTELOPS_DB_DRIVER"
	EnvDBDSN    = "HOTELOPS_DB_DSN"
	EnvDBHost   = "HOTELOPS_DB_HOST"
	EnvDBUser   = "HOTELOPS_DB_USER"
	EnvDBName   = "HOTELOPS_DB_NAME"
	EnvRedisURL = "HOTELOPS_REDIS_URL"
	EnvCORS     = "HOTELOPS_CORS_ORIGINS"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSQLiteDSN = "file:hotel-logistics.db?_foreign_keys=on"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
