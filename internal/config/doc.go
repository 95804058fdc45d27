// Package config manages application configuration for the API.
//
// Configuration comes from environment variables. A .env file (path from
// ENV_FILE, default ".env") is loaded first with godotenv when it exists;
// variables already present in the process environment take precedence.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Configuration Groups
//
//   - ServerConfig: port, environment, timeouts, CORS origins
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: HS256 secret, lifetime in hours, issuer
//   - RateLimitConfig: per-client request budgets
//   - MetricsConfig: Prometheus namespace
//   - LogConfig: slog level
//
// # Environment Variables
//
//	SERVER_PORT          - HTTP port (default: 8080)
//	SERVER_ENV           - development, production or test
//	CORS_ORIGINS         - comma separated origins (default: *)
//	DB_HOST, DB_PORT     - SurrealDB address (default: localhost:8000)
//	DB_NAMESPACE         - namespace (default: ascend)
//	JWT_SECRET           - signing secret, 32+ bytes in production
//	JWT_EXPIRATION_HOURS - token lifetime (default: 24)
//	RATE_LIMIT_RPM       - requests per minute per client (default: 100)
//	RATE_LIMIT_AUTH_RPM  - auth requests per minute per client (default: 10)
//	LOG_LEVEL            - debug, info, warn, error (default: info)
package config
