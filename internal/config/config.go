package config // package config loads application configuration from environment variables

import (
    "log" // log reports configuration problems and halts startup
    "os"  // os provides access to environment variables
)

// Config holds every runtime value the application needs.  Each field maps
// to one environment variable.  The signing secret and the bcrypt cost are
// read here once and handed to the components that need them; nothing else
// in the codebase reads them from the environment.
type Config struct {
    Env         string // application environment (e.g. "dev", "prod")
    Port        string // HTTP port to listen on
    DBUser      string // database username
    DBPass      string // database password (optional)
    DBHost      string // database host address
    DBPort      string // database port number
    DBName      string // database name
    JWTSecret   string // secret used to sign access tokens
    TokenTTLMin int    // access token lifetime in minutes
    BcryptCost  int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must(); optional ones fall
// back to defaults suitable for local development.
func Load() Config {
    return Config{
        Env:         envStr("APP_ENV", "dev"),
        Port:        envStr("APP_PORT", "5000"),
        DBUser:      must("DB_USER"),
        DBPass:      os.Getenv("DB_PASS"), // empty password is allowed
        DBHost:      must("DB_HOST"),
        DBPort:      must("DB_PORT"),
        DBName:      must("DB_NAME"),
        JWTSecret:   must("JWT_SECRET"),
        TokenTTLMin: envInt("TOKEN_TTL_MIN", 60), // one hour
        BcryptCost:  envInt("BCRYPT_COST", 10),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty the application logs a fatal error and exits,
// so a misconfigured process never starts serving requests.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
