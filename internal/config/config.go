package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time expresses the session lifetime
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  JWTSecret has no fallback on purpose: a
// deployment that forgets to set it must fail at startup rather than
// sign tokens with a known default.
type Config struct {
	Env        string        // application environment (e.g. "dev", "prod")
	Port       string        // HTTP port to listen on
	DBFile     string        // path of the JSON document file
	JWTSecret  string        // secret used to sign session tokens
	SessionTTL time.Duration // lifetime of issued session tokens
	BcryptCost int           // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:        must("APP_ENV"),
		Port:       must("APP_PORT"),
		DBFile:     must("DB_FILE"),
		JWTSecret:  must("JWT_SECRET"),
		SessionTTL: time.Duration(mustInt("SESSION_TTL_HOURS")) * time.Hour,
		BcryptCost: mustInt("BCRYPT_COST"),
	}
}

// Prod reports whether the configuration targets a production deployment.
// Session cookies are marked Secure only in prod.
func (c Config) Prod() bool { return c.Env == "prod" }

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
