package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Values are read once at process start and stay
// constant for the process lifetime.
type Config struct {
	Env              string // application environment (e.g. "dev", "prod")
	Port             string // HTTP port to listen on
	DBUser           string // database username
	DBPass           string // database password (optional)
	DBHost           string // database host address
	DBPort           string // database port number
	DBName           string // database name
	DBMaxOpenConns   int    // database/sql pool: max open connections
	DBMaxIdleConns   int    // database/sql pool: max idle connections
	DBConnMaxLifeMin int    // database/sql pool: connection lifetime in minutes
	JWTSecret        string // secret used to sign session and reset tokens
	SessionTTLDays   int    // session token time-to-live in days
	ResetTTLMin      int    // password-reset token time-to-live in minutes
	OtpTTLMin        int    // payment OTP time-to-live in minutes
	BcryptCost       int    // bcrypt cost for password hashing
	ClientURL        string // frontend base URL used to build reset links
	SMTPHost         string // SMTP server host for outgoing mail
	SMTPPort         int    // SMTP server port
	SMTPUser         string // SMTP username; also used as the From address
	SMTPPass         string // SMTP password
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message. Token and OTP TTLs
// default to the product behavior (7 days / 60 minutes / 5 minutes) so only
// secrets and endpoints have to be provided explicitly.
func Load() Config {
	return Config{
		Env:              must("APP_ENV"),
		Port:             must("APP_PORT"),
		DBUser:           must("DB_USER"),
		DBPass:           os.Getenv("DB_PASS"), // empty allowed
		DBHost:           must("DB_HOST"),
		DBPort:           must("DB_PORT"),
		DBName:           must("DB_NAME"),
		DBMaxOpenConns:   intOr("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:   intOr("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifeMin: intOr("DB_CONN_MAX_LIFE_MIN", 30),
		JWTSecret:        must("JWT_SECRET"),
		SessionTTLDays:   intOr("SESSION_TTL_DAYS", 7),
		ResetTTLMin:      intOr("RESET_TOKEN_TTL_MIN", 60),
		OtpTTLMin:        intOr("PAYMENT_OTP_TTL_MIN", 5),
		BcryptCost:       intOr("BCRYPT_COST", 10),
		ClientURL:        must("CLIENT_URL"),
		SMTPHost:         must("SMTP_HOST"),
		SMTPPort:         intOr("SMTP_PORT", 587),
		SMTPUser:         must("SMTP_USER"),
		SMTPPass:         must("SMTP_PASS"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// intOr retrieves an integer environment variable, falling back to the
// given default when the variable is unset. An unparsable value is fatal.
func intOr(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
