package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is loaded once at startup from the environment.
type Config struct {
	AppName string
	AppEnv  string
	Port    string

	JWTSecret  string
	SessionTTL time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBMaxConns int32
	DBMinConns int32

	MigrationsDir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RabbitURL  string
	EmailQueue string

	MailSendEnabled bool
	MailgunDomain   string
	MailgunAPIKey   string
	MailgunSender   string

	ESAddresses  string
	ESUsername   string
	ESPassword   string
	ESPostsIndex string

	GCSBucket          string
	GCSCredentialsFile string

	CookieDomain string
	CookieSecure bool

	CORSAllowedOrigins string

	DebugMetricsEnabled bool
	HTTPLogEnabled      bool
}

func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "cybertrain"),
		AppEnv:  getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),

		JWTSecret:  getenv("JWT_SECRET", ""),
		SessionTTL: getdur("SESSION_TTL", 24*time.Hour),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "cybertrain"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		DBMaxConns: int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns: int32(getint("DB_MIN_CONNS", 2)),

		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		RabbitURL:  getenv("RABBITMQ_URL", ""),
		EmailQueue: getenv("EMAIL_QUEUE", "email_jobs"),

		MailSendEnabled: getbool("MAIL_SEND_ENABLED", false),
		MailgunDomain:   getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:   getenv("MAILGUN_API_KEY", ""),
		MailgunSender:   getenv("MAILGUN_SENDER", "no-reply@cybertrain.io"),

		ESAddresses:  getenv("ELASTICSEARCH_ADDRESSES", ""),
		ESUsername:   getenv("ELASTICSEARCH_USERNAME", ""),
		ESPassword:   getenv("ELASTICSEARCH_PASSWORD", ""),
		ESPostsIndex: getenv("ES_POSTS_INDEX", "community_posts"),

		GCSBucket:          getenv("GCS_BUCKET", ""),
		GCSCredentialsFile: getenv("GCS_CREDENTIALS_FILE", ""),

		CookieDomain: getenv("COOKIE_DOMAIN", ""),
		CookieSecure: getbool("COOKIE_SECURE", false),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", false),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", true),
	}
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func (c *Config) CORSOrigins() []string {
	return splitCSV(c.CORSAllowedOrigins)
}

func (c *Config) ESAddrs() []string {
	return splitCSV(c.ESAddresses)
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getdur(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
