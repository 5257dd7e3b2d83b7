package server

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/matzehuels/starmap/pkg/errors"
)

// Config holds the service settings, read from the environment.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// RedisURL enables the shared artifact cache when set.
	RedisURL string

	// MongoURI selects the MongoDB archive. Without it galaxies are archived
	// under ArchiveDir, or in memory when ArchiveDir is empty too.
	MongoURI   string
	MongoDB    string
	ArchiveDir string

	RateLimit  float64 // Requests per second per client; 0 disables limiting
	RateBurst  int
	TrustProxy bool

	CORSOrigins []string
}

// LoadConfig reads the configuration from the environment. Files in
// envFiles (".env" when none are given) are loaded first; missing files
// are ignored and never override variables that are already set.
func LoadConfig(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	return Config{
		Addr:         getEnv("STARMAP_ADDR", ":8080"),
		ReadTimeout:  time.Duration(getInt("STARMAP_READ_TIMEOUT_SECONDS", 15)) * time.Second,
		WriteTimeout: time.Duration(getInt("STARMAP_WRITE_TIMEOUT_SECONDS", 30)) * time.Second,
		RedisURL:     getEnv("STARMAP_REDIS_URL", ""),
		MongoURI:     getEnv("STARMAP_MONGO_URI", ""),
		MongoDB:      getEnv("STARMAP_MONGO_DB", "starmap"),
		ArchiveDir:   getEnv("STARMAP_ARCHIVE_DIR", ""),
		RateLimit:    getFloat("STARMAP_RATE_LIMIT", 10),
		RateBurst:    getInt("STARMAP_RATE_BURST", 20),
		TrustProxy:   getEnv("STARMAP_TRUST_PROXY", "false") == "true",
		CORSOrigins:  splitList(getEnv("STARMAP_CORS_ORIGINS", "*")),
	}
}

// Validate checks connection strings, limits and origins.
func (c Config) Validate() error {
	if c.RedisURL != "" {
		if err := errors.ValidateRedisURL(c.RedisURL); err != nil {
			return err
		}
	}
	if c.MongoURI != "" {
		if err := errors.ValidateMongoURI(c.MongoURI); err != nil {
			return err
		}
		if c.MongoDB == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "mongo database name cannot be empty")
		}
	}
	if c.RateLimit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "rate limit must not be negative, got %v", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "rate burst must be at least 1, got %d", c.RateBurst)
	}
	for _, o := range c.CORSOrigins {
		if err := errors.ValidateOrigin(o); err != nil {
			return err
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return f
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
