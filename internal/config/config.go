package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Accounts AccountsConfig
	Storage  StorageConfig
	Logo     LogoConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// AccountsConfig holds identity gateway configuration
type AccountsConfig struct {
	// BaseURL is the identity gateway API root.
	BaseURL string
	// PublicKeyPEM verifies bearer tokens issued by the gateway. When empty
	// the key is fetched from the gateway's key endpoint at startup.
	PublicKeyPEM string
	// ServiceToken authenticates this service against the gateway's
	// user-lookup endpoints.
	ServiceToken string
	// SuperadminEmails is the allow-list permitted to change user roles.
	SuperadminEmails []string
}

// IsSuperadmin reports whether the email is on the superadmin allow-list.
func (c AccountsConfig) IsSuperadmin(email string) bool {
	for _, allowed := range c.SuperadminEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

// Storage backends for logo objects
const (
	StorageBackendLocal = "local"
	StorageBackendMinio = "minio"
)

// StorageConfig holds logo object storage configuration
type StorageConfig struct {
	// Backend selects the file store: "local" streams bytes from disk,
	// "minio" redirects to the object store's public URL.
	Backend string
	// Path is the directory for the local backend.
	Path string
	Minio MinioConfig
}

// MinioConfig holds object storage configuration
type MinioConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	UseSSL     bool
	Bucket     string
	LogoPrefix string
	// PublicURL is the externally reachable base URL for redirects.
	PublicURL string
}

// LogoConfig holds image pipeline tuning
type LogoConfig struct {
	// ThumbnailSize bounds the longest side of the thumbnail variant.
	ThumbnailSize int
	// Quality is the webp encoding quality (0-100).
	Quality int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "clubs"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Accounts: AccountsConfig{
			BaseURL:          getEnv("ACCOUNTS_BASE_URL", "https://api.innohassle.ru/accounts/v0"),
			PublicKeyPEM:     getEnv("ACCOUNTS_PUBLIC_KEY", ""),
			ServiceToken:     getEnv("ACCOUNTS_SERVICE_TOKEN", ""),
			SuperadminEmails: getEnvAsList("SUPERADMIN_EMAILS", nil),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", StorageBackendLocal),
			Path:    getEnv("STORAGE_PATH", "./storage"),
			Minio: MinioConfig{
				Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
				AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
				SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
				UseSSL:     getEnvAsBool("MINIO_USE_SSL", false),
				Bucket:     getEnv("MINIO_BUCKET", "clubs"),
				LogoPrefix: getEnv("MINIO_LOGO_PREFIX", "club-logos/"),
				PublicURL:  getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
			},
		},
		Logo: LogoConfig{
			ThumbnailSize: getEnvAsInt("LOGO_THUMBNAIL_SIZE", 512),
			Quality:       getEnvAsInt("LOGO_WEBP_QUALITY", 80),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
