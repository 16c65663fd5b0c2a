package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"portfolio/internal/utils"
)

type DBConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// Config holds all process-wide settings. Loaded once at startup and
// treated as immutable afterwards.
type Config struct {
	Port              int
	DB                DBConfig
	UploadDir         string
	AllowedExtensions []string
	AdminPasswordHash string
	SessionSecret     string
}

func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}

	db := DBConfig{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		Username: os.Getenv("DB_USERNAME"),
		Password: os.Getenv("DB_PASSWORD"),
		Database: os.Getenv("DB_DATABASE"),
	}
	for name, value := range map[string]string{
		"DB_HOST":     db.Host,
		"DB_PORT":     db.Port,
		"DB_USERNAME": db.Username,
		"DB_PASSWORD": db.Password,
		"DB_DATABASE": db.Database,
	} {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD environment variable is required")
	}
	// Only the argon2id hash stays in memory for the process lifetime.
	hash, err := utils.Hash(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	uploadDir := getEnv("UPLOAD_DIR", "./uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", uploadDir, err)
	}

	cfg := &Config{
		Port:              port,
		DB:                db,
		UploadDir:         uploadDir,
		AllowedExtensions: parseExtensions(getEnv("ALLOWED_EXTENSIONS", "png,jpg,jpeg,gif")),
		AdminPasswordHash: string(hash),
		SessionSecret:     sessionSecret,
	}

	return cfg, nil
}

func parseExtensions(raw string) []string {
	var exts []string
	for _, part := range strings.Split(raw, ",") {
		ext := strings.ToLower(strings.TrimSpace(part))
		ext = strings.TrimPrefix(ext, ".")
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
