package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	AdminUsername         = "admin"
	defaultUploadMaxBytes = 10 << 20
)

type Config struct {
	Port        string
	PublicDir   string
	AdminPage   string
	FrontendURL string
	SSL         bool

	AdminPassword string

	SMTPHost           string
	SMTPPort           int
	EmailUser          string
	EmailPass          string
	MailFromName       string
	ContactRecipient   string
	StudentEmailDomain string
	MailEscapeHTML     bool

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageRegion    string
	StorageUseSSL    bool
	StoragePublicURL string
	UploadMaxBytes   int64
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:        getString("PORT", "3000"),
		PublicDir:   getString("PUBLIC_DIR", "public"),
		AdminPage:   getString("ADMIN_PAGE", "views/admin.html"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		SSL:         getBool("SSL", false),

		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SMTPHost:           getString("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getInt("SMTP_PORT", 587),
		EmailUser:          os.Getenv("EMAIL_USER"),
		EmailPass:          os.Getenv("EMAIL_PASS"),
		MailFromName:       getString("MAIL_FROM_NAME", "VVU SRC Contact Form"),
		ContactRecipient:   getString("CONTACT_RECIPIENT", "senate@vvu.edu.gh"),
		StudentEmailDomain: getString("STUDENT_EMAIL_DOMAIN", "vvu.edu.gh"),
		MailEscapeHTML:     getBool("MAIL_ESCAPE_HTML", false),

		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:    getString("STORAGE_BUCKET", "documents"),
		StorageRegion:    getString("STORAGE_REGION", "us-east-1"),
		StorageUseSSL:    getBool("STORAGE_USE_SSL", true),
		StoragePublicURL: os.Getenv("STORAGE_PUBLIC_URL"),
		UploadMaxBytes:   int64(getInt("UPLOAD_MAX_BYTES", defaultUploadMaxBytes)),
	}
}

func getString(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}

func getInt(name string, defaultValue int) int {
	v := os.Getenv(name)
	if v == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 1 {
		slog.Warn("invalid environment variable, using default", "name", name, "value", v, "default", defaultValue)
		return defaultValue
	}
	return parsed
}

func getBool(name string, defaultValue bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid environment variable, using default", "name", name, "value", v, "default", defaultValue)
		return defaultValue
	}
	return parsed
}
