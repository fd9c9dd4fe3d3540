package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/Jeffstark223/vvu-src-senate/internal/config"
	"github.com/Jeffstark223/vvu-src-senate/internal/handler"
	"github.com/Jeffstark223/vvu-src-senate/internal/repository"
	"github.com/Jeffstark223/vvu-src-senate/pkg/mail"
	"github.com/Jeffstark223/vvu-src-senate/pkg/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	gin.SetMode(gin.ReleaseMode)

	mailer, err := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
	})
	if err != nil {
		log.Fatalf("error creating mailer: %v", err)
	}

	store := newObjectStore(cfg)

	if cfg.AdminPassword == "" {
		slog.Warn("ADMIN_PASSWORD is not set, admin routes will reject every request")
	}

	newsRepo := repository.NewNewsRepository()

	handlers := handler.Handlers{
		Admin: handler.NewAdminAuth(config.AdminUsername, cfg.AdminPassword),
		Contact: handler.NewContactHandler(mailer, mail.ContactOptions{
			From:          mail.Address{Name: cfg.MailFromName, Email: cfg.EmailUser},
			Recipient:     mail.Address{Email: cfg.ContactRecipient},
			StudentDomain: cfg.StudentEmailDomain,
			EscapeHTML:    cfg.MailEscapeHTML,
		}),
		Document: handler.NewDocumentHandler(store, cfg.UploadMaxBytes),
		News:     handler.NewNewsHandler(newsRepo),
		Site:     handler.NewSiteHandler(cfg.PublicDir, cfg.AdminPage),
		Health:   handler.NewHealthHandler(store),
	}

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}
	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r := handler.NewRouter(handlers, handler.RouterOptions{
		AllowedOrigins: allowedOrigins,
		SSL:            cfg.SSL,
	})

	slog.Info("server starting", "port", cfg.Port, "mailer", mailer.Name(), "storage", store.Name())
	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newObjectStore(cfg *config.Config) storage.ObjectStore {
	if cfg.StorageEndpoint == "" {
		slog.Warn("STORAGE_ENDPOINT is not set, document uploads are disabled")
		return storage.NewUnavailableStore(cfg.StoragePublicURL)
	}

	store, err := storage.NewS3Store(storage.S3Config{
		Endpoint:  cfg.StorageEndpoint,
		AccessKey: cfg.StorageAccessKey,
		SecretKey: cfg.StorageSecretKey,
		Bucket:    cfg.StorageBucket,
		Region:    cfg.StorageRegion,
		UseSSL:    cfg.StorageUseSSL,
		PublicURL: cfg.StoragePublicURL,
	})
	if err != nil {
		log.Fatalf("error creating storage client: %v", err)
	}
	return store
}
