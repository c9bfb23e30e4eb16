package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobportal_backend/database"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/storage"
	"jobportal_backend/ws"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if cfg.Server.Env == "development" {
		if err := database.SeedDemoData(db); err != nil {
			logger.Fatal("Seeding failed", "error", err)
		}
	}

	router, wsServer := SetupRouter(cfg, db)
	go wsServer.Run()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and the websocket server onto a
// gin engine. Separated from Run so tests can build the whole stack against
// their own database.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, *ws.Server) {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	var mailer email.Provider = email.Noop{}
	if cfg.Email.Enabled {
		mailer = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		logger.Info("Email delivery enabled", "host", cfg.Email.SMTPHost)
	}

	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	connectionRepo := repositories.NewConnectionRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	wsServer := ws.NewServer(cfg, ws.Services{
		Auth:            services.NewAuthService(userRepo),
		Jobs:            services.NewJobService(jobRepo),
		Applications:    services.NewApplicationService(applicationRepo, jobRepo, userRepo, notificationRepo, store, mailer),
		Profiles:        services.NewProfileService(profileRepo, store),
		CompanyProfiles: services.NewCompanyProfileService(profileRepo, store),
		Network:         services.NewNetworkService(connectionRepo, notificationRepo, userRepo, mailer),
		Notifications:   services.NewNotificationService(notificationRepo),
		Users:           userRepo,
	})

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "message": "Job portal socket server is running"})
	})
	router.GET("/ws", wsServer.ServeWS)

	return router, wsServer
}
