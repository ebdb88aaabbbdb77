package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"confprogram/config"
	authadapter "confprogram/internal/adapters/auth"
	emailadapter "confprogram/internal/adapters/email"
	exportadapter "confprogram/internal/adapters/export"
	delivery "confprogram/internal/delivery/http"
	"confprogram/internal/delivery/http/controllers"
	"confprogram/internal/delivery/http/middleware"
	"confprogram/internal/repository/postgres"
	"confprogram/internal/services"

	_ "confprogram/docs"
)

const serviceTimeout = 10 * time.Second

// @title Conference Program API
// @version 1.0
// @description Multi-tenant backend for building and publishing conference programs: events, venues, sessions, speakers, and schedule tooling.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config error", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	orgRepo := postgres.NewOrganizationRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	venueRepo := postgres.NewVenueRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	presentationRepo := postgres.NewPresentationRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	sponsorRepo := postgres.NewSponsorRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	attachmentRepo := postgres.NewAttachmentRepository(db)

	hasher := authadapter.NewBcryptHasher(cfg.BcryptCost)
	tokens := authadapter.NewJWTManager(cfg.JWTSecret)

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFrom,
		FromName:    cfg.MailFromName,
		SES: emailadapter.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to build mailer", "err", err)
		os.Exit(1)
	}

	authService := services.NewAuthService(userRepo, hasher, tokens, cfg.TokenExpiry, serviceTimeout)
	orgService := services.NewOrganizationService(orgRepo, userRepo, serviceTimeout)
	eventService := services.NewEventService(orgRepo, eventRepo, venueRepo, serviceTimeout)
	venueService := services.NewVenueService(orgRepo, eventRepo, venueRepo, serviceTimeout)
	programService := services.NewProgramService(orgRepo, eventRepo, venueRepo, sessionRepo, presentationRepo, cfg.LegacyConflictDetector, serviceTimeout)
	speakerService := services.NewSpeakerService(orgRepo, eventRepo, speakerRepo, serviceTimeout)
	sponsorService := services.NewSponsorService(orgRepo, eventRepo, sponsorRepo, serviceTimeout)
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer(), logger)
	participantService := services.NewParticipantService(orgRepo, eventRepo, participantRepo, emailService, serviceTimeout)
	attachmentService := services.NewAttachmentService(orgRepo, eventRepo, participantRepo, sponsorRepo, presentationRepo, sessionRepo, attachmentRepo, serviceTimeout)
	exportService := services.NewExportService(orgRepo, eventRepo, venueRepo, sessionRepo, presentationRepo, exportadapter.NewPDFRenderer(), serviceTimeout)

	mux := delivery.NewRouter(delivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		Organization: controllers.NewOrganizationController(logger, orgService),
		Event:        controllers.NewEventController(logger, eventService),
		Venue:        controllers.NewVenueController(logger, venueService),
		Program:      controllers.NewProgramController(logger, programService),
		Speaker:      controllers.NewSpeakerController(logger, speakerService),
		Sponsor:      controllers.NewSponsorController(logger, sponsorService),
		Participant:  controllers.NewParticipantController(logger, participantService),
		Attachment:   controllers.NewAttachmentController(logger, attachmentService),
		Export:       controllers.NewExportController(logger, exportService),
	}, tokens, logger)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-shutdownCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("http shutdown error", "err", err)
		}
	}()

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("http server error", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
