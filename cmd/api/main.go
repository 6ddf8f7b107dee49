package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/palco-app/palco-api/internal/application/agenda"
	"github.com/palco-app/palco-api/internal/application/auth"
	"github.com/palco-app/palco-api/internal/application/candidacy"
	"github.com/palco-app/palco-api/internal/application/chat"
	"github.com/palco-app/palco-api/internal/application/event"
	"github.com/palco-app/palco-api/internal/application/media"
	"github.com/palco-app/palco-api/internal/application/ports"
	"github.com/palco-app/palco-api/internal/application/review"
	"github.com/palco-app/palco-api/internal/application/user"
	"github.com/palco-app/palco-api/internal/infrastructure/notify"
	"github.com/palco-app/palco-api/internal/infrastructure/postgres"
	httpRouter "github.com/palco-app/palco-api/internal/interfaces/http"
	"github.com/palco-app/palco-api/pkg/config"
	"github.com/palco-app/palco-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	candidacyRepo := postgres.NewCandidacyRepository(pool)
	agendaRepo := postgres.NewAgendaRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	chatRepo := postgres.NewChatRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	mediaRepo := postgres.NewMediaRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Gateway de push: AMQP_URL vazio desativa a publicação, mas as
	// notificações in-app continuam gravadas.
	var notifier ports.Notifier = notify.NoopNotifier{}
	if cfg.AMQP.URL != "" {
		publisher, err := notify.NewAMQPPublisher(cfg.AMQP)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao broker AMQP")
		}
		defer publisher.Close()
		notifier = publisher
		log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("publicação de notificações ativa")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	eventUC := event.NewUseCase(txRunner, eventRepo, userRepo, profileRepo, notifRepo, notifier)
	candidacyUC := candidacy.NewUseCase(txRunner, candidacyRepo, eventRepo, userRepo, notifRepo, notifier)
	agendaUC := agenda.NewUseCase(txRunner, agendaRepo, userRepo)
	reviewUC := review.NewUseCase(txRunner, reviewRepo, eventRepo, candidacyRepo)
	chatUC := chat.NewUseCase(chatRepo, messageRepo, userRepo, notifRepo, notifier)
	mediaUC := media.NewUseCase(mediaRepo, userRepo)
	userUC := user.NewUseCase(userRepo, profileRepo, notifRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		EventUC:     eventUC,
		CandidacyUC: candidacyUC,
		AgendaUC:    agendaUC,
		ReviewUC:    reviewUC,
		ChatUC:      chatUC,
		MediaUC:     mediaUC,
		UserUC:      userUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("encerrando aplicação")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown do servidor HTTP")
	}
}
