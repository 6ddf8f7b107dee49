package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/palco-app/palco-api/internal/application/agenda"
	"github.com/palco-app/palco-api/internal/application/auth"
	"github.com/palco-app/palco-api/internal/application/candidacy"
	"github.com/palco-app/palco-api/internal/application/chat"
	"github.com/palco-app/palco-api/internal/application/event"
	"github.com/palco-app/palco-api/internal/application/media"
	"github.com/palco-app/palco-api/internal/application/review"
	"github.com/palco-app/palco-api/internal/application/user"
	"github.com/palco-app/palco-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	EventUC     *event.UseCase
	CandidacyUC *candidacy.UseCase
	AgendaUC    *agenda.UseCase
	ReviewUC    *review.UseCase
	ChatUC      *chat.UseCase
	MediaUC     *media.UseCase
	UserUC      *user.UseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Events
	eventHandler := NewEventHandler(deps.EventUC)
	candidacyHandler := NewCandidacyHandler(deps.CandidacyUC)
	events := protected.Group("/events")
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.ListOpen)
	events.Get("/mine", eventHandler.ListMine)
	events.Get("/:id", eventHandler.GetByID)
	events.Patch("/:id/status", eventHandler.UpdateStatus)
	events.Get("/:id/candidacies", candidacyHandler.ListByEvent)

	// Candidacies
	candidacies := protected.Group("/candidacies")
	candidacies.Post("/", candidacyHandler.Apply)
	candidacies.Get("/mine", candidacyHandler.ListMine)
	candidacies.Post("/:id/approve", candidacyHandler.Approve)
	candidacies.Post("/:id/reject", candidacyHandler.Reject)
	candidacies.Post("/:id/cancel", candidacyHandler.Cancel)

	// Agenda
	agendaHandler := NewAgendaHandler(deps.AgendaUC)
	agendaGroup := protected.Group("/agenda")
	agendaGroup.Post("/blocks", agendaHandler.AddBlock)
	agendaGroup.Get("/blocks", agendaHandler.ListBlocks)
	agendaGroup.Delete("/blocks/:id", agendaHandler.RemoveBlock)
	protected.Get("/artists/:id/availability", agendaHandler.CheckAvailability)

	// Reviews
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	protected.Post("/reviews", reviewHandler.Submit)

	// Users, perfil e notificações
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users")
	users.Get("/me", userHandler.GetMe)
	users.Put("/me/profile", userHandler.UpdateProfile)
	users.Post("/me/plan/upgrade", userHandler.UpgradePlan)
	users.Get("/:id/profile", userHandler.GetProfile)
	users.Get("/:id/reviews", reviewHandler.ListByUser)
	protected.Get("/notifications", userHandler.ListNotifications)
	protected.Post("/notifications/:id/seen", userHandler.MarkNotificationSeen)

	// Chats
	chatHandler := NewChatHandler(deps.ChatUC)
	chats := protected.Group("/chats")
	chats.Post("/", chatHandler.Open)
	chats.Get("/", chatHandler.ListChats)
	chats.Post("/:id/messages", chatHandler.Send)
	chats.Get("/:id/messages", chatHandler.ListMessages)

	// Media
	mediaHandler := NewMediaHandler(deps.MediaUC)
	mediaGroup := protected.Group("/media")
	mediaGroup.Post("/", mediaHandler.Register)
	mediaGroup.Get("/", mediaHandler.List)
	mediaGroup.Get("/storage", mediaHandler.Storage)
	mediaGroup.Delete("/:id", mediaHandler.Remove)

	// Admin (RBAC)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/users", userHandler.ListUsers)
	admin.Post("/users/:id/credits/reset", userHandler.ResetCredits)
	admin.Put("/users/:id/plan", userHandler.ChangePlan)
}
