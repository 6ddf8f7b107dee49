package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/application/ports"
	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/plan"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

// UseCase gerencia o ciclo de vida de eventos: criação com as restrições do
// plano, cancelamento e conclusão via tabela de transições.
type UseCase struct {
	txRunner    ports.TxRunner
	eventRepo   repository.EventRepository
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	notifRepo   repository.NotificationRepository
	notifier    ports.Notifier
}

// NewUseCase constrói o caso de uso de eventos.
func NewUseCase(
	txRunner ports.TxRunner,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	notifRepo repository.NotificationRepository,
	notifier ports.Notifier,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		notifRepo:   notifRepo,
		notifier:    notifier,
	}
}

// Create valida o rascunho contra as regras do plano do contratante, consome
// um crédito (decremento condicional, na mesma transação do insert) e
// persiste o evento ABERTO. Depois do commit dispara o auto-offer para
// artistas compatíveis.
func (uc *UseCase) Create(ctx context.Context, contractorID string, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	user, err := uc.userRepo.GetByID(contractorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role != entity.RoleContractor {
		return nil, domain.ErrForbidden
	}

	if in.Title == "" || in.Location == "" || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, domain.ErrInvalidWindow
	}
	eventType := in.EventType
	if eventType == "" {
		eventType = entity.EventTypeShow
	}
	if eventType != entity.EventTypeShow && eventType != entity.EventTypeFestival {
		return nil, domain.ErrInvalidInput
	}
	if !plan.AllowsEventType(user.PlanID, eventType) {
		return nil, domain.ErrQuotaExceeded
	}
	if !plan.AllowsStyleCount(user.PlanID, len(in.Styles)) {
		return nil, domain.ErrInvalidInput
	}
	minCache := in.MinCache
	maxCache := in.MaxCache
	if user.IsFreePlan() {
		// Cache fixo no plano gratuito: o máximo acompanha o mínimo.
		maxCache = minCache
	}
	if maxCache.LessThan(minCache) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ev := &entity.Event{
		ID:        uuid.New().String(),
		CreatorID: contractorID,
		Title:     in.Title,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Location:  in.Location,
		EventType: eventType,
		MinCache:  minCache,
		MaxCache:  maxCache,
		Styles:    in.Styles,
		Status:    entity.EventStatusAberto,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		userRepo repository.UserRepository,
		eventRepo repository.EventRepository,
		_ repository.CandidacyRepository,
		_ repository.AgendaRepository,
	) error {
		if err := userRepo.ConsumeCredit(contractorID); err != nil {
			return err
		}
		return eventRepo.Create(ev)
	})
	if err != nil {
		return nil, err
	}

	uc.notifyMatchingArtists(ctx, ev)

	return ToEventResponse(ev), nil
}

// UpdateStatus aplica CANCELADO ou CONCLUIDO manualmente. CONCLUIDO só é
// aceito depois da data de término do evento.
func (uc *UseCase) UpdateStatus(ctx context.Context, contractorID, eventID, newStatus string) (*dto.EventResponse, error) {
	if newStatus != entity.EventStatusCancelado && newStatus != entity.EventStatusConcluido {
		return nil, domain.ErrInvalidTransition
	}
	ev, err := uc.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, domain.ErrNotFound
	}
	if ev.CreatorID != contractorID {
		return nil, domain.ErrForbidden
	}
	if !entity.CanTransitionEvent(ev.Status, newStatus) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	if newStatus == entity.EventStatusConcluido && now.Before(ev.EndDate) {
		return nil, domain.ErrConflict
	}
	if err := uc.eventRepo.UpdateStatus(eventID, newStatus, now); err != nil {
		return nil, err
	}
	ev.Status = newStatus
	ev.UpdatedAt = now
	return ToEventResponse(ev), nil
}

// GetByID devolve um evento.
func (uc *UseCase) GetByID(eventID string) (*dto.EventResponse, error) {
	ev, err := uc.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, domain.ErrNotFound
	}
	return ToEventResponse(ev), nil
}

// ListOpen lista eventos ABERTOs para a busca de artistas.
func (uc *UseCase) ListOpen(limit, offset int) ([]dto.EventResponse, error) {
	events, err := uc.eventRepo.ListOpen(limit, offset)
	if err != nil {
		return nil, err
	}
	return toEventList(events), nil
}

// ListMine lista os eventos do contratante.
func (uc *UseCase) ListMine(contractorID string, limit, offset int) ([]dto.EventResponse, error) {
	events, err := uc.eventRepo.ListByCreator(contractorID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toEventList(events), nil
}

// notifyMatchingArtists dispara o auto-offer: artistas com gênero compatível
// e cache mínimo coberto recebem uma notificação. Melhor esforço; nunca
// falha a criação do evento.
func (uc *UseCase) notifyMatchingArtists(ctx context.Context, ev *entity.Event) {
	if len(ev.Styles) == 0 {
		return
	}
	profiles, err := uc.profileRepo.ListMatching(ev.Styles, ev.MinCache)
	if err != nil {
		return
	}
	for _, p := range profiles {
		n := &entity.Notification{
			ID:         uuid.New().String(),
			Type:       entity.NotificationTypeEvent,
			Title:      ev.Title,
			Body:       ev.Location,
			SenderID:   ev.CreatorID,
			ReceiverID: p.UserID,
			EventID:    ev.ID,
			CreatedAt:  time.Now(),
		}
		_ = uc.notifRepo.Create(n)
		_ = uc.notifier.Publish(ctx, n)
	}
}

// ToEventResponse converte a entidade para a visão HTTP.
func ToEventResponse(e *entity.Event) *dto.EventResponse {
	if e == nil {
		return nil
	}
	return &dto.EventResponse{
		ID:        e.ID,
		CreatorID: e.CreatorID,
		Title:     e.Title,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Location:  e.Location,
		EventType: e.EventType,
		MinCache:  e.MinCache,
		MaxCache:  e.MaxCache,
		Styles:    e.Styles,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}

func toEventList(events []*entity.Event) []dto.EventResponse {
	out := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, *ToEventResponse(e))
	}
	return out
}
