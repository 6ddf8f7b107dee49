package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/application/ports"
	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

// UseCase registra avaliações pós-evento e mantém a média incremental do
// avaliado: média e contagem são atualizadas na mesma transação do insert,
// com a linha do usuário bloqueada.
type UseCase struct {
	txRunner      ports.ReviewTxRunner
	reviewRepo    repository.ReviewRepository
	eventRepo     repository.EventRepository
	candidacyRepo repository.CandidacyRepository
}

// NewUseCase constrói o caso de uso de avaliações.
func NewUseCase(
	txRunner ports.ReviewTxRunner,
	reviewRepo repository.ReviewRepository,
	eventRepo repository.EventRepository,
	candidacyRepo repository.CandidacyRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		reviewRepo:    reviewRepo,
		eventRepo:     eventRepo,
		candidacyRepo: candidacyRepo,
	}
}

// Submit grava a avaliação de um participante sobre o outro em um evento
// CONCLUIDO. Cada avaliador avalia o mesmo evento uma única vez.
func (uc *UseCase) Submit(ctx context.Context, reviewerID string, in dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	if in.ReviewedID == "" || in.ReviewedID == reviewerID {
		return nil, domain.ErrInvalidInput
	}
	ev, err := uc.eventRepo.GetByID(in.EventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, domain.ErrNotFound
	}
	if ev.Status != entity.EventStatusConcluido {
		return nil, domain.ErrConflict
	}
	if err := uc.checkParticipants(ev, reviewerID, in.ReviewedID); err != nil {
		return nil, err
	}

	rev := &entity.Review{
		ID:         uuid.New().String(),
		ReviewerID: reviewerID,
		ReviewedID: in.ReviewedID,
		EventID:    in.EventID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  time.Now(),
	}

	err = uc.txRunner.RunReview(ctx, func(
		reviewRepo repository.ReviewRepository,
		userRepo repository.UserRepository,
	) error {
		if err := reviewRepo.Create(rev); err != nil {
			return err
		}
		reviewed, err := userRepo.GetForUpdate(in.ReviewedID)
		if err != nil {
			return err
		}
		if reviewed == nil {
			return domain.ErrUserNotFound
		}
		// Média incremental: nova = (média*(n) + nota) / (n+1).
		newCount := reviewed.ReviewCount + 1
		newRating := (reviewed.Rating*float64(reviewed.ReviewCount) + float64(rev.Rating)) / float64(newCount)
		return userRepo.UpdateRating(in.ReviewedID, newRating, newCount)
	})
	if err != nil {
		return nil, err
	}
	return toReviewResponse(rev), nil
}

// ListByUser lista as avaliações recebidas por um usuário.
func (uc *UseCase) ListByUser(userID string, limit, offset int) ([]dto.ReviewResponse, error) {
	list, err := uc.reviewRepo.ListByReviewed(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toReviewResponse(r))
	}
	return out, nil
}

// checkParticipants garante que avaliador e avaliado são as duas pontas do
// evento: o contratante criador e um artista com candidatura APROVADA.
func (uc *UseCase) checkParticipants(ev *entity.Event, reviewerID, reviewedID string) error {
	if reviewerID == ev.CreatorID {
		return uc.requireApprovedArtist(ev.ID, reviewedID)
	}
	if reviewedID != ev.CreatorID {
		return domain.ErrForbidden
	}
	return uc.requireApprovedArtist(ev.ID, reviewerID)
}

func (uc *UseCase) requireApprovedArtist(eventID, artistID string) error {
	list, err := uc.candidacyRepo.ListByEvent(eventID)
	if err != nil {
		return err
	}
	for _, c := range list {
		if c.ArtistID == artistID && c.Status == entity.CandidacyStatusAprovada {
			return nil
		}
	}
	return domain.ErrForbidden
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	if r == nil {
		return nil
	}
	return &dto.ReviewResponse{
		ID:         r.ID,
		ReviewerID: r.ReviewerID,
		ReviewedID: r.ReviewedID,
		EventID:    r.EventID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
