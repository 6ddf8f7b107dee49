package user

import (
	"time"

	"github.com/palco-app/palco-api/internal/application/auth"
	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/plan"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

// UseCase perfil do artista, plano, notificações in-app e ações de admin.
type UseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	notifRepo   repository.NotificationRepository
}

// NewUseCase constrói o caso de uso de usuários.
func NewUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	notifRepo repository.NotificationRepository,
) *UseCase {
	return &UseCase{userRepo: userRepo, profileRepo: profileRepo, notifRepo: notifRepo}
}

// GetMe devolve o próprio usuário.
func (uc *UseCase) GetMe(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// UpdateProfile grava o perfil do artista. O plano gratuito limita a
// quantidade de gêneros.
func (uc *UseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role != entity.RoleArtist {
		return nil, domain.ErrForbidden
	}
	if !plan.AllowsGenreCount(user.PlanID, len(in.Genres)) {
		return nil, domain.ErrQuotaExceeded
	}
	p := &entity.ArtistProfile{
		UserID:       userID,
		Bio:          in.Bio,
		Genres:       in.Genres,
		MinimumCache: in.MinimumCache,
		UpdatedAt:    time.Now(),
	}
	if err := uc.profileRepo.Upsert(p); err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// GetProfile devolve o perfil público de um artista.
func (uc *UseCase) GetProfile(userID string) (*dto.ProfileResponse, error) {
	p, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(p), nil
}

// UpgradePlan migra o usuário para o plano pago: créditos passam ao
// sentinela ilimitado. A cobrança fica fora deste domínio.
func (uc *UseCase) UpgradePlan(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.PlanID == entity.PlanPaid {
		return nil, domain.ErrConflict
	}
	if err := uc.userRepo.SetPlan(userID, entity.PlanPaid, entity.CreditsUnlimited); err != nil {
		return nil, err
	}
	user.PlanID = entity.PlanPaid
	user.Credits = entity.CreditsUnlimited
	return auth.ToUserResponse(user), nil
}

// ListUsers lista usuários (rota de admin).
func (uc *UseCase) ListUsers(limit, offset int) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// ResetCredits redefine o saldo conforme o plano atual do usuário
// (rota de admin): 10 no gratuito, ilimitado no pago.
func (uc *UseCase) ResetCredits(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	credits := plan.For(user.PlanID).Credits
	if err := uc.userRepo.SetPlan(userID, user.PlanID, credits); err != nil {
		return nil, err
	}
	user.Credits = credits
	return auth.ToUserResponse(user), nil
}

// ChangePlan troca o plano de um usuário e redefine o saldo de créditos
// conforme o plano de destino (rota de admin).
func (uc *UseCase) ChangePlan(userID, planID string) (*dto.UserResponse, error) {
	if planID != entity.PlanFree && planID != entity.PlanPaid {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	credits := plan.For(planID).Credits
	if err := uc.userRepo.SetPlan(userID, planID, credits); err != nil {
		return nil, err
	}
	user.PlanID = planID
	user.Credits = credits
	return auth.ToUserResponse(user), nil
}

// ListNotifications lista as notificações in-app do usuário.
func (uc *UseCase) ListNotifications(userID string, limit, offset int) ([]dto.NotificationResponse, error) {
	list, err := uc.notifRepo.ListByReceiver(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationResponse{
			ID:          n.ID,
			Type:        n.Type,
			Title:       n.Title,
			Body:        n.Body,
			SenderID:    n.SenderID,
			Seen:        n.Seen,
			ChatID:      n.ChatID,
			EventID:     n.EventID,
			CandidacyID: n.CandidacyID,
			CreatedAt:   n.CreatedAt,
		})
	}
	return out, nil
}

// MarkNotificationSeen marca uma notificação do usuário como vista.
func (uc *UseCase) MarkNotificationSeen(userID, notificationID string) error {
	return uc.notifRepo.MarkSeen(notificationID, userID)
}

func toProfileResponse(p *entity.ArtistProfile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		UserID:       p.UserID,
		Bio:          p.Bio,
		Genres:       p.Genres,
		MinimumCache: p.MinimumCache,
		UpdatedAt:    p.UpdatedAt,
	}
}
