package media

import (
	"time"

	"github.com/google/uuid"

	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/plan"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

// UseCase faz a contabilidade de mídia: o arquivo já está no blob store
// externo, aqui só entram URL e tamanho em MB contra a quota do plano.
type UseCase struct {
	mediaRepo repository.MediaRepository
	userRepo  repository.UserRepository
}

// NewUseCase constrói o caso de uso de mídia.
func NewUseCase(mediaRepo repository.MediaRepository, userRepo repository.UserRepository) *UseCase {
	return &UseCase{mediaRepo: mediaRepo, userRepo: userRepo}
}

// Register registra um upload. O incremento de uso é condicional: estourou a
// quota do plano, nada é gravado e o chamador recebe ErrQuotaExceeded.
func (uc *UseCase) Register(ownerID string, in dto.RegisterMediaRequest) (*dto.MediaResponse, error) {
	if in.FileName == "" || in.URL == "" || in.SizeMB <= 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	limits := plan.For(user.PlanID)
	if err := uc.userRepo.AddBucketUse(ownerID, in.SizeMB, limits.StorageMB); err != nil {
		return nil, err
	}
	item := &entity.MediaItem{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		FileName:  in.FileName,
		URL:       in.URL,
		SizeMB:    in.SizeMB,
		CreatedAt: time.Now(),
	}
	if err := uc.mediaRepo.Create(item); err != nil {
		// Devolve o espaço reservado se o insert falhar.
		_ = uc.userRepo.AddBucketUse(ownerID, -in.SizeMB, -1)
		return nil, err
	}
	return toMediaResponse(item), nil
}

// Remove apaga o registro e libera o espaço contabilizado.
func (uc *UseCase) Remove(ownerID, mediaID string) error {
	item, err := uc.mediaRepo.GetByID(mediaID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	if err := uc.mediaRepo.Delete(mediaID); err != nil {
		return err
	}
	return uc.userRepo.AddBucketUse(ownerID, -item.SizeMB, -1)
}

// List lista a mídia de um usuário.
func (uc *UseCase) List(ownerID string) ([]dto.MediaResponse, error) {
	items, err := uc.mediaRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MediaResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toMediaResponse(it))
	}
	return out, nil
}

// Storage devolve o uso de armazenamento contra a quota do plano.
func (uc *UseCase) Storage(userID string) (*dto.StorageResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.StorageResponse{
		UsedMB:  user.BucketUseMB,
		LimitMB: plan.For(user.PlanID).StorageMB,
	}, nil
}

func toMediaResponse(m *entity.MediaItem) *dto.MediaResponse {
	if m == nil {
		return nil
	}
	return &dto.MediaResponse{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		FileName:  m.FileName,
		URL:       m.URL,
		SizeMB:    m.SizeMB,
		CreatedAt: m.CreatedAt,
	}
}
