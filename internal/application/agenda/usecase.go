package agenda

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/application/ports"
	"github.com/palco-app/palco-api/internal/domain"
	domagenda "github.com/palco-app/palco-api/internal/domain/agenda"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/plan"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

// UseCase gerencia o livro de disponibilidade do artista: blocos manuais
// FREE/BUSY, remoção (exceto blocos do sistema) e consulta de disponibilidade.
type UseCase struct {
	txRunner   ports.TxRunner
	agendaRepo repository.AgendaRepository
	userRepo   repository.UserRepository
}

// NewUseCase constrói o caso de uso de agenda.
func NewUseCase(txRunner ports.TxRunner, agendaRepo repository.AgendaRepository, userRepo repository.UserRepository) *UseCase {
	return &UseCase{txRunner: txRunner, agendaRepo: agendaRepo, userRepo: userRepo}
}

// AddBlock cria um bloco manual. Verificação de sobreposição e quota do
// plano gratuito (máximo de blocos manuais) rodam na mesma transação do insert.
func (uc *UseCase) AddBlock(ctx context.Context, artistID string, in dto.AddBlockRequest) (*dto.BlockResponse, error) {
	user, err := uc.userRepo.GetByID(artistID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role != entity.RoleArtist {
		return nil, domain.ErrForbidden
	}
	w := domagenda.Window{Start: in.StartDate, End: in.EndDate}
	if !w.Valid() {
		return nil, domain.ErrInvalidWindow
	}
	status := in.Status
	if status == "" {
		status = entity.BlockStatusBusy
	}
	if status != entity.BlockStatusFree && status != entity.BlockStatusBusy {
		return nil, domain.ErrInvalidInput
	}

	limits := plan.For(user.PlanID)
	block := &entity.AvailabilityBlock{
		ID:        uuid.New().String(),
		ArtistID:  artistID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    status,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.UserRepository,
		_ repository.EventRepository,
		_ repository.CandidacyRepository,
		agendaRepo repository.AgendaRepository,
	) error {
		if !plan.Unlimited(limits.ManualBlocks) {
			count, err := agendaRepo.CountManual(artistID)
			if err != nil {
				return err
			}
			if count >= limits.ManualBlocks {
				return domain.ErrQuotaExceeded
			}
		}
		overlap, err := agendaRepo.HasOverlap(artistID, in.StartDate, in.EndDate)
		if err != nil {
			return err
		}
		if overlap {
			return domain.ErrOverlap
		}
		return agendaRepo.Create(block)
	})
	if err != nil {
		return nil, err
	}
	return toBlockResponse(block), nil
}

// RemoveBlock apaga um bloco manual do próprio artista. Blocos BUSY ligados
// a um evento são gerados pela aprovação e ficam protegidos.
func (uc *UseCase) RemoveBlock(ctx context.Context, artistID, blockID string) error {
	block, err := uc.agendaRepo.GetByID(blockID)
	if err != nil {
		return err
	}
	if block == nil {
		return domain.ErrNotFound
	}
	if block.ArtistID != artistID {
		return domain.ErrForbidden
	}
	if block.IsSystemGenerated() {
		return domain.ErrProtectedBlock
	}
	return uc.agendaRepo.Delete(blockID)
}

// ListBlocks lista a agenda do artista.
func (uc *UseCase) ListBlocks(artistID string) ([]dto.BlockResponse, error) {
	blocks, err := uc.agendaRepo.ListByArtist(artistID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, *toBlockResponse(b))
	}
	return out, nil
}

// CheckAvailable responde se nenhum bloco BUSY sobrepõe a janela.
func (uc *UseCase) CheckAvailable(artistID string, start, end time.Time) (bool, error) {
	w := domagenda.Window{Start: start, End: end}
	if !w.Valid() {
		return false, domain.ErrInvalidWindow
	}
	busy, err := uc.agendaRepo.HasBusyOverlap(artistID, start, end)
	if err != nil {
		return false, err
	}
	return !busy, nil
}

func toBlockResponse(b *entity.AvailabilityBlock) *dto.BlockResponse {
	if b == nil {
		return nil
	}
	return &dto.BlockResponse{
		ID:        b.ID,
		ArtistID:  b.ArtistID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Status:    b.Status,
		EventID:   b.EventID,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
	}
}
