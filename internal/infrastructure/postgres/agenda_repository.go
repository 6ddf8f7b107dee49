package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

var _ repository.AgendaRepository = (*AgendaRepo)(nil)

// AgendaRepo implementação do porto AgendaRepository sobre PostgreSQL
// (usável com pool ou tx). event_id NULL marca bloco manual.
type AgendaRepo struct {
	q Querier
}

// NewAgendaRepository constrói o adaptador de persistência para a agenda.
func NewAgendaRepository(q Querier) *AgendaRepo {
	return &AgendaRepo{q: q}
}

const blockColumns = `id, artist_id, start_date, end_date, status, COALESCE(event_id, ''), notes, created_at`

// Create persiste um bloco de agenda.
func (r *AgendaRepo) Create(block *entity.AvailabilityBlock) error {
	query := `
		INSERT INTO availability_blocks (id, artist_id, start_date, end_date, status, event_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		block.ID, block.ArtistID, block.StartDate, block.EndDate, block.Status,
		block.EventID, block.Notes, block.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert availability block: %w", err)
	}
	return nil
}

// GetByID obtém um bloco por ID.
func (r *AgendaRepo) GetByID(id string) (*entity.AvailabilityBlock, error) {
	query := `SELECT ` + blockColumns + ` FROM availability_blocks WHERE id = $1`
	var b entity.AvailabilityBlock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.ArtistID, &b.StartDate, &b.EndDate, &b.Status, &b.EventID, &b.Notes, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get availability block: %w", err)
	}
	return &b, nil
}

// ListByArtist lista os blocos de um artista por data de início.
func (r *AgendaRepo) ListByArtist(artistID string) ([]*entity.AvailabilityBlock, error) {
	query := `
		SELECT ` + blockColumns + ` FROM availability_blocks
		WHERE artist_id = $1 ORDER BY start_date ASC`
	rows, err := r.q.Query(context.Background(), query, artistID)
	if err != nil {
		return nil, fmt.Errorf("list availability blocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.AvailabilityBlock
	for rows.Next() {
		var b entity.AvailabilityBlock
		if err := rows.Scan(&b.ID, &b.ArtistID, &b.StartDate, &b.EndDate, &b.Status, &b.EventID, &b.Notes, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan availability block: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// HasOverlap verifica sobreposição com qualquer bloco do artista.
// Janelas que apenas se tocam na borda também contam.
func (r *AgendaRepo) HasOverlap(artistID string, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM availability_blocks
			WHERE artist_id = $1 AND start_date <= $3 AND end_date >= $2
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, artistID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has overlap: %w", err)
	}
	return exists, nil
}

// HasBusyOverlap verifica sobreposição apenas com blocos BUSY.
func (r *AgendaRepo) HasBusyOverlap(artistID string, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM availability_blocks
			WHERE artist_id = $1 AND status = $4 AND start_date <= $3 AND end_date >= $2
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, artistID, start, end, entity.BlockStatusBusy).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has busy overlap: %w", err)
	}
	return exists, nil
}

// CountManual conta os blocos manuais (sem event_id) do artista.
func (r *AgendaRepo) CountManual(artistID string) (int, error) {
	query := `SELECT COUNT(*) FROM availability_blocks WHERE artist_id = $1 AND event_id IS NULL`
	var count int
	if err := r.q.QueryRow(context.Background(), query, artistID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count manual blocks: %w", err)
	}
	return count, nil
}

// Delete remove um bloco por ID.
func (r *AgendaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM availability_blocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete availability block: %w", err)
	}
	return nil
}
