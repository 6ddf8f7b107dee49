package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

var _ repository.CandidacyRepository = (*CandidacyRepo)(nil)

// CandidacyRepo implementação do porto CandidacyRepository sobre PostgreSQL
// (usável com pool ou tx).
type CandidacyRepo struct {
	q Querier
}

// NewCandidacyRepository constrói o adaptador de persistência para candidaturas.
func NewCandidacyRepository(q Querier) *CandidacyRepo {
	return &CandidacyRepo{q: q}
}

const candidacyColumns = `id, artist_id, event_id, status, created_at, updated_at`

// Create persiste uma nova candidatura. O índice único parcial sobre
// (artist_id, event_id) com status ativo transforma a corrida de duplo
// apply em ErrAlreadyApplied.
func (r *CandidacyRepo) Create(candidacy *entity.Candidacy) error {
	query := `
		INSERT INTO candidacies (id, artist_id, event_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		candidacy.ID, candidacy.ArtistID, candidacy.EventID, candidacy.Status,
		candidacy.CreatedAt, candidacy.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert candidacy: %w", err)
	}
	return nil
}

// GetByID obtém uma candidatura por ID.
func (r *CandidacyRepo) GetByID(id string) (*entity.Candidacy, error) {
	query := `SELECT ` + candidacyColumns + ` FROM candidacies WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtém uma candidatura bloqueando a linha.
func (r *CandidacyRepo) GetForUpdate(id string) (*entity.Candidacy, error) {
	query := `SELECT ` + candidacyColumns + ` FROM candidacies WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *CandidacyRepo) scanOne(query string, arg any) (*entity.Candidacy, error) {
	var c entity.Candidacy
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.ArtistID, &c.EventID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidacy: %w", err)
	}
	return &c, nil
}

// HasActive verifica se o artista já tem candidatura PENDENTE ou APROVADA
// para o evento.
func (r *CandidacyRepo) HasActive(artistID, eventID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM candidacies
			WHERE artist_id = $1 AND event_id = $2 AND status IN ($3, $4)
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query,
		artistID, eventID, entity.CandidacyStatusPendente, entity.CandidacyStatusAprovada,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has active candidacy: %w", err)
	}
	return exists, nil
}

// UpdateStatus grava o novo status da candidatura.
func (r *CandidacyRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	query := `UPDATE candidacies SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update candidacy status: %w", err)
	}
	return nil
}

// ListByEvent lista as candidaturas de um evento.
func (r *CandidacyRepo) ListByEvent(eventID string) ([]*entity.Candidacy, error) {
	query := `
		SELECT ` + candidacyColumns + ` FROM candidacies
		WHERE event_id = $1 ORDER BY created_at ASC`
	return r.scanList(query, eventID)
}

// ListByArtist lista as candidaturas de um artista.
func (r *CandidacyRepo) ListByArtist(artistID string) ([]*entity.Candidacy, error) {
	query := `
		SELECT ` + candidacyColumns + ` FROM candidacies
		WHERE artist_id = $1 ORDER BY created_at DESC`
	return r.scanList(query, artistID)
}

func (r *CandidacyRepo) scanList(query string, args ...any) ([]*entity.Candidacy, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidacies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Candidacy
	for rows.Next() {
		var c entity.Candidacy
		if err := rows.Scan(&c.ID, &c.ArtistID, &c.EventID, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan candidacy: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
