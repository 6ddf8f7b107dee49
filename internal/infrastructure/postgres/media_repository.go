package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

var _ repository.MediaRepository = (*MediaRepo)(nil)

// MediaRepo implementação do porto MediaRepository sobre PostgreSQL
// (usável com pool ou tx).
type MediaRepo struct {
	q Querier
}

// NewMediaRepository constrói o adaptador de persistência para mídia.
func NewMediaRepository(q Querier) *MediaRepo {
	return &MediaRepo{q: q}
}

// Create persiste um registro de mídia.
func (r *MediaRepo) Create(item *entity.MediaItem) error {
	query := `
		INSERT INTO media_items (id, owner_id, file_name, url, size_mb, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OwnerID, item.FileName, item.URL, item.SizeMB, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert media item: %w", err)
	}
	return nil
}

// GetByID obtém um registro de mídia por ID.
func (r *MediaRepo) GetByID(id string) (*entity.MediaItem, error) {
	query := `SELECT id, owner_id, file_name, url, size_mb, created_at FROM media_items WHERE id = $1`
	var m entity.MediaItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.OwnerID, &m.FileName, &m.URL, &m.SizeMB, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get media item: %w", err)
	}
	return &m, nil
}

// ListByOwner lista a mídia de um usuário.
func (r *MediaRepo) ListByOwner(ownerID string) ([]*entity.MediaItem, error) {
	query := `
		SELECT id, owner_id, file_name, url, size_mb, created_at
		FROM media_items WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list media items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MediaItem
	for rows.Next() {
		var m entity.MediaItem
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.FileName, &m.URL, &m.SizeMB, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan media item: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete remove um registro de mídia por ID.
func (r *MediaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM media_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media item: %w", err)
	}
	return nil
}
