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

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementação do porto EventRepository sobre PostgreSQL
// (usável com pool ou tx).
type EventRepo struct {
	q Querier
}

// NewEventRepository constrói o adaptador de persistência para eventos.
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

const eventColumns = `id, creator_id, title, start_date, end_date, location, event_type,
		min_cache, max_cache, styles, status, created_at, updated_at`

// Create persiste um novo evento.
func (r *EventRepo) Create(event *entity.Event) error {
	query := `
		INSERT INTO events (id, creator_id, title, start_date, end_date, location, event_type,
			min_cache, max_cache, styles, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.CreatorID, event.Title, event.StartDate, event.EndDate,
		event.Location, event.EventType, event.MinCache, event.MaxCache,
		event.Styles, event.Status, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtém um evento por ID.
func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtém um evento bloqueando a linha; é o lock que serializa
// aprovações concorrentes sobre o mesmo evento.
func (r *EventRepo) GetForUpdate(id string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *EventRepo) scanOne(query string, arg any) (*entity.Event, error) {
	var e entity.Event
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.CreatorID, &e.Title, &e.StartDate, &e.EndDate, &e.Location,
		&e.EventType, &e.MinCache, &e.MaxCache, &e.Styles, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// UpdateStatus grava o novo status do evento.
func (r *EventRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	query := `UPDATE events SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	return nil
}

// ListOpen lista eventos ABERTO, mais recentes primeiro.
func (r *EventRepo) ListOpen(limit, offset int) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + ` FROM events
		WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanList(query, entity.EventStatusAberto, limit, offset)
}

// ListByCreator lista os eventos de um contratante.
func (r *EventRepo) ListByCreator(creatorID string, limit, offset int) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + ` FROM events
		WHERE creator_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanList(query, creatorID, limit, offset)
}

func (r *EventRepo) scanList(query string, args ...any) ([]*entity.Event, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(
			&e.ID, &e.CreatorID, &e.Title, &e.StartDate, &e.EndDate, &e.Location,
			&e.EventType, &e.MinCache, &e.MaxCache, &e.Styles, &e.Status,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
