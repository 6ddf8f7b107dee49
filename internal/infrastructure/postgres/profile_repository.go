package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementação do porto ProfileRepository sobre PostgreSQL
// (usável com pool ou tx). Genres é uma coluna text[].
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository constrói o adaptador de persistência para perfis.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Upsert grava o perfil do artista, criando ou substituindo.
func (r *ProfileRepo) Upsert(profile *entity.ArtistProfile) error {
	query := `
		INSERT INTO artist_profiles (user_id, bio, genres, minimum_cache, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET bio = EXCLUDED.bio, genres = EXCLUDED.genres,
			minimum_cache = EXCLUDED.minimum_cache, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		profile.UserID, profile.Bio, profile.Genres, profile.MinimumCache, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert artist profile: %w", err)
	}
	return nil
}

// GetByUserID obtém o perfil de um artista.
func (r *ProfileRepo) GetByUserID(userID string) (*entity.ArtistProfile, error) {
	query := `
		SELECT user_id, bio, genres, minimum_cache, updated_at
		FROM artist_profiles WHERE user_id = $1`
	var p entity.ArtistProfile
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.UserID, &p.Bio, &p.Genres, &p.MinimumCache, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get artist profile: %w", err)
	}
	return &p, nil
}

// ListMatching devolve perfis com interseção de gêneros e cache mínimo
// coberto pelo teto informado. Alimenta as ofertas automáticas na
// criação de evento.
func (r *ProfileRepo) ListMatching(styles []string, minCache decimal.Decimal) ([]*entity.ArtistProfile, error) {
	query := `
		SELECT user_id, bio, genres, minimum_cache, updated_at
		FROM artist_profiles
		WHERE genres && $1::text[] AND minimum_cache <= $2`
	rows, err := r.q.Query(context.Background(), query, styles, minCache)
	if err != nil {
		return nil, fmt.Errorf("list matching profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.ArtistProfile
	for rows.Next() {
		var p entity.ArtistProfile
		if err := rows.Scan(&p.UserID, &p.Bio, &p.Genres, &p.MinimumCache, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan artist profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
