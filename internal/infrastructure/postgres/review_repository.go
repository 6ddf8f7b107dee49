package postgres

import (
	"context"
	"fmt"

	"github.com/palco-app/palco-api/internal/domain"
	"github.com/palco-app/palco-api/internal/domain/entity"
	"github.com/palco-app/palco-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementação do porto ReviewRepository sobre PostgreSQL
// (usável com pool ou tx).
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository constrói o adaptador de persistência para avaliações.
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create persiste uma avaliação. A constraint única sobre
// (reviewer_id, event_id) garante uma avaliação por avaliador por evento.
func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, reviewer_id, reviewed_id, event_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		review.ID, review.ReviewerID, review.ReviewedID, review.EventID,
		review.Rating, review.Comment, review.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// ExistsByReviewerAndEvent verifica se o avaliador já avaliou o evento.
func (r *ReviewRepo) ExistsByReviewerAndEvent(reviewerID, eventID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE reviewer_id = $1 AND event_id = $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, reviewerID, eventID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists review: %w", err)
	}
	return exists, nil
}

// ListByReviewed lista as avaliações recebidas por um usuário.
func (r *ReviewRepo) ListByReviewed(reviewedID string, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, reviewer_id, reviewed_id, event_id, rating, comment, created_at
		FROM reviews WHERE reviewed_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, reviewedID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rev entity.Review
		if err := rows.Scan(&rev.ID, &rev.ReviewerID, &rev.ReviewedID, &rev.EventID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}
