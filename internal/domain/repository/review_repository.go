package repository

import "github.com/palco-app/palco-api/internal/domain/entity"

// ReviewRepository define o porto de persistência para Review.
type ReviewRepository interface {
	// Create persiste a avaliação; par (reviewer, event) duplicado: ErrDuplicate.
	Create(review *entity.Review) error
	ExistsByReviewerAndEvent(reviewerID, eventID string) (bool, error)
	ListByReviewed(reviewedID string, limit, offset int) ([]*entity.Review, error)
}
