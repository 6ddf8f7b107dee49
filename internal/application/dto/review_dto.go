package dto

import "time"

// SubmitReviewRequest avaliação após evento concluído.
type SubmitReviewRequest struct {
	EventID    string `json:"event_id"`
	ReviewedID string `json:"reviewed_id"`
	Rating     int    `json:"rating"` // 1..5
	Comment    string `json:"comment"`
}

// ReviewResponse visão de uma avaliação.
type ReviewResponse struct {
	ID         string    `json:"id"`
	ReviewerID string    `json:"reviewer_id"`
	ReviewedID string    `json:"reviewed_id"`
	EventID    string    `json:"event_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
