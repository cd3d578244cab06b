package models

import "time"

type CriticKind string
type ApprovalStatus string

const (
	CriticKindReview CriticKind = "review"
	CriticKindCritic CriticKind = "critic"

	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Critic is the unified review entity. The source system kept two
// near-identical collections (reviews and critics); Kind is the
// discriminant that replaces them.
type Critic struct {
	ID         string         `json:"id" firestore:"id"`
	Kind       CriticKind     `json:"kind" firestore:"kind" validate:"required"`
	Title      string         `json:"title" firestore:"title" validate:"required,min=3,max=200"`
	Topic      string         `json:"topic" firestore:"topic"`
	Content    string         `json:"content" firestore:"content" validate:"required"`
	Rating     float64        `json:"rating" firestore:"rating" validate:"rating_value"`
	AuthorName string         `json:"author_name" firestore:"author_name" validate:"required"`
	AuthorUID  string         `json:"author_uid,omitempty" firestore:"author_uid"`
	Images     []string       `json:"images,omitempty" firestore:"images"`
	Status     ApprovalStatus `json:"status" firestore:"status"`
	CreatedAt  time.Time      `json:"created_at" firestore:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" firestore:"updated_at"`
}
