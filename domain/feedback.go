package domain

import "time"

// CREATE TABLE public.suggestion_feedback (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     identity_hash   CHAR(64) NOT NULL,
//     user_id         BIGINT,
//     liked           BOOLEAN NOT NULL,
//     created_at      TIMESTAMPTZ DEFAULT NOW(),
//     updated_at      TIMESTAMPTZ DEFAULT NOW()
// );
// CREATE UNIQUE INDEX suggestion_feedback_hash_user ON suggestion_feedback (identity_hash, user_id);

type SuggestionFeedback struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	IdentityHash string    `gorm:"column:identity_hash;type:char(64);not null;uniqueIndex:suggestion_feedback_hash_user,priority:1" json:"identity_hash"`
	UserID       *uint     `gorm:"column:user_id;uniqueIndex:suggestion_feedback_hash_user,priority:2" json:"user_id,omitempty"`
	Liked        bool      `gorm:"column:liked;not null" json:"liked"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SuggestionFeedback) TableName() string {
	return "suggestion_feedback"
}

type FeedbackSummary struct {
	IdentityHash string `json:"identity_hash"`
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
}
