package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mixMaster/business/feedback"
	"mixMaster/domain"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

var _ feedback.FeedbackRepository = (*FeedbackRepository)(nil)

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

// Upsert keeps one vote per (identity_hash, user_id). Anonymous votes have a
// NULL user id, which the unique index never treats as a duplicate.
func (r *FeedbackRepository) Upsert(ctx context.Context, fb *domain.SuggestionFeedback) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	db := r.DB.WithContext(ctx)
	if fb.UserID != nil {
		db = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity_hash"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
		})
	}

	if err := db.Create(fb).Error; err != nil {
		return fmt.Errorf("failed to upsert suggestion feedback: %w", err)
	}

	return nil
}

type feedbackCounts struct {
	LikeCount    int64 `gorm:"column:like_count"`
	DislikeCount int64 `gorm:"column:dislike_count"`
}

func (r *FeedbackRepository) Summary(ctx context.Context, identityHash string) (domain.FeedbackSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.FeedbackSummary{}, fmt.Errorf("context error: %w", err)
	}

	var row feedbackCounts
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE liked) AS like_count,
			COUNT(*) FILTER (WHERE NOT liked) AS dislike_count
		FROM suggestion_feedback
		WHERE identity_hash = ?`, identityHash).
		Scan(&row).Error
	if err != nil {
		return domain.FeedbackSummary{}, fmt.Errorf("failed to count suggestion feedback: %w", err)
	}

	return domain.FeedbackSummary{
		IdentityHash: identityHash,
		LikeCount:    row.LikeCount,
		DislikeCount: row.DislikeCount,
	}, nil
}
