package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"

	"mixMaster/domain"
	"mixMaster/pkg/logger"
)

var ErrInvalidHash = errors.New("invalid suggestion identity hash")

var FeedbackVotesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "suggestion_feedback_votes_total",
		Help: "Suggestion feedback votes by vote and voter kind.",
	},
	[]string{"vote", "voter"},
)

func init() {
	prometheus.MustRegister(FeedbackVotesTotal)
}

type FeedbackRepository interface {
	Upsert(ctx context.Context, feedback *domain.SuggestionFeedback) error
	Summary(ctx context.Context, identityHash string) (domain.FeedbackSummary, error)
}

type FeedbackService struct {
	repo     FeedbackRepository
	validate *validator.Validate
}

func NewFeedbackService(repo FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *FeedbackService) normalizeHash(hash string) (string, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if err := s.validate.Var(hash, "required,len=64,hexadecimal,excludesall=xX"); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return hash, nil
}

// RecordFeedback stores a like or dislike for a suggestion. A known user has
// one vote per suggestion that later calls overwrite; anonymous votes are
// always added.
func (s *FeedbackService) RecordFeedback(ctx context.Context, hash string, liked bool, userID *uint) (*domain.SuggestionFeedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	hash, err := s.normalizeHash(hash)
	if err != nil {
		return nil, err
	}

	fb := &domain.SuggestionFeedback{
		IdentityHash: hash,
		UserID:       userID,
		Liked:        liked,
	}
	if err := s.repo.Upsert(ctx, fb); err != nil {
		logger.Error("failed to record suggestion feedback", err, "identity_hash", hash)
		return nil, err
	}

	vote, voter := "dislike", "anonymous"
	if liked {
		vote = "like"
	}
	if userID != nil {
		voter = "user"
	}
	FeedbackVotesTotal.WithLabelValues(vote, voter).Inc()

	return fb, nil
}

func (s *FeedbackService) GetSummary(ctx context.Context, hash string) (domain.FeedbackSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.FeedbackSummary{}, fmt.Errorf("context error: %w", err)
	}

	hash, err := s.normalizeHash(hash)
	if err != nil {
		return domain.FeedbackSummary{}, err
	}

	summary, err := s.repo.Summary(ctx, hash)
	if err != nil {
		logger.Error("failed to load feedback summary", err, "identity_hash", hash)
		return domain.FeedbackSummary{}, err
	}
	summary.IdentityHash = hash

	return summary, nil
}
